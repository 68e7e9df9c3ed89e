package service

import (
	"friidrett/repository"

	"gorm.io/gorm"
)

type AthleteService struct {
	athleteRepository *repository.AthleteRepository
	resultRepository  *repository.ResultRepository
}

func NewAthleteService(db *gorm.DB) *AthleteService {
	return &AthleteService{
		athleteRepository: repository.NewAthleteRepository(db),
		resultRepository:  repository.NewResultRepository(db),
	}
}

func (s *AthleteService) GetAthleteById(athleteId int) (*repository.Athlete, error) {
	return s.athleteRepository.GetAthleteById(athleteId)
}

func (s *AthleteService) SearchByName(name string, limit int) ([]*repository.Athlete, error) {
	return s.athleteRepository.SearchByName(name, limit)
}

func (s *AthleteService) GetResultsForAthlete(athleteId int) ([]*repository.Result, error) {
	return s.resultRepository.GetResultsForAthlete(athleteId)
}
