package service

import (
	"friidrett/repository"

	"gorm.io/gorm"
)

type ClubService struct {
	clubRepository    *repository.ClubRepository
	athleteRepository *repository.AthleteRepository
	resultRepository  *repository.ResultRepository
}

func NewClubService(db *gorm.DB) *ClubService {
	return &ClubService{
		clubRepository:    repository.NewClubRepository(db),
		athleteRepository: repository.NewAthleteRepository(db),
		resultRepository:  repository.NewResultRepository(db),
	}
}

func (s *ClubService) FindAllClubs() ([]*repository.Club, error) {
	return s.clubRepository.FindAll()
}

func (s *ClubService) GetClubById(clubId int) (*repository.Club, error) {
	return s.clubRepository.GetClubById(clubId)
}

func (s *ClubService) GetAthletesForClub(clubId int) ([]*repository.Athlete, error) {
	return s.athleteRepository.GetAthletesForClub(clubId)
}

func (s *ClubService) GetResultsForClub(clubId int, year int) ([]*repository.Result, error) {
	return s.resultRepository.GetResultsForClub(clubId, year)
}
