package service

import (
	"friidrett/repository"

	"gorm.io/gorm"
)

type MeetService struct {
	meetRepository   *repository.MeetRepository
	resultRepository *repository.ResultRepository
}

func NewMeetService(db *gorm.DB) *MeetService {
	return &MeetService{
		meetRepository:   repository.NewMeetRepository(db),
		resultRepository: repository.NewResultRepository(db),
	}
}

func (s *MeetService) FindAllMeets() ([]*repository.Meet, error) {
	return s.meetRepository.FindAll()
}

func (s *MeetService) FindMeetsByYear(year int) ([]*repository.Meet, error) {
	return s.meetRepository.FindByYear(year)
}

func (s *MeetService) GetMeetById(meetId int) (*repository.Meet, error) {
	return s.meetRepository.GetMeetById(meetId)
}

func (s *MeetService) GetResultsForMeet(meetId int) ([]*repository.Result, error) {
	return s.resultRepository.GetResultsForMeet(meetId)
}
