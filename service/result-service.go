package service

import (
	"fmt"

	"friidrett/performance"
	"friidrett/repository"

	"gorm.io/gorm"
)

type ResultService struct {
	resultRepository *repository.ResultRepository
	meetRepository   *repository.MeetRepository
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{
		resultRepository: repository.NewResultRepository(db),
		meetRepository:   repository.NewMeetRepository(db),
	}
}

// SaveResults persists an ingested batch. Normalized performance values are
// derived from the display string when the import does not carry them, and
// the meet's indoor flag is copied onto each row.
func (s *ResultService) SaveResults(results []*repository.Result) error {
	indoorByMeet := make(map[int]bool)
	for _, result := range results {
		if result.PerformanceValue == 0 && result.Status == repository.StatusOK {
			value, err := performance.Parse(result.Performance, string(result.ResultType))
			if err != nil {
				return fmt.Errorf("result for athlete %d: %v", result.AthleteId, err)
			}
			result.PerformanceValue = value
		}
		indoor, ok := indoorByMeet[result.MeetId]
		if !ok {
			meet, err := s.meetRepository.GetMeetById(result.MeetId)
			if err != nil {
				return err
			}
			indoor = meet.Indoor
			indoorByMeet[result.MeetId] = indoor
		}
		result.Indoor = indoor
	}
	return s.resultRepository.SaveResults(results)
}
