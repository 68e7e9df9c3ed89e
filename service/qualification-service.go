package service

import (
	"log"
	"sync"

	"friidrett/championship"
	"friidrett/repository"

	"gorm.io/gorm"
)

type QualificationService struct {
	resultRepository *repository.ResultRepository
}

func NewQualificationService(db *gorm.DB) *QualificationService {
	return &QualificationService{
		resultRepository: repository.NewResultRepository(db),
	}
}

// GetQualifiedEntries returns the ranked qualification list for one
// standard: at most one result per athlete, best-first. For junior
// championships with no explicit age class the list is computed per age
// class and merged. A standard that does not apply to the combination
// yields an empty list without touching the store.
func (s *QualificationService) GetQualifiedEntries(c *championship.Championship, standard *championship.QualificationStandard, gender repository.Gender, ageClassId string, clubId *int) ([]*repository.Result, error) {
	if c.Type == championship.TypeJunior && ageClassId == "" && len(c.AgeClasses) > 0 {
		return s.getMergedEntries(c, standard, gender, clubId)
	}
	filter, ok := championship.BuildFilter(c, standard, gender, ageClassId, clubId)
	if !ok {
		return []*repository.Result{}, nil
	}
	results, err := s.resultRepository.GetQualifyingResults(filter)
	if err != nil {
		return nil, err
	}
	return championship.BestPerAthlete(results, standard.ResultType), nil
}

func (s *QualificationService) getMergedEntries(c *championship.Championship, standard *championship.QualificationStandard, gender repository.Gender, clubId *int) ([]*repository.Result, error) {
	lists := make([][]*repository.Result, 0, len(c.AgeClasses))
	for _, ageClass := range c.AgeClasses {
		filter, ok := championship.BuildFilter(c, standard, gender, ageClass.Id, clubId)
		if !ok {
			continue
		}
		results, err := s.resultRepository.GetQualifyingResults(filter)
		if err != nil {
			return nil, err
		}
		lists = append(lists, results)
	}
	return championship.MergeBestPerAthlete(standard.ResultType, lists...), nil
}

// CountQualified fetches the number of qualified athletes per event for the
// sidebar, one concurrent round-trip per standard. A failed fetch logs and
// degrades to a zero count; it never fails the whole listing.
func (s *QualificationService) CountQualified(c *championship.Championship, gender repository.Gender, ageClassId string) map[string]int {
	counts := make(map[string]int, len(c.Standards))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, standard := range c.Standards {
		wg.Add(1)
		go func(standard *championship.QualificationStandard) {
			defer wg.Done()
			entries, err := s.GetQualifiedEntries(c, standard, gender, ageClassId, nil)
			if err != nil {
				log.Printf("failed to count qualified for %s/%s %s: %v", c.Id, standard.Event, gender, err)
				entries = nil
			}
			mu.Lock()
			counts[standard.Event] = len(entries)
			mu.Unlock()
		}(standard)
	}
	wg.Wait()
	return counts
}
