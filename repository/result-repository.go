package repository

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type ResultType string

const (
	ResultTypeTime     ResultType = "time"
	ResultTypeDistance ResultType = "distance"
	ResultTypeHeight   ResultType = "height"
	ResultTypePoints   ResultType = "points"
)

// LowerIsBetter reports the comparison direction for a result type.
func (t ResultType) LowerIsBetter() bool {
	return t == ResultTypeTime
}

type ResultStatus string

const (
	StatusOK           ResultStatus = "OK"
	StatusDidNotStart  ResultStatus = "DNS"
	StatusDidNotFinish ResultStatus = "DNF"
	StatusDisqualified ResultStatus = "DQ"
	StatusNoMark       ResultStatus = "NM"
)

// Result is one performance by one athlete at one meet. PerformanceValue is
// normalized to hundredths of a second for times and millimetres for
// distances/heights so that threshold comparisons stay integral.
type Result struct {
	Id               int          `gorm:"primaryKey" json:"id"`
	AthleteId        int          `gorm:"not null;index" json:"athlete_id"`
	Athlete          *Athlete     `gorm:"foreignKey:AthleteId" json:"athlete,omitempty"`
	ClubId           *int         `gorm:"index" json:"club_id"`
	Club             *Club        `gorm:"foreignKey:ClubId" json:"club,omitempty"`
	MeetId           int          `gorm:"not null;index" json:"meet_id"`
	Meet             *Meet        `gorm:"foreignKey:MeetId" json:"meet,omitempty"`
	EventCode        string       `gorm:"not null;index" json:"event_code"`
	Date             time.Time    `gorm:"not null;index" json:"date"`
	Performance      string       `gorm:"not null" json:"performance"`
	PerformanceValue int          `gorm:"not null" json:"performance_value"`
	ResultType       ResultType   `gorm:"type:friidrett.result_type;not null" json:"result_type"`
	Status           ResultStatus `gorm:"type:friidrett.result_status;not null" json:"status"`
	Wind             *float64     `gorm:"null" json:"wind"`
	WindLegal        bool         `gorm:"not null;default:true" json:"wind_legal"`
	ManualTime       bool         `gorm:"not null;default:false" json:"manual_time"`
	// Indoor mirrors the meet's venue flag so qualification queries stay
	// single-table.
	Indoor bool `gorm:"not null;default:false" json:"indoor"`
}

// QualificationFilter is the query shape the championship package resolves a
// standard into. Zero MinBirthYear / nil ClubId mean unrestricted.
type QualificationFilter struct {
	EventCodes     []string
	Gender         Gender
	From           time.Time
	To             time.Time
	ResultType     ResultType
	Threshold      int
	OutdoorOnly    bool
	WindLegalOnly  bool
	ExcludeManual  bool
	ClubId         *int
	MinBirthYear   int
	Limit          int
}

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) SaveResults(results []*Result) error {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("SaveResults"))
	defer timer.ObserveDuration()
	return r.DB.CreateInBatches(results, 500).Error
}

func (r *ResultRepository) GetResultsForMeet(meetId int) ([]*Result, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetResultsForMeet"))
	defer timer.ObserveDuration()
	var results []*Result
	query := r.DB.Preload("Athlete").Preload("Club").
		Where("meet_id = ?", meetId).
		Order("event_code, performance_value")
	if err := query.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to find results for meet: %v", err)
	}
	return results, nil
}

func (r *ResultRepository) GetResultsForAthlete(athleteId int) ([]*Result, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetResultsForAthlete"))
	defer timer.ObserveDuration()
	var results []*Result
	query := r.DB.Preload("Meet").Preload("Club").
		Where("athlete_id = ?", athleteId).
		Order("date desc")
	if err := query.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to find results for athlete: %v", err)
	}
	return results, nil
}

func (r *ResultRepository) GetResultsForClub(clubId int, year int) ([]*Result, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetResultsForClub"))
	defer timer.ObserveDuration()
	var results []*Result
	query := r.DB.Preload("Athlete").Preload("Meet").Where("club_id = ?", clubId)
	if year != 0 {
		from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("date >= ? AND date < ?", from, from.AddDate(1, 0, 0))
	}
	if err := query.Order("date desc").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to find results for club: %v", err)
	}
	return results, nil
}

// GetQualifyingResults returns the candidate window for one standard/gender
// combination, ordered best-first. Deduplication to one result per athlete
// happens in the championship package.
func (r *ResultRepository) GetQualifyingResults(filter QualificationFilter) ([]*Result, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetQualifyingResults"))
	defer timer.ObserveDuration()

	if len(filter.EventCodes) == 0 {
		return []*Result{}, nil
	}

	query := r.DB.Preload("Athlete").Preload("Club").Preload("Meet").
		Where("event_code IN ?", filter.EventCodes).
		Where("date >= ? AND date <= ?", filter.From, filter.To).
		Where("status = ?", StatusOK).
		Where("performance_value > 0")

	if filter.ResultType.LowerIsBetter() {
		query = query.Where("performance_value <= ?", filter.Threshold).
			Order("performance_value asc")
	} else {
		query = query.Where("performance_value >= ?", filter.Threshold).
			Order("performance_value desc")
	}

	query = query.Joins("JOIN friidrett.athletes ON friidrett.athletes.id = friidrett.results.athlete_id").
		Where("friidrett.athletes.gender = ?", filter.Gender)

	if filter.OutdoorOnly {
		query = query.Where("indoor = ?", false)
	}
	if filter.WindLegalOnly {
		query = query.Where("wind_legal = ?", true)
	}
	if filter.ExcludeManual {
		query = query.Where("manual_time = ?", false)
	}
	if filter.ClubId != nil {
		query = query.Where("friidrett.results.club_id = ?", *filter.ClubId)
	}
	if filter.MinBirthYear != 0 {
		cutoff := time.Date(filter.MinBirthYear, 1, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("friidrett.athletes.birth_date >= ?", cutoff)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}
	var results []*Result
	if err := query.Limit(limit).Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to find qualifying results: %v", err)
	}
	return results, nil
}
