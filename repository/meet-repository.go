package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Meet struct {
	Id        int       `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Venue     string    `gorm:"not null"`
	StartDate time.Time `gorm:"not null;index"`
	EndDate   time.Time `gorm:"not null"`
	Indoor    bool      `gorm:"not null"`
}

type MeetRepository struct {
	DB *gorm.DB
}

func NewMeetRepository(db *gorm.DB) *MeetRepository {
	return &MeetRepository{DB: db}
}

func (r *MeetRepository) FindAll() ([]*Meet, error) {
	var meets []*Meet
	result := r.DB.Order("start_date desc").Find(&meets)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find meets: %v", result.Error)
	}
	return meets, nil
}

func (r *MeetRepository) FindByYear(year int) ([]*Meet, error) {
	var meets []*Meet
	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	result := r.DB.Where("start_date >= ? AND start_date < ?", from, to).
		Order("start_date desc").
		Find(&meets)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find meets for year %d: %v", year, result.Error)
	}
	return meets, nil
}

func (r *MeetRepository) GetMeetById(meetId int) (*Meet, error) {
	var meet *Meet
	result := r.DB.First(&meet, meetId)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find meet: %v", result.Error)
	}
	return meet, nil
}

func (r *MeetRepository) Save(meet *Meet) (*Meet, error) {
	result := r.DB.Save(meet)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save meet: %v", result.Error)
	}
	return meet, nil
}
