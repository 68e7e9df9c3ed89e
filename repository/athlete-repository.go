package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

type Athlete struct {
	Id        int       `gorm:"primaryKey"`
	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Gender    Gender    `gorm:"type:friidrett.gender;not null;index"`
	BirthDate time.Time `gorm:"not null"`
	ClubId    *int      `gorm:"index"`
	Club      *Club     `gorm:"foreignKey:ClubId"`
}

type AthleteRepository struct {
	DB *gorm.DB
}

func NewAthleteRepository(db *gorm.DB) *AthleteRepository {
	return &AthleteRepository{DB: db}
}

func (r *AthleteRepository) GetAthleteById(athleteId int) (*Athlete, error) {
	var athlete *Athlete
	result := r.DB.Preload("Club").First(&athlete, athleteId)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find athlete: %v", result.Error)
	}
	return athlete, nil
}

func (r *AthleteRepository) SearchByName(name string, limit int) ([]*Athlete, error) {
	var athletes []*Athlete
	result := r.DB.Preload("Club").
		Where("first_name || ' ' || last_name ILIKE ?", "%"+name+"%").
		Order("last_name, first_name").
		Limit(limit).
		Find(&athletes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to search athletes: %v", result.Error)
	}
	return athletes, nil
}

func (r *AthleteRepository) GetAthletesForClub(clubId int) ([]*Athlete, error) {
	var athletes []*Athlete
	result := r.DB.Where("club_id = ?", clubId).Order("last_name, first_name").Find(&athletes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find athletes for club: %v", result.Error)
	}
	return athletes, nil
}

func (r *AthleteRepository) Save(athlete *Athlete) (*Athlete, error) {
	result := r.DB.Save(athlete)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save athlete: %v", result.Error)
	}
	return athlete, nil
}
