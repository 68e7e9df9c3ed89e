package repository

import (
	"fmt"

	"gorm.io/gorm"
)

type Club struct {
	Id        int        `gorm:"primaryKey"`
	Name      string     `gorm:"not null;uniqueIndex"`
	ShortName string     `gorm:"not null"`
	City      string     `gorm:"null"`
	Athletes  []*Athlete `gorm:"foreignKey:ClubId"`
}

type ClubRepository struct {
	DB *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{DB: db}
}

func (r *ClubRepository) FindAll() ([]*Club, error) {
	var clubs []*Club
	result := r.DB.Order("name").Find(&clubs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find clubs: %v", result.Error)
	}
	return clubs, nil
}

func (r *ClubRepository) GetClubById(clubId int, preloads ...string) (*Club, error) {
	var club *Club
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&club, clubId)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find club: %v", result.Error)
	}
	return club, nil
}

func (r *ClubRepository) GetClubByName(name string) (*Club, error) {
	var club *Club
	result := r.DB.Where("name = ?", name).First(&club)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find club %s: %v", name, result.Error)
	}
	return club, nil
}

func (r *ClubRepository) Save(club *Club) (*Club, error) {
	result := r.DB.Save(club)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save club: %v", result.Error)
	}
	return club, nil
}
