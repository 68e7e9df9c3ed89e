package config

import (
	model "friidrett/repository"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var enumQueries = []string{
	`CREATE TYPE friidrett.gender AS ENUM ('M', 'F')`,
	`CREATE TYPE friidrett.result_type AS ENUM ('time', 'distance', 'height', 'points')`,
	`CREATE TYPE friidrett.result_status AS ENUM ('OK', 'DNS', 'DNF', 'DQ', 'NM')`,
}

func InitDB(host string, port string, user string, password string, dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "friidrett.",
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	x := db.Exec(`CREATE SCHEMA IF NOT EXISTS friidrett`)
	if x.Error != nil {
		return nil, x.Error
	}
	for _, query := range enumQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return nil, x.Error
		}
	}

	err = db.AutoMigrate(
		&model.Club{},
		&model.Athlete{},
		&model.Meet{},
		&model.Result{},
	)

	if err != nil {
		return nil, err
	}
	return db, nil
}
