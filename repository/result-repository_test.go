package repository_test

import (
	"fmt"
	"log"
	"strings"
	"testing"
	"time"

	"friidrett/championship"
	"friidrett/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
)

var db *gorm.DB

var enumQueries = []string{
	`CREATE TYPE friidrett.gender AS ENUM ('M', 'F')`,
	`CREATE TYPE friidrett.result_type AS ENUM ('time', 'distance', 'height', 'points')`,
	`CREATE TYPE friidrett.result_status AS ENUM ('OK', 'DNS', 'DNF', 'DQ', 'NM')`,
}

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable search_path=friidrett",
		resource.GetPort("5432/tcp"))

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:   "friidrett.",
				SingularTable: false,
			},
			Logger: logger.Default.LogMode(logger.Silent),
		})

		if err != nil {
			return err
		}
		db.Exec(`CREATE SCHEMA IF NOT EXISTS friidrett`)
		for _, query := range enumQueries {
			x := db.Exec(query)
			if x.Error != nil {
				if strings.Contains(x.Error.Error(), "already exists") {
					continue
				}
			}
		}
		return db.AutoMigrate(
			&repository.Club{},
			&repository.Athlete{},
			&repository.Meet{},
			&repository.Result{},
		)

	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func tearDown() {
	db.Exec("DELETE FROM friidrett.results")
	db.Exec("DELETE FROM friidrett.athletes")
	db.Exec("DELETE FROM friidrett.meets")
	db.Exec("DELETE FROM friidrett.clubs")
}

func birthDate(year int) time.Time {
	return time.Date(year, time.May, 15, 0, 0, 0, 0, time.UTC)
}

func setUp(t *testing.T) {
	tearDown()
	clubs := []*repository.Club{
		{Id: 1, Name: "IK Tjalve", ShortName: "Tjalve", City: "Oslo"},
		{Id: 2, Name: "SK Vidar", ShortName: "Vidar", City: "Oslo"},
	}
	assert.NoError(t, db.Create(&clubs).Error)
	clubId1, clubId2 := 1, 2
	athletes := []*repository.Athlete{
		{Id: 1, FirstName: "Ola", LastName: "Nordmann", Gender: repository.GenderMale, BirthDate: birthDate(1998), ClubId: &clubId1},
		{Id: 2, FirstName: "Per", LastName: "Hansen", Gender: repository.GenderMale, BirthDate: birthDate(2001), ClubId: &clubId2},
		{Id: 3, FirstName: "Lars", LastName: "Berg", Gender: repository.GenderMale, BirthDate: birthDate(2008), ClubId: &clubId1},
		{Id: 4, FirstName: "Kari", LastName: "Nordmann", Gender: repository.GenderFemale, BirthDate: birthDate(1999), ClubId: &clubId2},
	}
	assert.NoError(t, db.Create(&athletes).Error)
	meets := []*repository.Meet{
		{Id: 1, Name: "Tyrvinglekene", Venue: "Nadderud", StartDate: date(2026, 6, 12), EndDate: date(2026, 6, 14), Indoor: false},
		{Id: 2, Name: "Bislett Games", Venue: "Bislett", StartDate: date(2026, 6, 20), EndDate: date(2026, 6, 20), Indoor: false},
		{Id: 3, Name: "Bærum innendørs", Venue: "Bærum idrettspark", StartDate: date(2026, 1, 24), EndDate: date(2026, 1, 25), Indoor: true},
	}
	assert.NoError(t, db.Create(&meets).Error)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedResult(t *testing.T, result *repository.Result) {
	if result.Status == "" {
		result.Status = repository.StatusOK
	}
	assert.NoError(t, db.Create(result).Error)
}

func sprintFilter(threshold int) repository.QualificationFilter {
	return repository.QualificationFilter{
		EventCodes:    []string{"100m"},
		Gender:        repository.GenderMale,
		From:          date(2026, 4, 1),
		To:            date(2026, 8, 9),
		ResultType:    repository.ResultTypeTime,
		Threshold:     threshold,
		OutdoorOnly:   true,
		WindLegalOnly: true,
		ExcludeManual: true,
		Limit:         500,
	}
}

func TestQualifyingTimeThreshold(t *testing.T) {
	setUp(t)
	r := repository.NewResultRepository(db)
	values := []int{1125, 1130, 1135}
	for i, value := range values {
		seedResult(t, &repository.Result{
			AthleteId: i + 1, MeetId: 1, EventCode: "100m", Date: date(2026, 6, 13),
			Performance: fmt.Sprintf("%d.%02d", value/100, value%100), PerformanceValue: value,
			ResultType: repository.ResultTypeTime, WindLegal: true,
		})
	}

	results, err := r.GetQualifyingResults(sprintFilter(1130))
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, 1125, results[0].PerformanceValue)
	assert.Equal(t, 1130, results[1].PerformanceValue)
}

func TestQualifyingDistanceThreshold(t *testing.T) {
	setUp(t)
	r := repository.NewResultRepository(db)
	values := []int{6550, 6600, 6700}
	for i, value := range values {
		seedResult(t, &repository.Result{
			AthleteId: i + 1, MeetId: 1, EventCode: "long_jump", Date: date(2026, 6, 13),
			Performance: fmt.Sprintf("%d.%02d", value/1000, (value%1000)/10), PerformanceValue: value,
			ResultType: repository.ResultTypeDistance, WindLegal: true,
		})
	}

	filter := repository.QualificationFilter{
		EventCodes:    []string{"long_jump"},
		Gender:        repository.GenderMale,
		From:          date(2026, 4, 1),
		To:            date(2026, 8, 9),
		ResultType:    repository.ResultTypeDistance,
		Threshold:     6600,
		OutdoorOnly:   true,
		WindLegalOnly: true,
		Limit:         500,
	}
	results, err := r.GetQualifyingResults(filter)
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, 6700, results[0].PerformanceValue)
	assert.Equal(t, 6600, results[1].PerformanceValue)
}

func TestWindIllegalResultsNeverQualify(t *testing.T) {
	setUp(t)
	r := repository.NewResultRepository(db)
	wind := 3.1
	seedResult(t, &repository.Result{
		AthleteId: 1, MeetId: 1, EventCode: "100m", Date: date(2026, 6, 13),
		Performance: "10.90", PerformanceValue: 1090,
		ResultType: repository.ResultTypeTime, Wind: &wind, WindLegal: false,
	})

	results, err := r.GetQualifyingResults(sprintFilter(1130))
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestManualTimesExcluded(t *testing.T) {
	setUp(t)
	r := repository.NewResultRepository(db)
	seedResult(t, &repository.Result{
		AthleteId: 1, MeetId: 1, EventCode: "100m", Date: date(2026, 6, 13),
		Performance: "11.0", PerformanceValue: 1100,
		ResultType: repository.ResultTypeTime, WindLegal: true, ManualTime: true,
	})

	results, err := r.GetQualifyingResults(sprintFilter(1130))
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestIndoorResultsExcludedWhenOutdoorOnly(t *testing.T) {
	setUp(t)
	r := repository.NewResultRepository(db)
	seedResult(t, &repository.Result{
		AthleteId: 1, MeetId: 3, EventCode: "100m", Date: date(2026, 5, 24),
		Performance: "11.20", PerformanceValue: 1120,
		ResultType: repository.ResultTypeTime, WindLegal: true, Indoor: true,
	})

	results, err := r.GetQualifyingResults(sprintFilter(1130))
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestNonOkAndZeroValueResultsExcluded(t *testing.T) {
	setUp(t)
	r := repository.NewResultRepository(db)
	seedResult(t, &repository.Result{
		AthleteId: 1, MeetId: 1, EventCode: "100m", Date: date(2026, 6, 13),
		Performance: "DNF", PerformanceValue: 0,
		ResultType: repository.ResultTypeTime, Status: repository.StatusDidNotFinish, WindLegal: true,
	})
	seedResult(t, &repository.Result{
		AthleteId: 2, MeetId: 1, EventCode: "100m", Date: date(2026, 6, 13),
		Performance: "", PerformanceValue: 0,
		ResultType: repository.ResultTypeTime, WindLegal: true,
	})

	results, err := r.GetQualifyingResults(sprintFilter(1130))
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestDateWindowGenderAndClubFilters(t *testing.T) {
	setUp(t)
	r := repository.NewResultRepository(db)
	clubId1, clubId2 := 1, 2
	// Outside the window.
	seedResult(t, &repository.Result{
		AthleteId: 1, ClubId: &clubId1, MeetId: 1, EventCode: "100m", Date: date(2026, 3, 13),
		Performance: "11.00", PerformanceValue: 1100,
		ResultType: repository.ResultTypeTime, WindLegal: true,
	})
	// Wrong gender for the filter below.
	seedResult(t, &repository.Result{
		AthleteId: 4, ClubId: &clubId2, MeetId: 1, EventCode: "100m", Date: date(2026, 6, 13),
		Performance: "11.10", PerformanceValue: 1110,
		ResultType: repository.ResultTypeTime, WindLegal: true,
	})
	// Qualifies.
	seedResult(t, &repository.Result{
		AthleteId: 2, ClubId: &clubId2, MeetId: 2, EventCode: "100m", Date: date(2026, 6, 20),
		Performance: "11.15", PerformanceValue: 1115,
		ResultType: repository.ResultTypeTime, WindLegal: true,
	})

	results, err := r.GetQualifyingResults(sprintFilter(1130))
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 2, results[0].AthleteId)

	filter := sprintFilter(1130)
	filter.ClubId = &clubId1
	results, err = r.GetQualifyingResults(filter)
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestMinBirthYearRestrictsToAgeClass(t *testing.T) {
	setUp(t)
	r := repository.NewResultRepository(db)
	// Athlete 2 born 2001, athlete 3 born 2008.
	for _, athleteId := range []int{2, 3} {
		seedResult(t, &repository.Result{
			AthleteId: athleteId, MeetId: 1, EventCode: "100m", Date: date(2026, 6, 13),
			Performance: "11.20", PerformanceValue: 1120,
			ResultType: repository.ResultTypeTime, WindLegal: true,
		})
	}

	filter := sprintFilter(1130)
	filter.MinBirthYear = 2007
	results, err := r.GetQualifyingResults(filter)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 3, results[0].AthleteId)
}

func TestCandidateWindowFeedsDeduplication(t *testing.T) {
	setUp(t)
	r := repository.NewResultRepository(db)
	// Two qualifying rows for the same athlete; dedupe keeps the better one.
	seedResult(t, &repository.Result{
		AthleteId: 1, MeetId: 1, EventCode: "100m", Date: date(2026, 6, 13),
		Performance: "11.25", PerformanceValue: 1125,
		ResultType: repository.ResultTypeTime, WindLegal: true,
	})
	seedResult(t, &repository.Result{
		AthleteId: 1, MeetId: 2, EventCode: "100m", Date: date(2026, 6, 20),
		Performance: "11.20", PerformanceValue: 1120,
		ResultType: repository.ResultTypeTime, WindLegal: true,
	})
	seedResult(t, &repository.Result{
		AthleteId: 2, MeetId: 2, EventCode: "100m", Date: date(2026, 6, 20),
		Performance: "11.28", PerformanceValue: 1128,
		ResultType: repository.ResultTypeTime, WindLegal: true,
	})

	results, err := r.GetQualifyingResults(sprintFilter(1130))
	assert.NoError(t, err)
	assert.Len(t, results, 3)

	entries := championship.BestPerAthlete(results, repository.ResultTypeTime)
	assert.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].AthleteId)
	assert.Equal(t, 1120, entries[0].PerformanceValue)
	assert.Equal(t, 2, entries[1].AthleteId)
}
