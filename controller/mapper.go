package controller

import (
	"time"

	"friidrett/performance"
	"friidrett/repository"
)

type Club struct {
	Id        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	City      string `json:"city,omitempty"`
}

type Athlete struct {
	Id        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	BirthYear int    `json:"birth_year"`
	Club      *Club  `json:"club,omitempty"`
}

type Meet struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Venue     string    `json:"venue"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Indoor    bool      `json:"indoor"`
}

type Result struct {
	Id          int      `json:"id"`
	EventCode   string   `json:"event_code"`
	Date        string   `json:"date"`
	Performance string   `json:"performance"`
	Wind        *float64 `json:"wind,omitempty"`
	Status      string   `json:"status"`
	ManualTime  bool     `json:"manual_time"`
	Indoor      bool     `json:"indoor"`
	Athlete     *Athlete `json:"athlete,omitempty"`
	Club        *Club    `json:"club,omitempty"`
	Meet        *Meet    `json:"meet,omitempty"`
}

func toClub(club *repository.Club) *Club {
	if club == nil {
		return nil
	}
	return &Club{
		Id:        club.Id,
		Name:      club.Name,
		ShortName: club.ShortName,
		City:      club.City,
	}
}

func toAthlete(athlete *repository.Athlete) *Athlete {
	if athlete == nil {
		return nil
	}
	return &Athlete{
		Id:        athlete.Id,
		FirstName: athlete.FirstName,
		LastName:  athlete.LastName,
		Gender:    string(athlete.Gender),
		BirthYear: athlete.BirthDate.Year(),
		Club:      toClub(athlete.Club),
	}
}

func toMeet(meet *repository.Meet) *Meet {
	if meet == nil {
		return nil
	}
	return &Meet{
		Id:        meet.Id,
		Name:      meet.Name,
		Venue:     meet.Venue,
		StartDate: meet.StartDate,
		EndDate:   meet.EndDate,
		Indoor:    meet.Indoor,
	}
}

func toResult(result *repository.Result) *Result {
	return &Result{
		Id:          result.Id,
		EventCode:   result.EventCode,
		Date:        result.Date.Format("2006-01-02"),
		Performance: performance.Format(result.Performance, string(result.ResultType)),
		Wind:        result.Wind,
		Status:      string(result.Status),
		ManualTime:  result.ManualTime,
		Indoor:      result.Indoor,
		Athlete:     toAthlete(result.Athlete),
		Club:        toClub(result.Club),
		Meet:        toMeet(result.Meet),
	}
}
