// Package championship holds the qualification engine: the static registry
// of championship standards and the filtering, deduplication and ranking
// passes that turn raw results into qualification lists.
package championship

import (
	"friidrett/repository"
	"friidrett/utils"
	"time"
)

type ChampionshipType string

const (
	TypeSenior ChampionshipType = "senior"
	TypeJunior ChampionshipType = "junior"
)

// AgeClass restricts a junior listing to athletes born in or after
// MinBirthYear.
type AgeClass struct {
	Id           string
	Label        string
	MinBirthYear int
}

// QualificationStandard maps one event to its qualifying thresholds.
// EventCodes and Thresholds are keyed by gender ("M", "F") with optional
// age-class-specific overrides ("U20_M", "U23_F"). Thresholds are stored in
// hundredths of a second or millimetres. A standard with no threshold for a
// gender/age-class combination does not apply to that combination.
type QualificationStandard struct {
	Event        string
	Category     string
	ResultType   repository.ResultType
	EventCodes   map[string][]string
	Thresholds   map[string]int
	IndoorCounts bool
}

// Championship is fixed configuration, defined once below and never mutated
// at runtime.
type Championship struct {
	Id                 string
	Name               string
	Type               ChampionshipType
	QualificationStart time.Time
	QualificationEnd   time.Time
	Indoor             bool
	AgeClasses         []AgeClass
	Standards          []*QualificationStandard
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var All = []*Championship{
	{
		Id:                 "hoved-nm",
		Name:               "NM i friidrett",
		Type:               TypeSenior,
		QualificationStart: date(2025, time.April, 1),
		QualificationEnd:   date(2026, time.August, 9),
		Standards: []*QualificationStandard{
			{
				Event:      "100m",
				Category:   "sprint",
				ResultType: repository.ResultTypeTime,
				EventCodes: map[string][]string{"M": {"100m"}, "F": {"100m"}},
				Thresholds: map[string]int{"M": 1110, "F": 1265},
			},
			{
				Event:      "200m",
				Category:   "sprint",
				ResultType: repository.ResultTypeTime,
				EventCodes: map[string][]string{"M": {"200m"}, "F": {"200m"}},
				Thresholds: map[string]int{"M": 2250, "F": 2570},
			},
			{
				Event:      "400m",
				Category:   "sprint",
				ResultType: repository.ResultTypeTime,
				EventCodes: map[string][]string{"M": {"400m"}, "F": {"400m"}},
				Thresholds: map[string]int{"M": 4980, "F": 5800},
			},
			{
				Event:        "800m",
				Category:     "middle_distance",
				ResultType:   repository.ResultTypeTime,
				EventCodes:   map[string][]string{"M": {"800m"}, "F": {"800m"}},
				Thresholds:   map[string]int{"M": 11450, "F": 13500},
				IndoorCounts: true,
			},
			{
				Event:        "1500m",
				Category:     "middle_distance",
				ResultType:   repository.ResultTypeTime,
				EventCodes:   map[string][]string{"M": {"1500m"}, "F": {"1500m"}},
				Thresholds:   map[string]int{"M": 23450, "F": 27600},
				IndoorCounts: true,
			},
			{
				Event:        "5000m",
				Category:     "long_distance",
				ResultType:   repository.ResultTypeTime,
				EventCodes:   map[string][]string{"M": {"5000m"}, "F": {"5000m"}},
				Thresholds:   map[string]int{"M": 87000, "F": 100800},
				IndoorCounts: true,
			},
			{
				Event:      "110m hekk",
				Category:   "hurdles",
				ResultType: repository.ResultTypeTime,
				EventCodes: map[string][]string{"M": {"110mh_106"}},
				Thresholds: map[string]int{"M": 1550},
			},
			{
				Event:      "100m hekk",
				Category:   "hurdles",
				ResultType: repository.ResultTypeTime,
				EventCodes: map[string][]string{"F": {"100mh_84"}},
				Thresholds: map[string]int{"F": 1450},
			},
			{
				Event:      "400m hekk",
				Category:   "hurdles",
				ResultType: repository.ResultTypeTime,
				EventCodes: map[string][]string{"M": {"400mh"}, "F": {"400mh"}},
				Thresholds: map[string]int{"M": 5550, "F": 6350},
			},
			{
				Event:        "Høyde",
				Category:     "jumps",
				ResultType:   repository.ResultTypeHeight,
				EventCodes:   map[string][]string{"M": {"high_jump"}, "F": {"high_jump"}},
				Thresholds:   map[string]int{"M": 2000, "F": 1700},
				IndoorCounts: true,
			},
			{
				Event:        "Stav",
				Category:     "jumps",
				ResultType:   repository.ResultTypeHeight,
				EventCodes:   map[string][]string{"M": {"pole_vault"}, "F": {"pole_vault"}},
				Thresholds:   map[string]int{"M": 4700, "F": 3650},
				IndoorCounts: true,
			},
			{
				Event:      "Lengde",
				Category:   "jumps",
				ResultType: repository.ResultTypeDistance,
				EventCodes: map[string][]string{"M": {"long_jump"}, "F": {"long_jump"}},
				Thresholds: map[string]int{"M": 7000, "F": 5850},
			},
			{
				Event:      "Tresteg",
				Category:   "jumps",
				ResultType: repository.ResultTypeDistance,
				EventCodes: map[string][]string{"M": {"triple_jump"}, "F": {"triple_jump"}},
				Thresholds: map[string]int{"M": 14300, "F": 12250},
			},
			{
				Event:        "Kule",
				Category:     "throws",
				ResultType:   repository.ResultTypeDistance,
				EventCodes:   map[string][]string{"M": {"shot_put_7_26kg"}, "F": {"shot_put_4kg"}},
				Thresholds:   map[string]int{"M": 15500, "F": 13300},
				IndoorCounts: true,
			},
			{
				Event:      "Diskos",
				Category:   "throws",
				ResultType: repository.ResultTypeDistance,
				EventCodes: map[string][]string{"M": {"discus_2kg"}, "F": {"discus_1kg"}},
				Thresholds: map[string]int{"M": 47000, "F": 44000},
			},
			{
				Event:      "Spyd",
				Category:   "throws",
				ResultType: repository.ResultTypeDistance,
				EventCodes: map[string][]string{"M": {"javelin_800g"}, "F": {"javelin_600g"}},
				Thresholds: map[string]int{"M": 63000, "F": 46000},
			},
			{
				Event:      "Slegge",
				Category:   "throws",
				ResultType: repository.ResultTypeDistance,
				EventCodes: map[string][]string{"M": {"hammer_7_26kg"}, "F": {"hammer_4kg"}},
				Thresholds: map[string]int{"M": 58000, "F": 55000},
			},
		},
	},
	{
		Id:                 "junior-nm",
		Name:               "NM junior",
		Type:               TypeJunior,
		QualificationStart: date(2025, time.April, 1),
		QualificationEnd:   date(2026, time.August, 23),
		AgeClasses: []AgeClass{
			{Id: "U23", Label: "U23 (22 år og yngre)", MinBirthYear: 2004},
			{Id: "U20", Label: "U20 (19 år og yngre)", MinBirthYear: 2007},
		},
		Standards: []*QualificationStandard{
			{
				Event:      "100m",
				Category:   "sprint",
				ResultType: repository.ResultTypeTime,
				EventCodes: map[string][]string{"M": {"100m"}, "F": {"100m"}},
				Thresholds: map[string]int{"U23_M": 1135, "U20_M": 1160, "U23_F": 1290, "U20_F": 1320},
			},
			{
				Event:      "200m",
				Category:   "sprint",
				ResultType: repository.ResultTypeTime,
				EventCodes: map[string][]string{"M": {"200m"}, "F": {"200m"}},
				Thresholds: map[string]int{"U23_M": 2310, "U20_M": 2360, "U23_F": 2640, "U20_F": 2700},
			},
			{
				Event:      "400m",
				Category:   "sprint",
				ResultType: repository.ResultTypeTime,
				EventCodes: map[string][]string{"M": {"400m"}, "F": {"400m"}},
				Thresholds: map[string]int{"U23_M": 5100, "U20_M": 5200, "U23_F": 5950, "U20_F": 6100},
			},
			{
				Event:        "800m",
				Category:     "middle_distance",
				ResultType:   repository.ResultTypeTime,
				EventCodes:   map[string][]string{"M": {"800m"}, "F": {"800m"}},
				Thresholds:   map[string]int{"U23_M": 11750, "U20_M": 12000, "U23_F": 13900, "U20_F": 14200},
				IndoorCounts: true,
			},
			{
				Event:        "1500m",
				Category:     "middle_distance",
				ResultType:   repository.ResultTypeTime,
				EventCodes:   map[string][]string{"M": {"1500m"}, "F": {"1500m"}},
				Thresholds:   map[string]int{"U23_M": 24200, "U20_M": 24800, "U23_F": 28500, "U20_F": 29400},
				IndoorCounts: true,
			},
			{
				Event:      "110m hekk",
				Category:   "hurdles",
				ResultType: repository.ResultTypeTime,
				EventCodes: map[string][]string{
					"M":     {"110mh_106"},
					"U20_M": {"110mh_99"},
				},
				Thresholds: map[string]int{"U23_M": 1590, "U20_M": 1480},
			},
			{
				Event:      "100m hekk",
				Category:   "hurdles",
				ResultType: repository.ResultTypeTime,
				EventCodes: map[string][]string{"F": {"100mh_84"}},
				Thresholds: map[string]int{"U23_F": 1490, "U20_F": 1440},
			},
			{
				Event:      "Lengde",
				Category:   "jumps",
				ResultType: repository.ResultTypeDistance,
				EventCodes: map[string][]string{"M": {"long_jump"}, "F": {"long_jump"}},
				Thresholds: map[string]int{"U23_M": 6850, "U20_M": 6600, "U23_F": 5650, "U20_F": 5500},
			},
			{
				Event:        "Høyde",
				Category:     "jumps",
				ResultType:   repository.ResultTypeHeight,
				EventCodes:   map[string][]string{"M": {"high_jump"}, "F": {"high_jump"}},
				Thresholds:   map[string]int{"U23_M": 1950, "U20_M": 1900, "U23_F": 1660, "U20_F": 1630},
				IndoorCounts: true,
			},
			{
				Event:      "Kule",
				Category:   "throws",
				ResultType: repository.ResultTypeDistance,
				EventCodes: map[string][]string{
					"M":     {"shot_put_7_26kg"},
					"U20_M": {"shot_put_6kg"},
					"F":     {"shot_put_4kg"},
				},
				Thresholds:   map[string]int{"U23_M": 14200, "U20_M": 14800, "U23_F": 12100, "U20_F": 11800},
				IndoorCounts: true,
			},
			{
				Event:      "Diskos",
				Category:   "throws",
				ResultType: repository.ResultTypeDistance,
				EventCodes: map[string][]string{
					"M":     {"discus_2kg"},
					"U20_M": {"discus_1_75kg"},
					"F":     {"discus_1kg"},
				},
				Thresholds: map[string]int{"U23_M": 43000, "U20_M": 45000, "U23_F": 40000, "U20_F": 38000},
			},
			{
				Event:      "Spyd",
				Category:   "throws",
				ResultType: repository.ResultTypeDistance,
				EventCodes: map[string][]string{"M": {"javelin_800g"}, "F": {"javelin_600g"}},
				Thresholds: map[string]int{"U23_M": 58000, "U20_M": 55000, "U23_F": 42000, "U20_F": 40000},
			},
		},
	},
	{
		Id:                 "innendors-nm",
		Name:               "NM innendørs",
		Type:               TypeSenior,
		QualificationStart: date(2025, time.November, 1),
		QualificationEnd:   date(2026, time.February, 15),
		Indoor:             true,
		Standards: []*QualificationStandard{
			{
				Event:        "60m",
				Category:     "sprint",
				ResultType:   repository.ResultTypeTime,
				EventCodes:   map[string][]string{"M": {"60m"}, "F": {"60m"}},
				Thresholds:   map[string]int{"M": 710, "F": 790},
				IndoorCounts: true,
			},
			{
				Event:        "200m",
				Category:     "sprint",
				ResultType:   repository.ResultTypeTime,
				EventCodes:   map[string][]string{"M": {"200m"}, "F": {"200m"}},
				Thresholds:   map[string]int{"M": 2290, "F": 2610},
				IndoorCounts: true,
			},
			{
				Event:        "400m",
				Category:     "sprint",
				ResultType:   repository.ResultTypeTime,
				EventCodes:   map[string][]string{"M": {"400m"}, "F": {"400m"}},
				Thresholds:   map[string]int{"M": 5070, "F": 5900},
				IndoorCounts: true,
			},
			{
				Event:        "800m",
				Category:     "middle_distance",
				ResultType:   repository.ResultTypeTime,
				EventCodes:   map[string][]string{"M": {"800m"}, "F": {"800m"}},
				Thresholds:   map[string]int{"M": 11550, "F": 13650},
				IndoorCounts: true,
			},
			{
				Event:        "60m hekk",
				Category:     "hurdles",
				ResultType:   repository.ResultTypeTime,
				EventCodes:   map[string][]string{"M": {"60mh_106"}, "F": {"60mh_84"}},
				Thresholds:   map[string]int{"M": 850, "F": 880},
				IndoorCounts: true,
			},
			{
				Event:        "Høyde",
				Category:     "jumps",
				ResultType:   repository.ResultTypeHeight,
				EventCodes:   map[string][]string{"M": {"high_jump"}, "F": {"high_jump"}},
				Thresholds:   map[string]int{"M": 1980, "F": 1680},
				IndoorCounts: true,
			},
			{
				Event:        "Lengde",
				Category:     "jumps",
				ResultType:   repository.ResultTypeDistance,
				EventCodes:   map[string][]string{"M": {"long_jump"}, "F": {"long_jump"}},
				Thresholds:   map[string]int{"M": 6900, "F": 5750},
				IndoorCounts: true,
			},
			{
				Event:        "Kule",
				Category:     "throws",
				ResultType:   repository.ResultTypeDistance,
				EventCodes:   map[string][]string{"M": {"shot_put_7_26kg"}, "F": {"shot_put_4kg"}},
				Thresholds:   map[string]int{"M": 15200, "F": 13000},
				IndoorCounts: true,
			},
		},
	},
}

func ById(id string) (*Championship, bool) {
	return utils.FindFirst(All, func(c *Championship) bool {
		return c.Id == id
	})
}

func (c *Championship) AgeClassById(id string) (AgeClass, bool) {
	return utils.FindFirst(c.AgeClasses, func(a AgeClass) bool {
		return a.Id == id
	})
}

func (c *Championship) StandardForEvent(event string) (*QualificationStandard, bool) {
	return utils.FindFirst(c.Standards, func(s *QualificationStandard) bool {
		return s.Event == event
	})
}
