package championship

import (
	"testing"
	"time"

	"friidrett/repository"

	"github.com/stretchr/testify/assert"
)

func result(athleteId int, value int, day int) *repository.Result {
	return &repository.Result{
		AthleteId:        athleteId,
		PerformanceValue: value,
		Date:             time.Date(2026, time.June, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildFilterNotApplicable(t *testing.T) {
	c, _ := ById("hoved-nm")
	standard, _ := c.StandardForEvent("110m hekk")

	// Standard only defines men, no query shape for women.
	_, ok := BuildFilter(c, standard, repository.GenderFemale, "", nil)
	assert.False(t, ok)
}

func TestBuildFilterSprint(t *testing.T) {
	c, _ := ById("hoved-nm")
	standard, _ := c.StandardForEvent("100m")

	filter, ok := BuildFilter(c, standard, repository.GenderMale, "", nil)
	assert.True(t, ok)
	assert.Equal(t, []string{"100m"}, filter.EventCodes)
	assert.Equal(t, 1110, filter.Threshold)
	assert.Equal(t, repository.ResultTypeTime, filter.ResultType)
	assert.Equal(t, c.QualificationStart, filter.From)
	assert.Equal(t, c.QualificationEnd, filter.To)
	assert.True(t, filter.OutdoorOnly)
	assert.True(t, filter.WindLegalOnly)
	assert.True(t, filter.ExcludeManual)
	assert.Equal(t, 0, filter.MinBirthYear)
	assert.Equal(t, 500, filter.Limit)
}

func TestBuildFilterThrowWithAgeClass(t *testing.T) {
	c, _ := ById("junior-nm")
	standard, _ := c.StandardForEvent("Kule")

	filter, ok := BuildFilter(c, standard, repository.GenderMale, "U20", nil)
	assert.True(t, ok)
	assert.Equal(t, []string{"shot_put_6kg"}, filter.EventCodes)
	assert.Equal(t, 14800, filter.Threshold)
	assert.False(t, filter.OutdoorOnly)
	assert.False(t, filter.WindLegalOnly)
	assert.False(t, filter.ExcludeManual)
	assert.Equal(t, 2007, filter.MinBirthYear)
}

func TestBestPerAthleteKeepsBestNotFirst(t *testing.T) {
	// The worse result arrives first; the explicit comparison must still
	// keep the better one, regardless of input order.
	results := []*repository.Result{
		result(1, 1125, 1),
		result(1, 1120, 2),
	}
	deduped := BestPerAthlete(results, repository.ResultTypeTime)
	assert.Len(t, deduped, 1)
	assert.Equal(t, 1120, deduped[0].PerformanceValue)
}

func TestBestPerAthleteRanksAscendingForTimes(t *testing.T) {
	results := []*repository.Result{
		result(2, 1135, 1),
		result(1, 1125, 1),
		result(3, 1130, 1),
		result(2, 1140, 2),
	}
	deduped := BestPerAthlete(results, repository.ResultTypeTime)
	values := make([]int, 0, len(deduped))
	for _, r := range deduped {
		values = append(values, r.PerformanceValue)
	}
	assert.Equal(t, []int{1125, 1130, 1135}, values)
}

func TestBestPerAthleteRanksDescendingForDistances(t *testing.T) {
	results := []*repository.Result{
		result(1, 6600, 1),
		result(2, 6700, 1),
		result(3, 6650, 1),
	}
	deduped := BestPerAthlete(results, repository.ResultTypeDistance)
	values := make([]int, 0, len(deduped))
	for _, r := range deduped {
		values = append(values, r.PerformanceValue)
	}
	assert.Equal(t, []int{6700, 6650, 6600}, values)
}

func TestMergeBestPerAthleteAcrossAgeClasses(t *testing.T) {
	u23 := []*repository.Result{
		result(1, 1135, 1),
		result(2, 1130, 1),
	}
	u20 := []*repository.Result{
		result(1, 1120, 2),
		result(3, 1140, 1),
	}
	merged := MergeBestPerAthlete(repository.ResultTypeTime, u23, u20)
	assert.Len(t, merged, 3)
	assert.Equal(t, 1, merged[0].AthleteId)
	assert.Equal(t, 1120, merged[0].PerformanceValue)
	assert.Equal(t, 2, merged[1].AthleteId)
	assert.Equal(t, 3, merged[2].AthleteId)
}

func TestSortByPerformanceTieBreaksOnDate(t *testing.T) {
	first := result(1, 1130, 5)
	second := result(2, 1130, 1)
	results := []*repository.Result{first, second}
	SortByPerformance(results, repository.ResultTypeTime)
	assert.Equal(t, 2, results[0].AthleteId)
	assert.Equal(t, 1, results[1].AthleteId)
}

func TestBetter(t *testing.T) {
	assert.True(t, Better(1120, 1125, repository.ResultTypeTime))
	assert.False(t, Better(1125, 1120, repository.ResultTypeTime))
	assert.True(t, Better(6700, 6600, repository.ResultTypeDistance))
	assert.True(t, Better(2000, 1950, repository.ResultTypeHeight))
}
