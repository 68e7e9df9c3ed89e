package championship

import (
	"testing"

	"friidrett/repository"

	"github.com/stretchr/testify/assert"
)

func TestThresholdMissingGender(t *testing.T) {
	standard := &QualificationStandard{
		ResultType: repository.ResultTypeTime,
		EventCodes: map[string][]string{"M": {"110mh_106"}},
		Thresholds: map[string]int{"M": 1550},
	}
	for _, ageClassId := range []string{"", "U20", "U23"} {
		_, ok := standard.Threshold(repository.GenderFemale, ageClassId)
		assert.False(t, ok, "age class %q", ageClassId)
	}
	value, ok := standard.Threshold(repository.GenderMale, "")
	assert.True(t, ok)
	assert.Equal(t, 1550, value)
}

func TestThresholdAgeClassPrecedence(t *testing.T) {
	standard := &QualificationStandard{
		ResultType: repository.ResultTypeTime,
		Thresholds: map[string]int{"M": 1135, "U20_M": 1160},
	}
	value, ok := standard.Threshold(repository.GenderMale, "U20")
	assert.True(t, ok)
	assert.Equal(t, 1160, value)

	// No U23 key defined, falls back to the plain gender key.
	value, ok = standard.Threshold(repository.GenderMale, "U23")
	assert.True(t, ok)
	assert.Equal(t, 1135, value)
}

func TestResolveEventCodesU20Override(t *testing.T) {
	standard := &QualificationStandard{
		EventCodes: map[string][]string{
			"M":     {"shot_put_7_26kg"},
			"U20_M": {"shot_put_6kg"},
			"F":     {"shot_put_4kg"},
		},
	}
	assert.Equal(t, []string{"shot_put_6kg"}, standard.ResolveEventCodes(repository.GenderMale, "U20"))
	assert.Equal(t, []string{"shot_put_7_26kg"}, standard.ResolveEventCodes(repository.GenderMale, "U23"))
	assert.Equal(t, []string{"shot_put_7_26kg"}, standard.ResolveEventCodes(repository.GenderMale, ""))
	assert.Equal(t, []string{"shot_put_4kg"}, standard.ResolveEventCodes(repository.GenderFemale, "U20"))
}

func TestRequiresWindLegal(t *testing.T) {
	assert.True(t, RequiresWindLegal([]string{"100m"}))
	assert.True(t, RequiresWindLegal([]string{"long_jump"}))
	assert.True(t, RequiresWindLegal([]string{"110mh_99"}))
	assert.True(t, RequiresWindLegal([]string{"100mh_84"}))
	assert.False(t, RequiresWindLegal([]string{"400m"}))
	assert.False(t, RequiresWindLegal([]string{"high_jump"}))
	assert.False(t, RequiresWindLegal([]string{"800m"}))
}

func TestExcludesManualTiming(t *testing.T) {
	assert.True(t, ExcludesManualTiming([]string{"60m"}))
	assert.True(t, ExcludesManualTiming([]string{"400m"}))
	assert.True(t, ExcludesManualTiming([]string{"400mh"}))
	assert.True(t, ExcludesManualTiming([]string{"60mh_106"}))
	assert.False(t, ExcludesManualTiming([]string{"800m"}))
	assert.False(t, ExcludesManualTiming([]string{"javelin_800g"}))
}

func TestRegistryLookups(t *testing.T) {
	c, ok := ById("junior-nm")
	assert.True(t, ok)
	assert.Equal(t, TypeJunior, c.Type)

	_, ok = ById("nope")
	assert.False(t, ok)

	ageClass, ok := c.AgeClassById("U20")
	assert.True(t, ok)
	assert.Equal(t, 2007, ageClass.MinBirthYear)

	standard, ok := c.StandardForEvent("100m")
	assert.True(t, ok)
	assert.Equal(t, repository.ResultTypeTime, standard.ResultType)
}

func TestRegistryThresholdsApplicable(t *testing.T) {
	// Every standard must resolve a threshold and codes for at least one
	// gender/age-class combination, otherwise it could never be listed.
	for _, c := range All {
		ageClassIds := []string{""}
		for _, ageClass := range c.AgeClasses {
			ageClassIds = append(ageClassIds, ageClass.Id)
		}
		for _, standard := range c.Standards {
			applicable := false
			for _, gender := range []repository.Gender{repository.GenderMale, repository.GenderFemale} {
				for _, ageClassId := range ageClassIds {
					_, hasThreshold := standard.Threshold(gender, ageClassId)
					if hasThreshold && len(standard.ResolveEventCodes(gender, ageClassId)) > 0 {
						applicable = true
					}
				}
			}
			assert.True(t, applicable, "%s/%s", c.Id, standard.Event)
		}
	}
}
