package championship

import (
	"strings"

	"friidrett/repository"
	"friidrett/utils"
)

// Wind readings invalidate sprints up to 200m and the horizontal jumps.
var windAffectedCodes = []string{"100m", "200m", "long_jump", "triple_jump"}
var windAffectedPrefixes = []string{"100mh", "110mh"}

// Hand-timed marks are not comparable for the short sprints and hurdles.
var manualSensitiveCodes = []string{"60m", "100m", "200m", "400m"}
var manualSensitivePrefixes = []string{"60mh", "100mh", "110mh", "400mh"}

// Threshold resolves the qualifying value for a gender/age-class
// combination. An age-class-specific key takes precedence over the plain
// gender key; a missing key means the standard does not apply.
func (s *QualificationStandard) Threshold(gender repository.Gender, ageClassId string) (int, bool) {
	if ageClassId != "" {
		if value, ok := s.Thresholds[ageClassId+"_"+string(gender)]; ok {
			return value, true
		}
	}
	value, ok := s.Thresholds[string(gender)]
	return value, ok
}

// ResolveEventCodes returns the event codes to query for a gender/age-class
// combination. U20 men get their own code list when the standard defines one
// (lighter implements, lower hurdles).
func (s *QualificationStandard) ResolveEventCodes(gender repository.Gender, ageClassId string) []string {
	if ageClassId == "U20" && gender == repository.GenderMale {
		if codes, ok := s.EventCodes["U20_M"]; ok {
			return codes
		}
	}
	return s.EventCodes[string(gender)]
}

func matchesAny(code string, exact []string, prefixes []string) bool {
	if utils.Contains(exact, code) {
		return true
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}

// RequiresWindLegal reports whether any of the resolved codes is wind
// affected, in which case only wind-legal results may qualify.
func RequiresWindLegal(codes []string) bool {
	for _, code := range codes {
		if matchesAny(code, windAffectedCodes, windAffectedPrefixes) {
			return true
		}
	}
	return false
}

// ExcludesManualTiming reports whether any of the resolved codes is too
// short for hand timing to be comparable.
func ExcludesManualTiming(codes []string) bool {
	for _, code := range codes {
		if matchesAny(code, manualSensitiveCodes, manualSensitivePrefixes) {
			return true
		}
	}
	return false
}
