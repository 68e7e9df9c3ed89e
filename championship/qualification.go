package championship

import (
	"sort"

	"friidrett/repository"
	"friidrett/utils"
)

const candidateLimit = 500

// BuildFilter resolves a standard into the query shape the result store
// understands. The second return value is false when the standard does not
// apply to the gender/age-class combination, in which case no query should
// be issued at all.
func BuildFilter(c *Championship, s *QualificationStandard, gender repository.Gender, ageClassId string, clubId *int) (repository.QualificationFilter, bool) {
	threshold, ok := s.Threshold(gender, ageClassId)
	if !ok {
		return repository.QualificationFilter{}, false
	}
	codes := s.ResolveEventCodes(gender, ageClassId)
	if len(codes) == 0 {
		return repository.QualificationFilter{}, false
	}

	filter := repository.QualificationFilter{
		EventCodes:    codes,
		Gender:        gender,
		From:          c.QualificationStart,
		To:            c.QualificationEnd,
		ResultType:    s.ResultType,
		Threshold:     threshold,
		OutdoorOnly:   !s.IndoorCounts,
		WindLegalOnly: RequiresWindLegal(codes),
		ExcludeManual: ExcludesManualTiming(codes),
		ClubId:        clubId,
		Limit:         candidateLimit,
	}
	if ageClassId != "" {
		if ageClass, ok := c.AgeClassById(ageClassId); ok {
			filter.MinBirthYear = ageClass.MinBirthYear
		}
	}
	return filter, true
}

// Better reports whether value a beats value b under the standard's
// comparison direction.
func Better(a int, b int, resultType repository.ResultType) bool {
	if resultType.LowerIsBetter() {
		return a < b
	}
	return a > b
}

// BestPerAthlete reduces a candidate set to one result per athlete and
// returns it ranked best-first. The comparison is made explicitly per
// athlete rather than trusting the input order, so a store that returns
// rows in the wrong order cannot silently promote a worse result.
func BestPerAthlete(results []*repository.Result, resultType repository.ResultType) []*repository.Result {
	best := make(map[int]*repository.Result)
	for _, result := range results {
		current, seen := best[result.AthleteId]
		if !seen || Better(result.PerformanceValue, current.PerformanceValue, resultType) {
			best[result.AthleteId] = result
		}
	}
	deduped := utils.Values(best)
	SortByPerformance(deduped, resultType)
	return deduped
}

// MergeBestPerAthlete combines per-age-class qualification lists into one:
// an athlete appearing in several lists keeps only their single best
// performance, and the merged list is re-ranked. Age-class boundaries are
// transparent to the final ordering.
func MergeBestPerAthlete(resultType repository.ResultType, lists ...[]*repository.Result) []*repository.Result {
	merged := make([]*repository.Result, 0)
	for _, list := range lists {
		merged = append(merged, list...)
	}
	return BestPerAthlete(merged, resultType)
}

// SortByPerformance orders results best-first, with the earlier date as a
// stable tie-breaker.
func SortByPerformance(results []*repository.Result, resultType repository.ResultType) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].PerformanceValue == results[j].PerformanceValue {
			return results[i].Date.Before(results[j].Date)
		}
		return Better(results[i].PerformanceValue, results[j].PerformanceValue, resultType)
	})
}
