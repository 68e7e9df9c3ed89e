// Package performance converts between stored performance values and the
// notation shown on result pages. Times are normalized to hundredths of a
// second, distances and heights to millimetres.
package performance

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Placeholder is rendered for missing performances.
const Placeholder = "–"

const (
	TypeTime     = "time"
	TypeDistance = "distance"
	TypeHeight   = "height"
	TypePoints   = "points"
)

// Format renders a raw performance string for display. Raw values that are
// already formatted, non-time values and unparseable input are passed
// through unchanged; sub-minute times stay in plain seconds notation.
func Format(raw string, resultType string) string {
	if raw == "" {
		return Placeholder
	}
	if strings.Contains(raw, ":") {
		return raw
	}
	switch resultType {
	case TypeDistance, TypeHeight, TypePoints:
		return raw
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	if seconds < 60 {
		return raw
	}

	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	remainder := seconds - float64(hours*3600) - float64(minutes*60)
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%05.2f", hours, minutes, remainder)
	}
	return fmt.Sprintf("%d:%05.2f", minutes, remainder)
}

// Parse converts a display performance to its normalized integer value:
// hundredths of a second for times, millimetres for distances and heights,
// the plain integer for points. Time notation accepts "SS.ss", "M:SS.ss"
// and "H:MM:SS.ss".
func Parse(display string, resultType string) (int, error) {
	display = strings.TrimSpace(display)
	if display == "" {
		return 0, fmt.Errorf("empty performance")
	}
	switch resultType {
	case TypeDistance, TypeHeight:
		meters, err := strconv.ParseFloat(display, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s performance %q: %v", resultType, display, err)
		}
		return int(math.Round(meters * 1000)), nil
	case TypePoints:
		points, err := strconv.Atoi(display)
		if err != nil {
			return 0, fmt.Errorf("invalid points value %q: %v", display, err)
		}
		return points, nil
	}

	parts := strings.Split(display, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q", display)
	}
	seconds, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %v", display, err)
	}
	total := seconds
	if len(parts) >= 2 {
		minutes, err := strconv.Atoi(parts[len(parts)-2])
		if err != nil {
			return 0, fmt.Errorf("invalid time %q: %v", display, err)
		}
		total += float64(minutes) * 60
	}
	if len(parts) == 3 {
		hours, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid time %q: %v", display, err)
		}
		total += float64(hours) * 3600
	}
	return int(math.Round(total * 100)), nil
}
