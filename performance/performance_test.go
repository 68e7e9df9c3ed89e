package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSubMinuteTimeUnchanged(t *testing.T) {
	assert.Equal(t, "45.12", Format("45.12", TypeTime))
	assert.Equal(t, "10.45", Format("10.45", TypeTime))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "4:39.48", Format("279.48", TypeTime))
	assert.Equal(t, "1:09.48", Format("69.48", TypeTime))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1:01:40.00", Format("3700.00", TypeTime))
}

func TestFormatEmptyIsPlaceholder(t *testing.T) {
	assert.Equal(t, Placeholder, Format("", TypeTime))
}

func TestFormatPreformattedUnchanged(t *testing.T) {
	assert.Equal(t, "4:39.48", Format("4:39.48", TypeTime))
}

func TestFormatNonTimeTypesUnchanged(t *testing.T) {
	assert.Equal(t, "6.60", Format("6.60", TypeDistance))
	assert.Equal(t, "2.00", Format("2.00", TypeHeight))
	assert.Equal(t, "7500", Format("7500", TypePoints))
}

func TestFormatUnparseableUnchanged(t *testing.T) {
	assert.Equal(t, "DNF", Format("DNF", TypeTime))
}

func TestParseTime(t *testing.T) {
	value, err := Parse("11.30", TypeTime)
	assert.NoError(t, err)
	assert.Equal(t, 1130, value)

	value, err = Parse("1:51.30", TypeTime)
	assert.NoError(t, err)
	assert.Equal(t, 11130, value)

	value, err = Parse("1:01:40.00", TypeTime)
	assert.NoError(t, err)
	assert.Equal(t, 370000, value)
}

func TestParseDistance(t *testing.T) {
	value, err := Parse("6.60", TypeDistance)
	assert.NoError(t, err)
	assert.Equal(t, 6600, value)

	value, err = Parse("2.00", TypeHeight)
	assert.NoError(t, err)
	assert.Equal(t, 2000, value)
}

func TestParsePoints(t *testing.T) {
	value, err := Parse("7500", TypePoints)
	assert.NoError(t, err)
	assert.Equal(t, 7500, value)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("", TypeTime)
	assert.Error(t, err)
	_, err = Parse("abc", TypeTime)
	assert.Error(t, err)
	_, err = Parse("1:2:3:4", TypeTime)
	assert.Error(t, err)
}
