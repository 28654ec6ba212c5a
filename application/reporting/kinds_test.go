package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeguard/pkg/apperrors"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	for _, bad := range []string{"", "achievements", "TIME_SUMMARY", "time_summary;drop"} {
		_, err := ParseKind(bad)
		assert.ErrorIs(t, err, apperrors.ErrValidation, bad)
	}
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("", "")
	require.NoError(t, err)
	assert.True(t, r.IsZero())

	r, err = ParseDateRange("2026-10-01T08:00:00Z", "2026-10-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC), *r.Start)
	assert.Equal(t, 2, r.End.Day())
	assert.Equal(t, 23, r.End.Hour())

	_, err = ParseDateRange("not-a-date", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = ParseDateRange("2026-10-05", "2026-10-01")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDateRangeContains(t *testing.T) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
	r := DateRange{Start: &start, End: &end}

	inside := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	insideEnd := inside.Add(time.Hour)
	assert.True(t, r.Contains(inside, &insideEnd))
	assert.False(t, r.Contains(inside, nil), "open entries are excluded once an end bound is set")
	assert.False(t, r.Contains(start.Add(-time.Second), &insideEnd))

	onlyStart := DateRange{Start: &start}
	assert.True(t, onlyStart.Contains(inside, nil))
}
