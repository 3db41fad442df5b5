package soda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatingTimestamp_Naive(t *testing.T) {
	t.Parallel()

	got, err := ParseFloatingTimestamp("2015-03-14T09:26:53", nil)
	require.NoError(t, err)

	assert.Equal(t, 2015, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 14, got.Day())
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 26, got.Minute())
	assert.Equal(t, 53, got.Second())
	assert.Equal(t, 0, got.Nanosecond())
	assert.Equal(t, time.UTC, got.Location())
}

func TestParseFloatingTimestamp_WithZone(t *testing.T) {
	t.Parallel()

	cst := time.FixedZone("CST", -6*60*60)
	got, err := ParseFloatingTimestamp("2015-03-14T09:26:53", cst)
	require.NoError(t, err)

	// Wall-clock fields are kept as-is and tagged with the zone, not
	// converted from UTC.
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 26, got.Minute())
	assert.Equal(t, cst, got.Location())

	naive, err := ParseFloatingTimestamp("2015-03-14T09:26:53", nil)
	require.NoError(t, err)
	assert.Equal(t, 6*time.Hour, got.Sub(naive), "CST wall clock lies 6h after the same UTC wall clock")
}

func TestParseFloatingTimestamp_Invalid(t *testing.T) {
	t.Parallel()

	cases := []string{
		"not-a-date",
		"",
		"2015-03-14",
		"09:26:53",
		"2015-03-14T09:26",
		"2015-03-14T09:26:53.123",
		"2015-03-14T09:26:53Z",
		"2015-03-14T09:26:53-06:00",
		"2015-03-14 09:26:53",
		"2015-03-14T09:26:53 trailing",
	}

	for _, ts := range cases {
		_, err := ParseFloatingTimestamp(ts, nil)
		require.Error(t, err, "input %q", ts)

		var ferr *FormatError
		assert.ErrorAs(t, err, &ferr, "input %q", ts)
	}
}

func TestParseFloatingTimestamp_RoundTrip(t *testing.T) {
	t.Parallel()

	const in = "2015-03-14T09:26:53"
	got, err := ParseFloatingTimestamp(in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, got.Format(FloatingTimestampLayout))
}
