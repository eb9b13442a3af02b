package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf_UsesBusinessTimezone(t *testing.T) {
	require.NoError(t, Init("Asia/Kolkata"))
	t.Cleanup(func() { _ = Init("") })

	// 20:00 UTC on Jan 14 is already Jan 15 in India.
	instant := time.Date(2024, 1, 14, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), DateOf(instant))
}

func TestInit_UnknownZone(t *testing.T) {
	assert.Error(t, Init("Mars/Olympus_Mons"))
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(d))
	assert.Equal(t, time.UTC, d.Location())

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	jan15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(jan15, jan15.Add(23*time.Hour)))
	assert.Equal(t, 10, DaysBetween(jan15, jan15.AddDate(0, 0, 10)))
	assert.Equal(t, -1, DaysBetween(jan15, jan15.AddDate(0, 0, -1)))
	assert.Equal(t, 366, DaysBetween(jan15, jan15.AddDate(1, 0, 0)))
}

func TestDayStartUTC(t *testing.T) {
	require.NoError(t, Init("Asia/Kolkata"))
	t.Cleanup(func() { _ = Init("UTC") })

	d := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC), DayStartUTC(d))
}
