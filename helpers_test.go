package syukujitsu

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusinessDay(t *testing.T) {
	c := fixture()
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Wednesday", at(2022, time.June, 15), true},
		{"Saturday", at(2023, time.March, 4), false},
		{"public holiday", at(2022, time.March, 21), false},
		{"Sunday substitute", at(2021, time.August, 9), false},
		{"sandwich substitute", at(2019, time.April, 30), false},
		{"day after substitute", at(2021, time.August, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsBusinessDay(tt.date))
		})
	}
}

func TestAtHelpers_JSTNormalization(t *testing.T) {
	c := fixture()
	// 2021-08-08 15:00 UTC is midnight of 2021-08-09 in JST.
	utc := time.Date(2021, time.August, 8, 15, 0, 0, 0, time.UTC)
	assert.True(t, c.IsHolidayAt(utc))
	assert.Equal(t, SubstituteLabel, c.HolidayNameAt(utc))
	assert.Equal(t, SubstituteHoliday, c.ClassifyAt(utc))

	// One minute earlier it is still Sunday the 8th, Mountain Day.
	assert.Equal(t, "山の日", c.HolidayNameAt(utc.Add(-time.Minute)))
}

func TestHolidaysBetween_GoldenWeek2019(t *testing.T) {
	c := fixture()
	got := c.HolidaysBetween(at(2019, time.April, 28), at(2019, time.May, 7))
	want := []Holiday{
		{Date: at(2019, time.April, 29), Name: "昭和の日"},
		{Date: at(2019, time.April, 30), Name: SubstituteLabel, Substitute: true},
		{Date: at(2019, time.May, 1), Name: "休日（祝日扱い）"},
		{Date: at(2019, time.May, 2), Name: SubstituteLabel, Substitute: true},
		{Date: at(2019, time.May, 3), Name: "憲法記念日"},
		{Date: at(2019, time.May, 4), Name: "みどりの日"},
		{Date: at(2019, time.May, 5), Name: "こどもの日"},
		{Date: at(2019, time.May, 6), Name: SubstituteLabel, Substitute: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HolidaysBetween mismatch (-want +got):\n%s", diff)
	}
}

func TestHolidaysBetween_Reversed(t *testing.T) {
	c := fixture()
	assert.Nil(t, c.HolidaysBetween(at(2022, time.December, 31), at(2022, time.January, 1)))
}

func TestHolidaysInYear(t *testing.T) {
	c := fixture()
	holidays := c.HolidaysInYear(2021)
	// 16 listed holidays plus the 08-09 substitute.
	require.Len(t, holidays, 17)
	assert.Equal(t, "元日", holidays[0].Name)
	for i := 1; i < len(holidays); i++ {
		assert.True(t, holidays[i].Date.After(holidays[i-1].Date), "not sorted at %d", i)
	}
	assert.Empty(t, c.HolidaysInYear(1900))
}

func TestNextAndPreviousHoliday(t *testing.T) {
	c := fixture()

	h, ok := c.NextHoliday(at(2021, time.August, 8))
	require.True(t, ok)
	assert.Equal(t, Holiday{Date: at(2021, time.August, 9), Name: SubstituteLabel, Substitute: true}, h)

	h, ok = c.PreviousHoliday(at(2022, time.March, 22))
	require.True(t, ok)
	assert.Equal(t, "春分の日", h.Name)

	_, ok = c.NextHoliday(at(2030, time.January, 1))
	assert.False(t, ok)
}

func TestNextAndPreviousBusinessDay(t *testing.T) {
	c := fixture()
	// Golden Week 2019: Saturday 04-27 through Monday 05-06.
	assert.Equal(t, at(2019, time.May, 7), c.NextBusinessDay(at(2019, time.April, 27)))
	assert.Equal(t, at(2019, time.April, 26), c.PreviousBusinessDay(at(2019, time.May, 6)))
	assert.Equal(t, at(2022, time.June, 15), c.NextBusinessDay(at(2022, time.June, 15)))
}

func TestBusinessDaysBetween(t *testing.T) {
	c := fixture()
	// August 2021: 22 weekdays, minus the 08-09 substitute.
	assert.Equal(t, 21, c.BusinessDaysBetween(at(2021, time.August, 1), at(2021, time.August, 31)))
	assert.Equal(t, 0, c.BusinessDaysBetween(at(2021, time.August, 31), at(2021, time.August, 1)))
}
