package syukujitsu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessCalendar(t *testing.T) {
	c := fixture()
	bc := c.BusinessCalendar()

	actual, _, h := bc.IsHoliday(at(2022, time.March, 21))
	require.True(t, actual)
	assert.Equal(t, "春分の日", h.Name)

	actual, _, h = bc.IsHoliday(at(2021, time.August, 9))
	require.True(t, actual)
	assert.Equal(t, SubstituteLabel, h.Name)

	// Single-year entries must not repeat in other years.
	actual, _, _ = bc.IsHoliday(at(2022, time.August, 9))
	assert.False(t, actual)

	assert.False(t, bc.IsWorkday(at(2019, time.April, 30)))
	assert.True(t, bc.IsWorkday(at(2019, time.May, 7)))
	assert.False(t, bc.IsWorkday(at(2023, time.March, 4)))
}

func TestBusinessCalendar_AgreesWithIsBusinessDay(t *testing.T) {
	c := fixture()
	bc := c.BusinessCalendar()
	for d := keyOf(2019, 0, 1); d.year < 2021; d = d.next() {
		assert.Equal(t, c.isBusinessDay(d), bc.IsWorkday(d.toTime()), d.String())
	}
}

func TestBusinessCalendar_Empty(t *testing.T) {
	bc := FromRecords(nil).BusinessCalendar()
	assert.True(t, bc.IsWorkday(at(2022, time.March, 21)))
}
