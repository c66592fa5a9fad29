package syukujitsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := fixture()
	tests := []struct {
		name             string
		year, month, day int
		want             Kind
	}{
		{"public holiday", 2022, 2, 21, RealPublicHoliday},
		{"Sunday before holiday", 2022, 2, 20, DayBeforeHoliday},
		{"Tuesday after holiday", 2022, 2, 22, DayAfterHoliday},
		{"Sunday substitute", 2021, 7, 9, SubstituteHoliday},
		{"sandwich substitute", 2019, 3, 30, SubstituteHoliday},
		{"Saturday", 2023, 2, 4, Weekend},
		{"Sunday", 2023, 2, 5, Weekend},
		{"Monday", 2023, 2, 6, Weekday},
		{"Monday before a Wednesday holiday", 2022, 10, 21, Weekday},
		{"Tuesday before a Wednesday holiday", 2022, 10, 22, DayBeforeHoliday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.year, tt.month, tt.day))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "public_holiday", RealPublicHoliday.String())
	assert.Equal(t, "substitute_holiday", SubstituteHoliday.String())
	assert.Equal(t, "weekday", Weekday.String())
	assert.Equal(t, "unknown", Kind(42).String())
	assert.True(t, SubstituteHoliday.IsHoliday())
	assert.False(t, DayBeforeHoliday.IsHoliday())
}
