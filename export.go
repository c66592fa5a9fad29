package syukujitsu

import (
	"github.com/rickar/cal/v2"
)

// BusinessCalendar returns a rickar/cal business calendar with a Monday to
// Friday work week and every holiday of the table's years, substitute
// holidays included. Each day is registered as a single-year holiday.
func (c *Calendar) BusinessCalendar() *cal.BusinessCalendar {
	bc := cal.NewBusinessCalendar()
	bc.Cacheable = true
	bc.AddHoliday(c.calHolidays()...)
	return bc
}

func (c *Calendar) calHolidays() []*cal.Holiday {
	if len(c.table) == 0 {
		return nil
	}
	first, last := c.span()
	var out []*cal.Holiday
	for _, h := range c.holidaysInRange(keyOf(first, 0, 1), keyOf(last, 11, 31)) {
		y, m, d := h.Date.Date()
		out = append(out, &cal.Holiday{
			Name:      h.Name,
			Type:      cal.ObservancePublic,
			StartYear: y,
			EndYear:   y,
			Month:     m,
			Day:       d,
			Func:      cal.CalcDayOfMonth,
		})
	}
	return out
}

// span returns the first and last year present in the table.
func (c *Calendar) span() (first, last int) {
	started := false
	for d := range c.table {
		if !started || d.year < first {
			first = d.year
		}
		if !started || d.year > last {
			last = d.year
		}
		started = true
	}
	return first, last
}
