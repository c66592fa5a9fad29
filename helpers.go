package syukujitsu

import "time"

// searchLimit bounds the day-by-day scans below.
const searchLimit = 366

// Holiday is a single holiday day.
type Holiday struct {
	Date       time.Time // Midnight UTC.
	Name       string    // Listed name, or SubstituteLabel.
	Substitute bool      // Derived by a substitute rule rather than listed.
}

func (c *Calendar) holidayAt(d date) (Holiday, bool) {
	if rec, ok := c.table[d]; ok {
		return Holiday{Date: d.toTime(), Name: rec.Name}, true
	}
	if c.isHoliday(d) {
		return Holiday{Date: d.toTime(), Name: SubstituteLabel, Substitute: true}, true
	}
	return Holiday{}, false
}

// IsHolidayAt is IsHoliday for the JST calendar date of t.
func (c *Calendar) IsHolidayAt(t time.Time) bool {
	return c.isHoliday(dateFromTime(t))
}

// HolidayNameAt is HolidayName for the JST calendar date of t.
func (c *Calendar) HolidayNameAt(t time.Time) string {
	return c.holidayName(dateFromTime(t))
}

// ClassifyAt is Classify for the JST calendar date of t.
func (c *Calendar) ClassifyAt(t time.Time) Kind {
	return c.classify(dateFromTime(t))
}

// IsBusinessDay reports whether the JST date of t is neither a weekend nor
// a holiday. Substitute holidays are not business days.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	return c.isBusinessDay(dateFromTime(t))
}

func (c *Calendar) isBusinessDay(d date) bool {
	return !d.isWeekend() && !c.isHoliday(d)
}

// HolidaysBetween returns the holidays in [from, to], listed and
// substitute, sorted by date. If from is after to, returns nil.
func (c *Calendar) HolidaysBetween(from, to time.Time) []Holiday {
	fromD := dateFromTime(from)
	toD := dateFromTime(to)
	if toD.before(fromD) {
		return nil
	}
	return c.holidaysInRange(fromD, toD)
}

// HolidaysInYear returns the holidays of the year sorted by date.
func (c *Calendar) HolidaysInYear(year int) []Holiday {
	return c.holidaysInRange(keyOf(year, 0, 1), keyOf(year, 11, 31))
}

func (c *Calendar) holidaysInRange(from, to date) []Holiday {
	var result []Holiday
	for d := from; !d.after(to); d = d.next() {
		if h, ok := c.holidayAt(d); ok {
			result = append(result, h)
		}
	}
	return result
}

// NextHoliday returns the first holiday strictly after t. It gives up
// after a year without one.
func (c *Calendar) NextHoliday(t time.Time) (Holiday, bool) {
	d := dateFromTime(t)
	for i := 0; i < searchLimit; i++ {
		d = d.next()
		if h, ok := c.holidayAt(d); ok {
			return h, true
		}
	}
	return Holiday{}, false
}

// PreviousHoliday returns the last holiday strictly before t. It gives up
// after a year without one.
func (c *Calendar) PreviousHoliday(t time.Time) (Holiday, bool) {
	d := dateFromTime(t)
	for i := 0; i < searchLimit; i++ {
		d = d.prev()
		if h, ok := c.holidayAt(d); ok {
			return h, true
		}
	}
	return Holiday{}, false
}

// NextBusinessDay returns the first business day on or after t, at
// midnight UTC. Returns the zero time if none is found within 366 days.
func (c *Calendar) NextBusinessDay(t time.Time) time.Time {
	return c.scanBusinessDay(dateFromTime(t), 1)
}

// PreviousBusinessDay returns the last business day on or before t, at
// midnight UTC. Returns the zero time if none is found within 366 days.
func (c *Calendar) PreviousBusinessDay(t time.Time) time.Time {
	return c.scanBusinessDay(dateFromTime(t), -1)
}

func (c *Calendar) scanBusinessDay(d date, step int) time.Time {
	for i := 0; i < searchLimit; i++ {
		if c.isBusinessDay(d) {
			return d.toTime()
		}
		d = d.addDays(step)
	}
	return time.Time{}
}

// BusinessDaysBetween counts the business days in [from, to].
// If from is after to, returns 0.
func (c *Calendar) BusinessDaysBetween(from, to time.Time) int {
	fromD := dateFromTime(from)
	toD := dateFromTime(to)
	count := 0
	for d := fromD; !d.after(toD); d = d.next() {
		if c.isBusinessDay(d) {
			count++
		}
	}
	return count
}
