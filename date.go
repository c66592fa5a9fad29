package syukujitsu

import (
	"time"

	"github.com/rickar/cal/v2"
)

// jstZone is the Asia/Tokyo timezone (UTC+9). time.Time inputs are moved
// into it before the calendar date is taken.
var jstZone = time.FixedZone("Asia/Tokyo", 9*60*60)

// date is the table key. month is 0-based, matching the query API.
type date struct {
	year  int
	month int
	day   int
}

// keyOf builds a key from (year, 0-based month, day), normalizing
// out-of-range components the way time.Date does.
func keyOf(year, month, day int) date {
	return fromUTC(time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC))
}

func fromUTC(t time.Time) date {
	y, m, d := t.Date()
	return date{year: y, month: int(m) - 1, day: d}
}

// dateFromTime converts a time.Time to a date by first normalizing to JST.
func dateFromTime(t time.Time) date {
	y, m, d := t.In(jstZone).Date()
	return date{year: y, month: int(m) - 1, day: d}
}

func (d date) toTime() time.Time {
	return time.Date(d.year, time.Month(d.month+1), d.day, 0, 0, 0, 0, time.UTC)
}

func (d date) addDays(n int) date {
	return fromUTC(d.toTime().AddDate(0, 0, n))
}

func (d date) next() date { return d.addDays(1) }
func (d date) prev() date { return d.addDays(-1) }

func (d date) isWeekend() bool {
	return cal.IsWeekend(d.toTime())
}

func (d date) isSunday() bool {
	return d.toTime().Weekday() == time.Sunday
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d date) after(other date) bool {
	return other.before(d)
}

func (d date) inRange(from, to date) bool {
	return !d.before(from) && !to.before(d)
}

func (d date) String() string {
	return d.toTime().Format("2006-01-02")
}
