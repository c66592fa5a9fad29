package syukujitsu

import "fmt"

// IsSubstituteHolidaySandwich reports whether the date is a weekday that
// is not itself a public holiday but falls between two holidays.
func (c *Calendar) IsSubstituteHolidaySandwich(year, month, day int) bool {
	d := keyOf(year, month, day)
	return !c.isReal(d) && !d.isWeekend() && c.isHoliday(d.prev()) && c.isHoliday(d.next())
}

// IsSubstituteHolidaySunday reports whether the date is the first weekday
// after a run of consecutive public holidays that reaches back to a Sunday.
func (c *Calendar) IsSubstituteHolidaySunday(year, month, day int) bool {
	return c.isSundaySubstitute(keyOf(year, month, day))
}

// isHoliday is the least fixed point of
//
//	holiday(d) = real(d) || sunday(d) || sandwich(d)
//	sandwich(d) = !real(d) && !weekend(d) && holiday(d-1) && holiday(d+1)
//
// Two adjacent sandwich days would each need the other, so a neighbour can
// only support a sandwich by being real or a Sunday substitute.
func (c *Calendar) isHoliday(d date) bool {
	if c.isAnchored(d) {
		return true
	}
	return !d.isWeekend() && c.isAnchored(d.prev()) && c.isAnchored(d.next())
}

// isAnchored reports whether d is a holiday without looking at neighbours
// that could in turn depend on d.
func (c *Calendar) isAnchored(d date) bool {
	return c.isReal(d) || c.isSundaySubstitute(d)
}

// maxHolidayRun bounds the backward walk. Any seven consecutive days
// contain a Sunday, so the walk stops by then.
const maxHolidayRun = 7

func (c *Calendar) isSundaySubstitute(d date) bool {
	if d.isWeekend() {
		return false
	}
	cur := d
	for i := 0; i < maxHolidayRun; i++ {
		cur = cur.prev()
		if !c.isReal(cur) {
			return false
		}
		if cur.isSunday() {
			return true
		}
	}
	panic(fmt.Sprintf("syukujitsu: %d consecutive holidays before %s without a Sunday", maxHolidayRun, d))
}
