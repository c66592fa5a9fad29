package syukujitsu

// Kind classifies a calendar day.
type Kind int

const (
	Weekday Kind = iota
	Weekend
	DayAfterHoliday
	DayBeforeHoliday
	SubstituteHoliday
	RealPublicHoliday
)

var kindNames = [...]string{
	Weekday:           "weekday",
	Weekend:           "weekend",
	DayAfterHoliday:   "day_after_holiday",
	DayBeforeHoliday:  "day_before_holiday",
	SubstituteHoliday: "substitute_holiday",
	RealPublicHoliday: "public_holiday",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsHoliday reports whether k is one of the holiday kinds.
func (k Kind) IsHoliday() bool {
	return k == RealPublicHoliday || k == SubstituteHoliday
}

// Classify returns the first matching kind in the order public holiday,
// substitute holiday, day before a holiday, day after a holiday, weekend,
// weekday. A Saturday before a holiday is DayBeforeHoliday.
func (c *Calendar) Classify(year, month, day int) Kind {
	return c.classify(keyOf(year, month, day))
}

func (c *Calendar) classify(d date) Kind {
	switch {
	case c.isReal(d):
		return RealPublicHoliday
	case c.isHoliday(d):
		return SubstituteHoliday
	case c.isHoliday(d.next()):
		return DayBeforeHoliday
	case c.isHoliday(d.prev()):
		return DayAfterHoliday
	case d.isWeekend():
		return Weekend
	default:
		return Weekday
	}
}
