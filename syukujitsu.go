// Package syukujitsu determines Japanese public-holiday status for calendar
// dates.
//
// A Calendar is built once from the rows of the Cabinet Office holiday list
// (内閣府 syukujitsu.csv) and is read-only afterwards, so it is safe for
// concurrent use once New has returned. Rows labelled "休日" are not stored;
// those days are re-derived by the two substitute (振替休日) rules:
//
//   - sandwich: a weekday that is not itself a public holiday but has a
//     holiday on both sides.
//   - Sunday chain: the first weekday after an unbroken run of public
//     holidays that reaches back to a Sunday.
//
// IMPORTANT: every (year, month, day) query takes a 0-based month, so
// January is 0 and December is 11. Callers holding a time.Month must pass
// int(m)-1. The *At helpers take a time.Time instead and normalize it to
// JST before the date is taken.
//
//	rows, _ := source.ReadFile("syukujitsu.csv")
//	c, _ := syukujitsu.New(rows)
//	c.IsHoliday(2022, 2, 21)   // true (March 21)
//	c.HolidayName(2022, 2, 21) // "春分の日"
package syukujitsu

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SubstituteLabel is the label the source list uses for substitute
// holidays. Rows carrying it are skipped at construction, and HolidayName
// reports it for days that are holidays only through a substitute rule.
const SubstituteLabel = "休日"

var (
	// ErrInvalidDate is returned by New for a date that is not "YYYY/M/D".
	ErrInvalidDate = errors.New("syukujitsu: invalid date")
	// ErrEmptyName is returned by New for a row without a label.
	ErrEmptyName = errors.New("syukujitsu: empty holiday name")
)

// Row is one raw line of the holiday list.
type Row struct {
	Date  string // "2022/3/21" or "2022/03/21".
	Label string // Holiday name, or SubstituteLabel.
}

// Record is a stored public holiday.
type Record struct {
	Year  int
	Month int // 0-based.
	Day   int
	Name  string
}

// Calendar is an immutable holiday table plus the substitute-holiday rules.
// Create one with [New].
type Calendar struct {
	table map[date]Record
}

// New builds a Calendar from the rows of the holiday list. Rows labelled
// SubstituteLabel are skipped. If two rows share a date the later one wins.
func New(rows []Row) (*Calendar, error) {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return FromRecords(records), nil
}

// MustNew is like New but panics on error.
func MustNew(rows []Row) *Calendar {
	c, err := New(rows)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRecords builds a Calendar from already parsed records. Records named
// SubstituteLabel are skipped, as in New.
func FromRecords(records []Record) *Calendar {
	c := &Calendar{table: make(map[date]Record, len(records))}
	for _, rec := range records {
		if rec.Name == SubstituteLabel {
			continue
		}
		k := keyOf(rec.Year, rec.Month, rec.Day)
		rec.Year, rec.Month, rec.Day = k.year, k.month, k.day
		c.table[k] = rec
	}
	return c
}

func parseRow(row Row) (Record, error) {
	name := strings.TrimSpace(row.Label)
	if name == "" {
		return Record{}, fmt.Errorf("%w: %q", ErrEmptyName, row.Date)
	}
	y, m, d, err := ParseDate(row.Date)
	if err != nil {
		return Record{}, err
	}
	return Record{Year: y, Month: m, Day: d, Name: name}, nil
}

// ParseDate splits "YYYY/M/D" into year, 0-based month and day.
func ParseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	var n [3]int
	for i, p := range parts {
		v, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		n[i] = v
	}
	if n[1] < 1 || n[1] > 12 || n[2] < 1 || n[2] > 31 {
		return 0, 0, 0, fmt.Errorf("%w: %q out of range", ErrInvalidDate, s)
	}
	return n[0], n[1] - 1, n[2], nil
}

// Len returns the number of stored public holidays.
func (c *Calendar) Len() int { return len(c.table) }

// Records returns the stored public holidays sorted by date.
func (c *Calendar) Records() []Record {
	out := make([]Record, 0, len(c.table))
	for _, rec := range c.table {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return keyOf(out[i].Year, out[i].Month, out[i].Day).before(keyOf(out[j].Year, out[j].Month, out[j].Day))
	})
	return out
}

// Lookup returns the stored record for the date, if any.
func (c *Calendar) Lookup(year, month, day int) (Record, bool) {
	rec, ok := c.table[keyOf(year, month, day)]
	return rec, ok
}

// IsRealPublicHoliday reports whether the date is listed in the table.
// Substitute holidays are not.
func (c *Calendar) IsRealPublicHoliday(year, month, day int) bool {
	return c.isReal(keyOf(year, month, day))
}

// IsHoliday reports whether the date is a public holiday or a substitute
// holiday under either rule.
func (c *Calendar) IsHoliday(year, month, day int) bool {
	return c.isHoliday(keyOf(year, month, day))
}

// HolidayName returns the listed name for a public holiday,
// SubstituteLabel for a day that is a holiday only by a substitute rule,
// and "" otherwise.
func (c *Calendar) HolidayName(year, month, day int) string {
	return c.holidayName(keyOf(year, month, day))
}

// IsDayBeforeHoliday reports whether the following day is a holiday.
func (c *Calendar) IsDayBeforeHoliday(year, month, day int) bool {
	return c.isHoliday(keyOf(year, month, day).next())
}

// IsDayAfterHoliday reports whether the preceding day is a holiday.
func (c *Calendar) IsDayAfterHoliday(year, month, day int) bool {
	return c.isHoliday(keyOf(year, month, day).prev())
}

// IsWeekend reports whether the date is a Saturday or Sunday.
func (c *Calendar) IsWeekend(year, month, day int) bool {
	return keyOf(year, month, day).isWeekend()
}

// IsSunday reports whether the date is a Sunday.
func (c *Calendar) IsSunday(year, month, day int) bool {
	return keyOf(year, month, day).isSunday()
}

func (c *Calendar) isReal(d date) bool {
	_, ok := c.table[d]
	return ok
}

func (c *Calendar) holidayName(d date) string {
	if rec, ok := c.table[d]; ok {
		return rec.Name
	}
	if c.isHoliday(d) {
		return SubstituteLabel
	}
	return ""
}
