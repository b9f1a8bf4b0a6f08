package station

import (
	"fmt"
	"strings"
	"time"
)

// Year is the calendar year every reading belongs to.
const Year = 2017

// MonthDay is a calendar day within Year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// FirstDay and LastDay bound the date slider.
var (
	FirstDay = MonthDay{Month: time.January, Day: 1}
	LastDay  = MonthDay{Month: time.December, Day: 31}
)

// ParseDate accepts YYYYMMDD or YYYY-MM-DD within Year.
func ParseDate(s string) (MonthDay, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	t, err := time.Parse("20060102", s)
	if err != nil {
		return MonthDay{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	if t.Year() != Year {
		return MonthDay{}, fmt.Errorf("date %q is outside %d", s, Year)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

func (d MonthDay) time() time.Time {
	return time.Date(Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the day as "Jan 02".
func (d MonthDay) String() string {
	return d.time().Format("Jan 02")
}

// Key is the MMDD form compared against Record.MonthDayKey.
func (d MonthDay) Key() string {
	return fmt.Sprintf("%02d%02d", int(d.Month), d.Day)
}

// DayOfYear is 1 for Jan 01.
func (d MonthDay) DayOfYear() int {
	return d.time().YearDay()
}

// DaysInYear is the number of slider positions.
func DaysInYear() int {
	return LastDay.DayOfYear()
}

// FromDayOfYear converts n, clamped to the year, back into a MonthDay.
func FromDayOfYear(n int) MonthDay {
	n = min(max(n, 1), DaysInYear())
	t := time.Date(Year, time.January, n, 0, 0, 0, 0, time.UTC)
	return MonthDay{Month: t.Month(), Day: t.Day()}
}

// AddDays moves by n days without leaving the year.
func (d MonthDay) AddDays(n int) MonthDay {
	return FromDayOfYear(d.DayOfYear() + n)
}

// AddMonths moves by n months, keeping the day where the month allows it.
func (d MonthDay) AddMonths(n int) MonthDay {
	m := int(d.Month) + n
	if m < 1 {
		return FirstDay
	}
	if m > 12 {
		return LastDay
	}
	last := time.Date(Year, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return MonthDay{Month: time.Month(m), Day: min(d.Day, last)}
}

// MonthStarts returns the first day of every month, used as slider ticks.
func MonthStarts() []MonthDay {
	out := make([]MonthDay, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, MonthDay{Month: m, Day: 1})
	}
	return out
}
