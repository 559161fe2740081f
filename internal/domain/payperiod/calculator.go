package payperiod

import (
	"fmt"
	"strings"
	"time"
)

const (
	secondsPerDay  = 24 * 60 * 60
	labelSeparator = " to "
)

// PeriodLength returns the number of days in one period. Monthly periods are a
// fixed 30 days, not calendar months. Unknown types are treated as biweekly.
func PeriodLength(t Type) int {
	switch t {
	case TypeWeekly:
		return 7
	case TypeMonthly:
		return 30
	default:
		return 14
	}
}

// ParseType validates a raw period type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeWeekly, TypeBiweekly, TypeMonthly:
		return Type(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPeriodType, s)
}

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// CurrentPeriod returns the period of cfg that contains asOf. Dates before the
// anchor resolve to periods before the anchor.
func CurrentPeriod(cfg Config, asOf time.Time) Period {
	length := PeriodLength(cfg.Type)
	anchor := DateOf(cfg.StartDate)

	daysSinceAnchor := daysBetween(anchor, DateOf(asOf))
	elapsed := floorDiv(daysSinceAnchor, length)

	start := anchor.AddDate(0, 0, elapsed*length)
	return Period{
		Start: start,
		End:   start.AddDate(0, 0, length-1),
	}
}

// RecentPeriods returns the count most recent periods, most recent first.
func RecentPeriods(cfg Config, count int, today time.Time) []Period {
	if count <= 0 {
		return []Period{}
	}

	length := PeriodLength(cfg.Type)
	today = DateOf(today)

	periods := make([]Period, 0, count)
	for i := 0; i < count; i++ {
		periods = append(periods, CurrentPeriod(cfg, today.AddDate(0, 0, -i*length)))
	}
	return periods
}

// NewPeriod builds an explicit window, rejecting end < start.
func NewPeriod(start, end time.Time) (Period, error) {
	p := Period{Start: DateOf(start), End: DateOf(end)}
	if p.End.Before(p.Start) {
		return Period{}, ErrInvalidDateRange
	}
	return p, nil
}

// ParseLabel is the inverse of Period.Label.
func ParseLabel(label string) (Period, error) {
	parts := strings.Split(label, labelSeparator)
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriodLabel, label)
	}
	start, err := ParseDate(parts[0])
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriodLabel, label)
	}
	end, err := ParseDate(parts[1])
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriodLabel, label)
	}
	return NewPeriod(start, end)
}

// DefaultConfig is the configuration created lazily for a company that has
// none: biweekly, anchored on the Monday of the week containing now.
func DefaultConfig(companyID string, now time.Time) Config {
	today := DateOf(now)
	offset := (int(today.Weekday()) + 6) % 7 // days since Monday
	return Config{
		CompanyID: companyID,
		Type:      TypeBiweekly,
		StartDate: today.AddDate(0, 0, -offset),
	}
}

// daysBetween counts whole days from a to b. Both must be UTC midnights.
// Unix seconds are used because time.Duration saturates at about 292 years.
func daysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
