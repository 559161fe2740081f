package payperiod

import "time"

// Type enum
type Type string

const (
	TypeWeekly   Type = "weekly"
	TypeBiweekly Type = "biweekly"
	TypeMonthly  Type = "monthly"
)

// DateLayout is the calendar-date format used for every date crossing the API.
const DateLayout = "2006-01-02"

// Config - Organisation pay period configuration. Exactly one per company.
type Config struct {
	ID        string
	CompanyID string
	Type      Type
	StartDate time.Time // anchor date
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Period is an inclusive calendar window [Start, End].
type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) StartDate() string {
	return p.Start.Format(DateLayout)
}

func (p Period) EndDate() string {
	return p.End.Format(DateLayout)
}

// Label renders the period as "{start} to {end}".
func (p Period) Label() string {
	return p.StartDate() + labelSeparator + p.EndDate()
}

// Days is the number of calendar days covered, both ends included.
func (p Period) Days() int {
	return daysBetween(p.Start, p.End) + 1
}

// Contains reports whether the calendar date of t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

func (p Period) IsZero() bool {
	return p.Start.IsZero() && p.End.IsZero()
}
