package schedule

import (
	"fmt"
	"time"
)

type PeriodType string

const (
	PeriodWeek   PeriodType = "week"
	PeriodMonth  PeriodType = "month"
	PeriodSeason PeriodType = "season"
)

func ParsePeriodType(value string) (PeriodType, bool) {
	switch PeriodType(value) {
	case PeriodWeek, PeriodMonth, PeriodSeason:
		return PeriodType(value), true
	default:
		return "", false
	}
}

// Period is a computed scoring window. It is derived on demand and never stored.
type Period struct {
	Type     PeriodType
	Start    time.Time
	End      time.Time
	Label    string
	Gameweek int
}

// Contains reports whether t falls inside the period, boundaries included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// WeekOf returns the Saturday-anchored week containing t. The gameweek number
// is relative to seasonStart and may be zero or negative before the season's
// first Saturday.
func WeekOf(t time.Time, seasonStart time.Time) Period {
	start := WeekStart(t)
	gameweek := GameweekNumber(start, seasonStart)
	return Period{
		Type:     PeriodWeek,
		Start:    start,
		End:      WeekEnd(start),
		Label:    fmt.Sprintf("Gameweek %d", gameweek),
		Gameweek: gameweek,
	}
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Period {
	start := MonthStart(t)
	return Period{
		Type:  PeriodMonth,
		Start: start,
		End:   MonthEnd(t),
		Label: start.Format("January 2006"),
	}
}

// SeasonOf returns the full-year period for the given season year.
func SeasonOf(year int, loc *time.Location) Period {
	start := SeasonStart(year, loc)
	return Period{
		Type:  PeriodSeason,
		Start: start,
		End:   SeasonEnd(year, loc),
		Label: fmt.Sprintf("%d Season", year),
	}
}

// Previous steps one period back. Season periods have no neighbours.
func Previous(p Period, seasonStart time.Time) (Period, bool) {
	switch p.Type {
	case PeriodWeek:
		return WeekOf(p.Start.AddDate(0, 0, -7), seasonStart), true
	case PeriodMonth:
		return MonthOf(p.Start.AddDate(0, 0, -1)), true
	default:
		return Period{}, false
	}
}

// Next steps one period forward. Season periods have no neighbours.
func Next(p Period, seasonStart time.Time) (Period, bool) {
	switch p.Type {
	case PeriodWeek:
		return WeekOf(p.Start.AddDate(0, 0, 7), seasonStart), true
	case PeriodMonth:
		return MonthOf(p.Start.AddDate(0, 1, 0)), true
	default:
		return Period{}, false
	}
}
