package schedule

import "time"

// The scoring week runs Saturday to Friday: WeekStart returns the Saturday at
// local midnight on or before t. All helpers in this package stay in the
// location of their input; mixing UTC with club-local dates shifts week
// boundaries and is the reason this logic lives in exactly one place.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 1) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

// WeekEnd returns the last instant of the week starting at weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 7).Add(-time.Millisecond)
}

// MonthStart returns the first day of the month containing t, at midnight.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last instant of the month containing t. Rolling to the
// first of the next month and stepping back keeps February correct in leap
// years.
func MonthEnd(t time.Time) time.Time {
	nextMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return nextMonth.Add(-time.Millisecond)
}

// SeasonStart returns January 1 at midnight of the season year. The year is
// always an explicit parameter; there is no implicit current-season default.
func SeasonStart(year int, loc *time.Location) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
}

// SeasonEnd returns the last instant of December 31 of the season year.
func SeasonEnd(year int, loc *time.Location) time.Time {
	return time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc).Add(-time.Millisecond)
}

// SeasonFirstSaturday advances from the season start to its first Saturday.
// Gameweek 1 begins there; earlier weeks are pre-season.
func SeasonFirstSaturday(seasonStart time.Time) time.Time {
	day := time.Date(seasonStart.Year(), seasonStart.Month(), seasonStart.Day(), 0, 0, 0, 0, seasonStart.Location())
	for day.Weekday() != time.Saturday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// GameweekNumber numbers Saturday weeks from the season's first Saturday.
// Weeks before it yield zero or negative numbers, which callers must treat as
// not scoreable.
func GameweekNumber(weekStart, seasonStart time.Time) int {
	first := SeasonFirstSaturday(seasonStart)
	return floorDiv(daysBetween(first, weekStart), 7) + 1
}

// daysBetween counts calendar days from a to b, ignoring DST by comparing the
// date components only.
func daysBetween(a, b time.Time) int {
	from := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
