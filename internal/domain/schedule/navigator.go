package schedule

import "time"

// Navigation tells clients whether paging to an adjacent period is possible.
type Navigation struct {
	HasPrevious bool
	HasNext     bool
}

// Navigate computes paging affordances for the given period. A previous period
// must start on or after the season start; a next period must have started by
// today, so fully future periods are never navigable. Season periods stand
// alone. The caller supplies today; this function never reads the clock.
func Navigate(p Period, seasonStart, today time.Time) Navigation {
	if p.Type == PeriodSeason {
		return Navigation{}
	}

	var nav Navigation
	if prev, ok := Previous(p, seasonStart); ok {
		nav.HasPrevious = !prev.Start.Before(seasonStart)
	}
	if next, ok := Next(p, seasonStart); ok {
		nav.HasNext = !next.Start.After(today)
	}
	return nav
}
