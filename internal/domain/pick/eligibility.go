package pick

import (
	"time"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/schedule"
)

// grandfatherYear marks the effective start granted to picks with no usable
// creation timestamp. Anything that old predates every tournament we hold.
const grandfatherYear = 2000

const effectiveStartHour = 8

// EffectiveStart computes the first instant from which a pick may accrue
// points: 08:00 on the Saturday after the week the pick was created. Starting
// the week after, rather than the week of, stops a mid-week pick from claiming
// points for tournaments already played that week. A nil creation time
// grandfathers the pick to the distant past.
//
// The Saturday boundary is resolved in loc, not in the timestamp's own
// location. Creation times come back from storage in UTC, and a pick made
// shortly after midnight on a British summer Saturday is still Friday in UTC;
// judging the week from the stored location would start such a pick a week
// early.
func EffectiveStart(createdAt *time.Time, loc *time.Location) time.Time {
	if createdAt == nil || createdAt.IsZero() {
		return GrandfatheredStart(loc)
	}
	if loc == nil {
		loc = time.Local
	}

	next := schedule.WeekStart(createdAt.In(loc)).AddDate(0, 0, 7)
	return time.Date(next.Year(), next.Month(), next.Day(), effectiveStartHour, 0, 0, 0, next.Location())
}

// EffectiveStartFromRaw parses a stored creation timestamp and resolves the
// effective start. Unparseable values grandfather the pick rather than fail;
// legacy rows carry many malformed dates and a broken leaderboard is worse
// than an over-generous one.
func EffectiveStartFromRaw(raw string, loc *time.Location) time.Time {
	parsed, ok := parseCreatedAt(raw, loc)
	if !ok {
		return GrandfatheredStart(loc)
	}
	return EffectiveStart(&parsed, loc)
}

// GrandfatheredStart is the sentinel effective start for legacy picks.
func GrandfatheredStart(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(grandfatherYear, time.January, 1, 0, 0, 0, 0, loc)
}

func parseCreatedAt(raw string, loc *time.Location) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}
