package leaderboard

import (
	"time"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/pick"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/schedule"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/score"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/tournament"
)

// Aggregate sums multiplied points per user for one period. Every user with a
// pick for the season appears in the result, even at zero points; users with
// no pick are absent entirely. Scores referencing tournaments outside the
// eligible set, or golfers outside every squad, contribute nothing. Bad rows
// under-report rather than break the board.
//
// loc is the season timezone; eligibility windows are resolved in it rather
// than in whatever location the stored creation timestamps carry.
func Aggregate(
	period schedule.Period,
	season int,
	loc *time.Location,
	picks []pick.Pick,
	tournaments []tournament.Tournament,
	scores []score.Score,
) map[string]int {
	startByTournament := make(map[string]time.Time)
	for _, t := range tournaments {
		if t.Season != season || !t.IsScoreable() {
			continue
		}
		startByTournament[t.ID] = t.StartDate
	}

	scoresByGolfer := make(map[string][]score.Score, len(scores))
	for _, s := range scores {
		if !s.Participated {
			continue
		}
		scoresByGolfer[s.GolferID] = append(scoresByGolfer[s.GolferID], s)
	}

	totals := make(map[string]int, len(picks))
	for _, p := range picks {
		if p.Season != season {
			continue
		}

		effectiveStart := pick.EffectiveStart(p.CreatedAt, loc)
		total := 0
		for _, golferID := range p.GolferIDs {
			for _, s := range scoresByGolfer[golferID] {
				startDate, eligible := startByTournament[s.TournamentID]
				if !eligible {
					continue
				}
				if startDate.Before(effectiveStart) || !period.Contains(startDate) {
					continue
				}
				total += s.MultipliedPoints
			}
		}
		totals[p.UserID] = total
	}

	return totals
}
