package memory

import (
	"context"
	"sync"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/score"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/tournament"
)

// ScoreRepository keys scores by tournament, mirroring how sheets are
// replaced wholesale on submission. Season listing needs the tournament set
// to resolve which tournaments belong to the season.
type ScoreRepository struct {
	mu           sync.RWMutex
	byTournament map[string][]score.Score
	tournaments  tournament.Repository
}

func NewScoreRepository(tournaments tournament.Repository, scores []score.Score) *ScoreRepository {
	byTournament := make(map[string][]score.Score)
	for _, s := range scores {
		byTournament[s.TournamentID] = append(byTournament[s.TournamentID], s)
	}

	return &ScoreRepository{
		byTournament: byTournament,
		tournaments:  tournaments,
	}
}

func (r *ScoreRepository) ListBySeason(ctx context.Context, season int) ([]score.Score, error) {
	seasonTournaments, err := r.tournaments.ListBySeason(ctx, season)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []score.Score
	for _, t := range seasonTournaments {
		out = append(out, r.byTournament[t.ID]...)
	}

	return out, nil
}

func (r *ScoreRepository) ListByTournament(_ context.Context, tournamentID string) ([]score.Score, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]score.Score(nil), r.byTournament[tournamentID]...), nil
}

func (r *ScoreRepository) ReplaceByTournament(_ context.Context, tournamentID string, scores []score.Score) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byTournament[tournamentID] = append([]score.Score(nil), scores...)

	return nil
}
