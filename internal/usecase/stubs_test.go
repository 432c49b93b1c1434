package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/golfer"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/pick"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/score"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/tournament"
)

type stubPickRepository struct {
	mu      sync.Mutex
	items   []pick.Pick
	err     error
	created []pick.Pick
	lists   atomic.Int32
}

func (r *stubPickRepository) ListBySeason(_ context.Context, season int) ([]pick.Pick, error) {
	r.lists.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]pick.Pick, 0, len(r.items))
	for _, item := range r.items {
		if item.Season == season {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubPickRepository) GetByUserAndSeason(_ context.Context, userID string, season int) (pick.Pick, bool, error) {
	if r.err != nil {
		return pick.Pick{}, false, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.UserID == userID && item.Season == season {
			return item, true, nil
		}
	}
	return pick.Pick{}, false, nil
}

func (r *stubPickRepository) Create(_ context.Context, item pick.Pick) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	r.created = append(r.created, item)
	return nil
}

type stubTournamentRepository struct {
	mu            sync.Mutex
	items         []tournament.Tournament
	err           error
	statusUpdates map[string]string
}

func (r *stubTournamentRepository) ListBySeason(_ context.Context, season int) ([]tournament.Tournament, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]tournament.Tournament, 0, len(r.items))
	for _, item := range r.items {
		if item.Season == season {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubTournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	if r.err != nil {
		return tournament.Tournament{}, false, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.ID == tournamentID {
			return item, true, nil
		}
	}
	return tournament.Tournament{}, false, nil
}

func (r *stubTournamentRepository) Create(_ context.Context, item tournament.Tournament) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return nil
}

func (r *stubTournamentRepository) UpdateStatus(_ context.Context, tournamentID, status string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.statusUpdates == nil {
		r.statusUpdates = make(map[string]string)
	}
	r.statusUpdates[tournamentID] = status
	for idx := range r.items {
		if r.items[idx].ID == tournamentID {
			r.items[idx].Status = status
		}
	}
	return nil
}

type stubScoreRepository struct {
	mu       sync.Mutex
	items    []score.Score
	err      error
	replaced map[string][]score.Score
}

func (r *stubScoreRepository) ListBySeason(_ context.Context, _ int) ([]score.Score, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]score.Score(nil), r.items...), nil
}

func (r *stubScoreRepository) ListByTournament(_ context.Context, tournamentID string) ([]score.Score, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]score.Score, 0, len(r.items))
	for _, item := range r.items {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubScoreRepository) ReplaceByTournament(_ context.Context, tournamentID string, scores []score.Score) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.replaced == nil {
		r.replaced = make(map[string][]score.Score)
	}
	r.replaced[tournamentID] = append([]score.Score(nil), scores...)

	kept := r.items[:0]
	for _, item := range r.items {
		if item.TournamentID != tournamentID {
			kept = append(kept, item)
		}
	}
	r.items = append(kept, scores...)
	return nil
}

type stubGolferRepository struct {
	items []golfer.Golfer
	err   error
}

func (r *stubGolferRepository) List(_ context.Context) ([]golfer.Golfer, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]golfer.Golfer(nil), r.items...), nil
}

func (r *stubGolferRepository) GetByID(_ context.Context, golferID string) (golfer.Golfer, bool, error) {
	if r.err != nil {
		return golfer.Golfer{}, false, r.err
	}
	for _, item := range r.items {
		if item.ID == golferID {
			return item, true, nil
		}
	}
	return golfer.Golfer{}, false, nil
}

type stubIDGenerator struct {
	next atomic.Int32
	err  error
}

func (g *stubIDGenerator) NewID() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return fmt.Sprintf("id-%d", g.next.Add(1)), nil
}

type stubInvalidator struct {
	mu       sync.Mutex
	prefixes []string
}

func (i *stubInvalidator) DeletePrefix(_ context.Context, prefix string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.prefixes = append(i.prefixes, prefix)
}

func intPtr(v int) *int {
	return &v
}
