package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/pick"
)

type PickRepository struct {
	mu     sync.RWMutex
	items  map[string]pick.Pick
	orders []string
}

func NewPickRepository(picks []pick.Pick) *PickRepository {
	items := make(map[string]pick.Pick, len(picks))
	orders := make([]string, 0, len(picks))

	for _, p := range picks {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &PickRepository{
		items:  items,
		orders: orders,
	}
}

func (r *PickRepository) ListBySeason(_ context.Context, season int) ([]pick.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pick.Pick, 0, len(r.orders))
	for _, id := range r.orders {
		if item := r.items[id]; item.Season == season {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PickRepository) GetByUserAndSeason(_ context.Context, userID string, season int) (pick.Pick, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		item := r.items[id]
		if item.UserID == userID && item.Season == season {
			return item, true, nil
		}
	}

	return pick.Pick{}, false, nil
}

func (r *PickRepository) Create(_ context.Context, item pick.Pick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("pick %s already exists", item.ID)
	}
	for _, id := range r.orders {
		existing := r.items[id]
		if existing.UserID == item.UserID && existing.Season == item.Season {
			return fmt.Errorf("user %s already has a pick for season %d", item.UserID, item.Season)
		}
	}

	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)

	return nil
}
