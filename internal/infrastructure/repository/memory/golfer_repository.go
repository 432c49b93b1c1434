package memory

import (
	"context"
	"sync"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/golfer"
)

type GolferRepository struct {
	mu     sync.RWMutex
	items  map[string]golfer.Golfer
	orders []string
}

func NewGolferRepository(golfers []golfer.Golfer) *GolferRepository {
	items := make(map[string]golfer.Golfer, len(golfers))
	orders := make([]string, 0, len(golfers))

	for _, g := range golfers {
		items[g.ID] = g
		orders = append(orders, g.ID)
	}

	return &GolferRepository{
		items:  items,
		orders: orders,
	}
}

func (r *GolferRepository) List(_ context.Context) ([]golfer.Golfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]golfer.Golfer, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *GolferRepository) GetByID(_ context.Context, golferID string) (golfer.Golfer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[golferID]
	if !ok {
		return golfer.Golfer{}, false, nil
	}

	return item, true, nil
}
