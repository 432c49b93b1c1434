package golfer

import "context"

type Repository interface {
	List(ctx context.Context) ([]Golfer, error)
	GetByID(ctx context.Context, golferID string) (Golfer, bool, error)
}
