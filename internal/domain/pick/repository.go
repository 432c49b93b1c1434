package pick

import "context"

// Repository describes squad pick persistence needs from use cases.
type Repository interface {
	ListBySeason(ctx context.Context, season int) ([]Pick, error)
	GetByUserAndSeason(ctx context.Context, userID string, season int) (Pick, bool, error)
	Create(ctx context.Context, item Pick) error
}
