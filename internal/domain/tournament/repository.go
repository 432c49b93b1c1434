package tournament

import "context"

// Repository describes tournament persistence needs from use cases.
type Repository interface {
	ListBySeason(ctx context.Context, season int) ([]Tournament, error)
	GetByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
	Create(ctx context.Context, item Tournament) error
	UpdateStatus(ctx context.Context, tournamentID, status string) error
}
