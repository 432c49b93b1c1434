package score

import "context"

// Repository describes score persistence needs from use cases.
type Repository interface {
	ListBySeason(ctx context.Context, season int) ([]Score, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Score, error)
	ReplaceByTournament(ctx context.Context, tournamentID string, scores []Score) error
}
