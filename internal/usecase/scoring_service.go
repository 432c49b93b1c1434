package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/score"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/tournament"
)

type boardInvalidator interface {
	DeletePrefix(ctx context.Context, prefix string)
}

type ScoringService struct {
	tournamentRepo tournament.Repository
	scoreRepo      score.Repository
	invalidator    boardInvalidator
}

func NewScoringService(tournamentRepo tournament.Repository, scoreRepo score.Repository, invalidator boardInvalidator) *ScoringService {
	return &ScoringService{
		tournamentRepo: tournamentRepo,
		scoreRepo:      scoreRepo,
		invalidator:    invalidator,
	}
}

// SubmitScores replaces a tournament's full score set from a bulk entry. The
// structural rules run before any write, so a rejected sheet leaves existing
// scores untouched. Points are scaled by the tournament multiplier here; the
// aggregation layer never sees base points.
func (s *ScoringService) SubmitScores(ctx context.Context, tournamentID string, entries []score.Entry) ([]score.Score, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.SubmitScores")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: score entries are required", ErrInvalidInput)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	if err := score.ValidateEntries(entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	scores := make([]score.Score, 0, len(entries))
	for _, entry := range entries {
		row := score.Score{
			TournamentID: tournamentID,
			GolferID:     entry.GolferID,
			Participated: entry.Participated,
			Position:     entry.Position,
			RawScore:     entry.RawScore,
		}
		if entry.Participated {
			row.MultipliedPoints = entry.BasePoints * item.Multiplier
		}
		if err := row.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		scores = append(scores, row)
	}

	if err := s.scoreRepo.ReplaceByTournament(ctx, tournamentID, scores); err != nil {
		return nil, fmt.Errorf("replace tournament scores: %w", err)
	}

	if s.invalidator != nil {
		s.invalidator.DeletePrefix(ctx, fmt.Sprintf("leaderboard:%d:", item.Season))
	}

	return scores, nil
}

// ListByTournament returns the stored scores for one tournament.
func (s *ScoringService) ListByTournament(ctx context.Context, tournamentID string) ([]score.Score, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ListByTournament")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	_, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	items, err := s.scoreRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list tournament scores: %w", err)
	}

	return items, nil
}
