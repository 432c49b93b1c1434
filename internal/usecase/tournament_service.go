package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/tournament"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/platform/id"
)

type CreateTournamentInput struct {
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	Season     int
	Multiplier int
	Format     string
}

type TournamentService struct {
	tournamentRepo tournament.Repository
	idGen          id.Generator
	invalidator    boardInvalidator
}

func NewTournamentService(tournamentRepo tournament.Repository, idGen id.Generator, invalidator boardInvalidator) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		idGen:          idGen,
		invalidator:    invalidator,
	}
}

func (s *TournamentService) ListBySeason(ctx context.Context, season int) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListBySeason")
	defer span.End()

	if season <= 0 {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	items, err := s.tournamentRepo.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].StartDate.Equal(items[j].StartDate) {
			return items[i].StartDate.Before(items[j].StartDate)
		}
		return items[i].ID < items[j].ID
	})

	return items, nil
}

func (s *TournamentService) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.GetByID")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	return item, nil
}

// Create stores a new tournament in draft. Draft tournaments never reach the
// leaderboard; an explicit publish makes them scoreable.
func (s *TournamentService) Create(ctx context.Context, input CreateTournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Create")
	defer span.End()

	newID, err := s.idGen.NewID()
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("generate tournament id: %w", err)
	}

	item := tournament.Tournament{
		ID:         newID,
		Name:       strings.TrimSpace(input.Name),
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Status:     tournament.StatusDraft,
		Season:     input.Season,
		Multiplier: input.Multiplier,
		Format:     strings.ToLower(strings.TrimSpace(input.Format)),
	}
	if item.EndDate.IsZero() {
		item.EndDate = item.StartDate
	}
	if err := item.Validate(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.tournamentRepo.Create(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("create tournament: %w", err)
	}

	return item, nil
}

// Publish moves a draft tournament into the scoreable set.
func (s *TournamentService) Publish(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Publish")
	defer span.End()

	return s.transition(ctx, tournamentID, tournament.StatusDraft, tournament.StatusPublished)
}

// Complete marks a published tournament as finished. Completed tournaments
// stay on the leaderboard.
func (s *TournamentService) Complete(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Complete")
	defer span.End()

	return s.transition(ctx, tournamentID, tournament.StatusPublished, tournament.StatusComplete)
}

func (s *TournamentService) transition(ctx context.Context, tournamentID, from, to string) (tournament.Tournament, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	current := tournament.NormalizeStatus(item.Status)
	if current != from {
		return tournament.Tournament{}, fmt.Errorf("%w: cannot move tournament %s from %s to %s", ErrInvalidInput, tournamentID, current, to)
	}

	if err := s.tournamentRepo.UpdateStatus(ctx, tournamentID, to); err != nil {
		return tournament.Tournament{}, fmt.Errorf("update tournament status: %w", err)
	}
	item.Status = to

	if s.invalidator != nil {
		s.invalidator.DeletePrefix(ctx, fmt.Sprintf("leaderboard:%d:", item.Season))
	}

	return item, nil
}
