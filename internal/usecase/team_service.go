package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/golfer"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/pick"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/platform/id"
)

type CreatePickInput struct {
	UserID    string
	Season    int
	GolferIDs []string
	CaptainID string
}

type TeamService struct {
	pickRepo    pick.Repository
	golferRepo  golfer.Repository
	idGen       id.Generator
	rules       pick.Rules
	invalidator boardInvalidator
	now         func() time.Time
}

func NewTeamService(
	pickRepo pick.Repository,
	golferRepo golfer.Repository,
	idGen id.Generator,
	rules pick.Rules,
	invalidator boardInvalidator,
) *TeamService {
	return &TeamService{
		pickRepo:    pickRepo,
		golferRepo:  golferRepo,
		idGen:       idGen,
		rules:       rules,
		invalidator: invalidator,
		now:         time.Now,
	}
}

func (s *TeamService) ListGolfers(ctx context.Context) ([]golfer.Golfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListGolfers")
	defer span.End()

	items, err := s.golferRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list golfers: %w", err)
	}
	return items, nil
}

// CreatePick stores a member's squad for a season. One pick per user per
// season; the creation time recorded here drives scoring eligibility, so it
// is set server-side and never accepted from the client.
func (s *TeamService) CreatePick(ctx context.Context, input CreatePickInput) (pick.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreatePick")
	defer span.End()

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return pick.Pick{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Season <= 0 {
		return pick.Pick{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	_, exists, err := s.pickRepo.GetByUserAndSeason(ctx, userID, input.Season)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("get existing pick: %w", err)
	}
	if exists {
		return pick.Pick{}, fmt.Errorf("%w: user %s already has a pick for season %d", ErrInvalidInput, userID, input.Season)
	}

	golfers, err := s.golferRepo.List(ctx)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("list golfers: %w", err)
	}
	priceByGolfer := make(map[string]int64, len(golfers))
	for _, g := range golfers {
		priceByGolfer[g.ID] = g.Price
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return pick.Pick{}, fmt.Errorf("generate pick id: %w", err)
	}

	createdAt := s.now()
	item := pick.Pick{
		ID:        newID,
		UserID:    userID,
		Season:    input.Season,
		GolferIDs: append([]string(nil), input.GolferIDs...),
		CaptainID: strings.TrimSpace(input.CaptainID),
		CreatedAt: &createdAt,
	}
	if err := pick.ValidatePick(item, s.rules, priceByGolfer); err != nil {
		return pick.Pick{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	for _, golferID := range item.GolferIDs {
		item.TotalSpent += priceByGolfer[golferID]
	}

	if err := s.pickRepo.Create(ctx, item); err != nil {
		return pick.Pick{}, fmt.Errorf("create pick: %w", err)
	}

	if s.invalidator != nil {
		s.invalidator.DeletePrefix(ctx, fmt.Sprintf("leaderboard:%d:", input.Season))
	}

	return item, nil
}

// GetPick fetches a member's squad for a season.
func (s *TeamService) GetPick(ctx context.Context, userID string, season int) (pick.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetPick")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return pick.Pick{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if season <= 0 {
		return pick.Pick{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	item, exists, err := s.pickRepo.GetByUserAndSeason(ctx, userID, season)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("get pick: %w", err)
	}
	if !exists {
		return pick.Pick{}, fmt.Errorf("%w: pick for user=%s season=%d", ErrNotFound, userID, season)
	}

	return item, nil
}
