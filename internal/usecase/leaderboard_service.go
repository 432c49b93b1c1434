package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/leaderboard"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/pick"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/schedule"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/score"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/tournament"
)

// Leaderboard is a fully computed standings view for one period.
type Leaderboard struct {
	Season     int
	Period     schedule.Period
	Entries    []leaderboard.Entry
	Navigation schedule.Navigation
}

// UserSummary is one member's season standing. Members without a pick get a
// zero summary with HasTeam false rather than an error.
type UserSummary struct {
	UserID      string
	Season      int
	HasTeam     bool
	GolferIDs   []string
	TotalPoints int
	Rank        int
}

type leaderboardCache interface {
	GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error)
}

type LeaderboardService struct {
	pickRepo       pick.Repository
	tournamentRepo tournament.Repository
	scoreRepo      score.Repository
	cache          leaderboardCache
	loc            *time.Location
	now            func() time.Time
}

func NewLeaderboardService(
	pickRepo pick.Repository,
	tournamentRepo tournament.Repository,
	scoreRepo score.Repository,
	boardCache leaderboardCache,
	loc *time.Location,
) *LeaderboardService {
	if loc == nil {
		loc = time.Local
	}
	return &LeaderboardService{
		pickRepo:       pickRepo,
		tournamentRepo: tournamentRepo,
		scoreRepo:      scoreRepo,
		cache:          boardCache,
		loc:            loc,
		now:            time.Now,
	}
}

// GetLeaderboard computes the standings for the period containing ref. A zero
// ref means "now". Results are cached per period behind singleflight, so a
// burst of requests for the same board computes it once.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, season int, periodType schedule.PeriodType, ref time.Time) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetLeaderboard")
	defer span.End()

	if season <= 0 {
		return Leaderboard{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if ref.IsZero() {
		ref = s.now()
	}
	ref = ref.In(s.loc)

	seasonStart := schedule.SeasonStart(season, s.loc)
	period, err := resolvePeriod(periodType, ref, season, seasonStart, s.loc)
	if err != nil {
		return Leaderboard{}, err
	}

	if s.cache == nil {
		return s.computeLeaderboard(ctx, season, period, seasonStart)
	}

	key := fmt.Sprintf("leaderboard:%d:%s:%s", season, period.Type, period.Start.Format("2006-01-02"))
	cached, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.computeLeaderboard(ctx, season, period, seasonStart)
	})
	if err != nil {
		return Leaderboard{}, err
	}

	board, ok := cached.(Leaderboard)
	if !ok {
		return Leaderboard{}, fmt.Errorf("unexpected cached leaderboard type %T", cached)
	}
	return board, nil
}

// GetUserSummary reports one member's season totals and rank.
func (s *LeaderboardService) GetUserSummary(ctx context.Context, season int, userID string) (UserSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetUserSummary")
	defer span.End()

	if userID == "" {
		return UserSummary{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	summary := UserSummary{UserID: userID, Season: season}

	item, exists, err := s.pickRepo.GetByUserAndSeason(ctx, userID, season)
	if err != nil {
		return UserSummary{}, fmt.Errorf("get pick: %w", err)
	}
	if !exists {
		return summary, nil
	}
	summary.HasTeam = true
	summary.GolferIDs = item.GolferIDs

	board, err := s.GetLeaderboard(ctx, season, schedule.PeriodSeason, time.Time{})
	if err != nil {
		return UserSummary{}, fmt.Errorf("get season leaderboard: %w", err)
	}
	for _, entry := range board.Entries {
		if entry.UserID == userID {
			summary.TotalPoints = entry.Points
			summary.Rank = entry.Rank
			break
		}
	}

	return summary, nil
}

func (s *LeaderboardService) computeLeaderboard(ctx context.Context, season int, period schedule.Period, seasonStart time.Time) (Leaderboard, error) {
	var (
		picks       []pick.Pick
		tournaments []tournament.Tournament
		scores      []score.Score
	)

	loaders := pool.New().WithErrors().WithContext(ctx)
	loaders.Go(func(ctx context.Context) error {
		items, err := s.pickRepo.ListBySeason(ctx, season)
		if err != nil {
			return fmt.Errorf("list picks: %w", err)
		}
		picks = items
		return nil
	})
	loaders.Go(func(ctx context.Context) error {
		items, err := s.tournamentRepo.ListBySeason(ctx, season)
		if err != nil {
			return fmt.Errorf("list tournaments: %w", err)
		}
		tournaments = items
		return nil
	})
	loaders.Go(func(ctx context.Context) error {
		items, err := s.scoreRepo.ListBySeason(ctx, season)
		if err != nil {
			return fmt.Errorf("list scores: %w", err)
		}
		scores = items
		return nil
	})
	if err := loaders.Wait(); err != nil {
		return Leaderboard{}, err
	}

	totals := leaderboard.Aggregate(period, season, s.loc, picks, tournaments, scores)

	var previousTotals map[string]int
	if prev, ok := schedule.Previous(period, seasonStart); ok && !prev.Start.Before(seasonStart) {
		previousTotals = leaderboard.Aggregate(prev, season, s.loc, picks, tournaments, scores)
	}

	return Leaderboard{
		Season:     season,
		Period:     period,
		Entries:    leaderboard.Rank(totals, previousTotals),
		Navigation: schedule.Navigate(period, seasonStart, s.now().In(s.loc)),
	}, nil
}

func resolvePeriod(periodType schedule.PeriodType, ref time.Time, season int, seasonStart time.Time, loc *time.Location) (schedule.Period, error) {
	switch periodType {
	case schedule.PeriodWeek:
		period := schedule.WeekOf(ref, seasonStart)
		if period.Gameweek < 1 {
			return schedule.Period{}, fmt.Errorf("%w: %s predates gameweek 1 of season %d", ErrInvalidInput, ref.Format("2006-01-02"), season)
		}
		return period, nil
	case schedule.PeriodMonth:
		return schedule.MonthOf(ref), nil
	case schedule.PeriodSeason:
		return schedule.SeasonOf(season, loc), nil
	default:
		return schedule.Period{}, fmt.Errorf("%w: unknown period type %q", ErrInvalidInput, periodType)
	}
}
