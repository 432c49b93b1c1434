package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/leaderboard"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/pick"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/schedule"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/score"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/tournament"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/platform/cache"
)

// Season 2025 starts on a Wednesday; gameweek 1 is Saturday 4 January.
func leaderboardFixtures() (*stubPickRepository, *stubTournamentRepository, *stubScoreRepository) {
	monday := time.Date(2025, time.January, 6, 12, 0, 0, 0, time.UTC)

	pickRepo := &stubPickRepository{
		items: []pick.Pick{
			{ID: "p1", UserID: "u1", Season: 2025, GolferIDs: []string{"g1", "g2"}},
			{ID: "p2", UserID: "u2", Season: 2025, GolferIDs: []string{"g3"}},
			{ID: "p4", UserID: "u4", Season: 2025, GolferIDs: []string{"g3"}, CreatedAt: &monday},
		},
	}
	tournamentRepo := &stubTournamentRepository{
		items: []tournament.Tournament{
			{
				ID: "t1", Name: "January Stableford", Season: 2025, Multiplier: 1,
				Status: tournament.StatusPublished, Format: tournament.FormatStableford,
				StartDate: time.Date(2025, time.January, 4, 9, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, time.January, 4, 18, 0, 0, 0, time.UTC),
			},
			{
				ID: "t2", Name: "Unpublished Medal", Season: 2025, Multiplier: 1,
				Status: tournament.StatusDraft, Format: tournament.FormatMedal,
				StartDate: time.Date(2025, time.January, 4, 9, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, time.January, 4, 18, 0, 0, 0, time.UTC),
			},
			{
				ID: "t3", Name: "Winter Medal", Season: 2025, Multiplier: 1,
				Status: tournament.StatusComplete, Format: tournament.FormatMedal,
				StartDate: time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, time.January, 11, 18, 0, 0, 0, time.UTC),
			},
		},
	}
	scoreRepo := &stubScoreRepository{
		items: []score.Score{
			{TournamentID: "t1", GolferID: "g1", Participated: true, Position: intPtr(1), MultipliedPoints: 30},
			{TournamentID: "t1", GolferID: "g2", Participated: true, MultipliedPoints: 10},
			{TournamentID: "t2", GolferID: "g1", Participated: true, MultipliedPoints: 50},
			{TournamentID: "t1", GolferID: "g3", Participated: false, MultipliedPoints: 99},
			{TournamentID: "t3", GolferID: "g3", Participated: true, Position: intPtr(1), MultipliedPoints: 100},
		},
	}

	return pickRepo, tournamentRepo, scoreRepo
}

func newLeaderboardService(
	pickRepo *stubPickRepository,
	tournamentRepo *stubTournamentRepository,
	scoreRepo *stubScoreRepository,
	boardCache leaderboardCache,
	now time.Time,
) *LeaderboardService {
	service := NewLeaderboardService(pickRepo, tournamentRepo, scoreRepo, boardCache, time.UTC)
	service.now = func() time.Time { return now }
	return service
}

func TestLeaderboardService_GetLeaderboard_WeekBoard(t *testing.T) {
	t.Parallel()

	pickRepo, tournamentRepo, scoreRepo := leaderboardFixtures()
	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	service := newLeaderboardService(pickRepo, tournamentRepo, scoreRepo, nil, now)

	got, err := service.GetLeaderboard(context.Background(), 2025, schedule.PeriodWeek, time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetLeaderboard error: %v", err)
	}

	if got.Period.Gameweek != 1 || got.Period.Label != "Gameweek 1" {
		t.Fatalf("unexpected period: %+v", got.Period)
	}

	// Draft t2 and the non-participated g3 row contribute nothing; u4's pick
	// was created mid-week so it only becomes effective the following
	// Saturday at 08:00.
	want := []leaderboard.Entry{
		{UserID: "u1", Points: 40, Rank: 1, Movement: leaderboard.MovementNew},
		{UserID: "u2", Points: 0, Rank: 2, Movement: leaderboard.MovementNew},
		{UserID: "u4", Points: 0, Rank: 3, Movement: leaderboard.MovementNew},
	}
	if !reflect.DeepEqual(got.Entries, want) {
		t.Fatalf("entries = %+v, want %+v", got.Entries, want)
	}

	if got.Navigation.HasPrevious {
		t.Fatal("gameweek 1 must not navigate backwards")
	}
	if !got.Navigation.HasNext {
		t.Fatal("expected next gameweek to be navigable")
	}
}

func TestLeaderboardService_GetLeaderboard_MovementAgainstPreviousWeek(t *testing.T) {
	t.Parallel()

	pickRepo, tournamentRepo, scoreRepo := leaderboardFixtures()
	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	service := newLeaderboardService(pickRepo, tournamentRepo, scoreRepo, nil, now)

	got, err := service.GetLeaderboard(context.Background(), 2025, schedule.PeriodWeek, time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetLeaderboard error: %v", err)
	}

	want := []leaderboard.Entry{
		{UserID: "u2", Points: 100, Rank: 1, PreviousRank: 2, Movement: leaderboard.MovementUp, MovementAmount: 1},
		{UserID: "u4", Points: 100, Rank: 2, PreviousRank: 3, Movement: leaderboard.MovementUp, MovementAmount: 1},
		{UserID: "u1", Points: 0, Rank: 3, PreviousRank: 1, Movement: leaderboard.MovementDown, MovementAmount: 2},
	}
	if !reflect.DeepEqual(got.Entries, want) {
		t.Fatalf("entries = %+v, want %+v", got.Entries, want)
	}
}

func TestLeaderboardService_GetLeaderboard_MonthBoard(t *testing.T) {
	t.Parallel()

	pickRepo, tournamentRepo, scoreRepo := leaderboardFixtures()
	now := time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC)
	service := newLeaderboardService(pickRepo, tournamentRepo, scoreRepo, nil, now)

	got, err := service.GetLeaderboard(context.Background(), 2025, schedule.PeriodMonth, time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetLeaderboard error: %v", err)
	}

	if got.Period.Label != "January 2025" {
		t.Fatalf("unexpected period label %q", got.Period.Label)
	}
	if len(got.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got.Entries))
	}
	if got.Entries[0].UserID != "u2" || got.Entries[0].Points != 100 {
		t.Fatalf("unexpected leader: %+v", got.Entries[0])
	}
	// December sits before the season start, so January has no previous
	// snapshot and every row ranks as new.
	for _, entry := range got.Entries {
		if entry.Movement != leaderboard.MovementNew {
			t.Fatalf("expected movement new, got %+v", entry)
		}
	}
}

func TestLeaderboardService_GetLeaderboard_CachesPerPeriod(t *testing.T) {
	t.Parallel()

	pickRepo, tournamentRepo, scoreRepo := leaderboardFixtures()
	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	service := newLeaderboardService(pickRepo, tournamentRepo, scoreRepo, cache.NewStore(time.Minute), now)

	ref := time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC)
	first, err := service.GetLeaderboard(context.Background(), 2025, schedule.PeriodWeek, ref)
	if err != nil {
		t.Fatalf("first GetLeaderboard error: %v", err)
	}
	second, err := service.GetLeaderboard(context.Background(), 2025, schedule.PeriodWeek, ref)
	if err != nil {
		t.Fatalf("second GetLeaderboard error: %v", err)
	}

	if !reflect.DeepEqual(first.Entries, second.Entries) {
		t.Fatal("repeated requests must return identical boards")
	}
	if got := pickRepo.lists.Load(); got != 1 {
		t.Fatalf("pick repo listed %d times, want 1", got)
	}
}

func TestLeaderboardService_GetLeaderboard_RecomputeIsDeterministic(t *testing.T) {
	t.Parallel()

	pickRepo, tournamentRepo, scoreRepo := leaderboardFixtures()
	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	service := newLeaderboardService(pickRepo, tournamentRepo, scoreRepo, nil, now)

	// Gameweek 2 has u2 and u4 tied on points, so a board that leaked map
	// iteration order into the ranking would flap between runs. With no
	// cache both calls recompute from scratch and must agree exactly.
	ref := time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC)
	first, err := service.GetLeaderboard(context.Background(), 2025, schedule.PeriodWeek, ref)
	if err != nil {
		t.Fatalf("first GetLeaderboard error: %v", err)
	}
	second, err := service.GetLeaderboard(context.Background(), 2025, schedule.PeriodWeek, ref)
	if err != nil {
		t.Fatalf("second GetLeaderboard error: %v", err)
	}

	if got := pickRepo.lists.Load(); got != 2 {
		t.Fatalf("pick repo listed %d times, want 2 uncached computations", got)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recomputed boards differ:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestLeaderboardService_GetLeaderboard_InvalidInput(t *testing.T) {
	t.Parallel()

	pickRepo, tournamentRepo, scoreRepo := leaderboardFixtures()
	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	service := newLeaderboardService(pickRepo, tournamentRepo, scoreRepo, nil, now)

	if _, err := service.GetLeaderboard(context.Background(), 0, schedule.PeriodWeek, now); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing season, got %v", err)
	}
	if _, err := service.GetLeaderboard(context.Background(), 2025, schedule.PeriodType("quarter"), now); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown period type, got %v", err)
	}

	// 1 January falls in the week of Saturday 28 December, before gameweek 1.
	preseason := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if _, err := service.GetLeaderboard(context.Background(), 2025, schedule.PeriodWeek, preseason); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for preseason week, got %v", err)
	}
}

func TestLeaderboardService_GetUserSummary(t *testing.T) {
	t.Parallel()

	pickRepo, tournamentRepo, scoreRepo := leaderboardFixtures()
	now := time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC)
	service := newLeaderboardService(pickRepo, tournamentRepo, scoreRepo, nil, now)

	got, err := service.GetUserSummary(context.Background(), 2025, "u1")
	if err != nil {
		t.Fatalf("GetUserSummary error: %v", err)
	}
	if !got.HasTeam {
		t.Fatal("expected HasTeam for a user with a pick")
	}
	if got.TotalPoints != 40 {
		t.Fatalf("total points = %d, want 40", got.TotalPoints)
	}
	if got.Rank != 3 {
		t.Fatalf("rank = %d, want 3", got.Rank)
	}
	if !reflect.DeepEqual(got.GolferIDs, []string{"g1", "g2"}) {
		t.Fatalf("unexpected golfer ids %v", got.GolferIDs)
	}
}

func TestLeaderboardService_GetUserSummary_NoPickReportsZeros(t *testing.T) {
	t.Parallel()

	pickRepo, tournamentRepo, scoreRepo := leaderboardFixtures()
	now := time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC)
	service := newLeaderboardService(pickRepo, tournamentRepo, scoreRepo, nil, now)

	got, err := service.GetUserSummary(context.Background(), 2025, "u-no-pick")
	if err != nil {
		t.Fatalf("GetUserSummary error: %v", err)
	}

	want := UserSummary{UserID: "u-no-pick", Season: 2025}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("summary = %+v, want %+v", got, want)
	}
}
