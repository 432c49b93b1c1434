package leaderboard

import (
	"testing"
	"time"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/pick"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/schedule"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/score"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/tournament"
)

func intPtr(v int) *int {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func aggregateFixtures() ([]pick.Pick, []tournament.Tournament, []score.Score) {
	picks := []pick.Pick{
		{ID: "p1", UserID: "usr-a", Season: 2025, GolferIDs: []string{"g1", "g2"}},
		{
			ID: "p2", UserID: "usr-b", Season: 2025, GolferIDs: []string{"g3"},
			// Created Monday Jan 6: eligible from Saturday Jan 11 08:00.
			CreatedAt: timePtr(time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC)),
		},
		{ID: "p3", UserID: "usr-old", Season: 2024, GolferIDs: []string{"g1"}},
	}

	tournaments := []tournament.Tournament{
		{
			ID: "t-early", Season: 2025, Status: tournament.StatusComplete,
			StartDate: time.Date(2025, time.January, 4, 9, 0, 0, 0, time.UTC),
		},
		{
			ID: "t-late", Season: 2025, Status: tournament.StatusPublished,
			StartDate: time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: "t-draft", Season: 2025, Status: tournament.StatusDraft,
			StartDate: time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: "t-other-season", Season: 2024, Status: tournament.StatusComplete,
			StartDate: time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	scores := []score.Score{
		{TournamentID: "t-early", GolferID: "g1", Participated: true, Position: intPtr(1), MultipliedPoints: 25},
		{TournamentID: "t-early", GolferID: "g2", Participated: false, MultipliedPoints: 99},
		{TournamentID: "t-early", GolferID: "g3", Participated: true, MultipliedPoints: 10},
		{TournamentID: "t-late", GolferID: "g2", Participated: true, MultipliedPoints: 15},
		{TournamentID: "t-late", GolferID: "g3", Participated: true, MultipliedPoints: 30},
		{TournamentID: "t-draft", GolferID: "g1", Participated: true, MultipliedPoints: 500},
		{TournamentID: "t-missing", GolferID: "g1", Participated: true, MultipliedPoints: 500},
	}

	return picks, tournaments, scores
}

func TestAggregate_SeasonWindow(t *testing.T) {
	t.Parallel()

	picks, tournaments, scores := aggregateFixtures()
	period := schedule.SeasonOf(2025, time.UTC)

	totals := Aggregate(period, 2025, time.UTC, picks, tournaments, scores)

	// usr-a is grandfathered: g1 scores 25 in t-early, g2 scores 15 in
	// t-late. The non-participated g2 row and both draft and orphan rows
	// contribute nothing.
	if got := totals["usr-a"]; got != 40 {
		t.Fatalf("usr-a: got %d, want 40", got)
	}
	// usr-b only becomes eligible Jan 11 08:00, so t-early's g3 points are
	// excluded and t-late's count.
	if got := totals["usr-b"]; got != 30 {
		t.Fatalf("usr-b: got %d, want 30", got)
	}
	if _, present := totals["usr-old"]; present {
		t.Fatal("other-season pick must be absent")
	}
}

func TestAggregate_WeekWindow(t *testing.T) {
	t.Parallel()

	picks, tournaments, scores := aggregateFixtures()
	seasonStart := schedule.SeasonStart(2025, time.UTC)

	// Gameweek 1: only t-early falls inside.
	week1 := schedule.WeekOf(time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC), seasonStart)
	totals := Aggregate(week1, 2025, time.UTC, picks, tournaments, scores)
	if got := totals["usr-a"]; got != 25 {
		t.Fatalf("week 1 usr-a: got %d, want 25", got)
	}
	if got := totals["usr-b"]; got != 0 {
		t.Fatalf("week 1 usr-b: got %d, want 0", got)
	}

	// Gameweek 2: only t-late.
	week2 := schedule.WeekOf(time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC), seasonStart)
	totals = Aggregate(week2, 2025, time.UTC, picks, tournaments, scores)
	if got := totals["usr-a"]; got != 15 {
		t.Fatalf("week 2 usr-a: got %d, want 15", got)
	}
	if got := totals["usr-b"]; got != 30 {
		t.Fatalf("week 2 usr-b: got %d, want 30", got)
	}
}

func TestAggregate_EligibilityJudgedInSeasonTimezone(t *testing.T) {
	t.Parallel()

	london, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// Created Friday 27 June 23:30 UTC, which is already Saturday 00:30 in
	// London. The pick must wait for Saturday 5 July, so Saturday 28 June's
	// tournament never counts for it.
	picks := []pick.Pick{
		{
			ID: "p1", UserID: "usr-a", Season: 2025, GolferIDs: []string{"g1"},
			CreatedAt: timePtr(time.Date(2025, time.June, 27, 23, 30, 0, 0, time.UTC)),
		},
	}
	tournaments := []tournament.Tournament{
		{
			ID: "t-june", Season: 2025, Status: tournament.StatusComplete,
			StartDate: time.Date(2025, time.June, 28, 10, 0, 0, 0, london),
		},
	}
	scores := []score.Score{
		{TournamentID: "t-june", GolferID: "g1", Participated: true, Position: intPtr(1), MultipliedPoints: 25},
	}
	period := schedule.SeasonOf(2025, london)

	totals := Aggregate(period, 2025, london, picks, tournaments, scores)
	if got := totals["usr-a"]; got != 0 {
		t.Fatalf("usr-a: got %d, want 0 until the following Saturday", got)
	}
}

func TestAggregate_ZeroPointUsersStayOnBoard(t *testing.T) {
	t.Parallel()

	picks := []pick.Pick{
		{ID: "p1", UserID: "usr-a", Season: 2025, GolferIDs: []string{"g1"}},
	}
	period := schedule.SeasonOf(2025, time.UTC)

	totals := Aggregate(period, 2025, time.UTC, picks, nil, nil)
	if got, present := totals["usr-a"]; !present || got != 0 {
		t.Fatalf("usr-a: got %d present=%t, want 0 present", got, present)
	}
}

func TestAggregate_EmptyPicksYieldEmptyBoard(t *testing.T) {
	t.Parallel()

	_, tournaments, scores := aggregateFixtures()
	period := schedule.SeasonOf(2025, time.UTC)

	totals := Aggregate(period, 2025, time.UTC, nil, tournaments, scores)
	if len(totals) != 0 {
		t.Fatalf("expected empty totals, got %v", totals)
	}
}
