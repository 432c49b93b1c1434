package memory

import (
	"time"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/golfer"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/pick"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/score"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/tournament"
)

const SeedSeason = 2025

func SeedGolfers() []golfer.Golfer {
	return []golfer.Golfer{
		{ID: "glf-ward", Name: "Alfie Ward", Club: "Bearwood Lakes", Price: 25},
		{ID: "glf-hart", Name: "Ben Hart", Club: "Bearwood Lakes", Price: 22},
		{ID: "glf-dale", Name: "Chris Dale", Club: "Bearwood Lakes", Price: 20},
		{ID: "glf-fox", Name: "Dan Fox", Club: "Bearwood Lakes", Price: 18},
		{ID: "glf-cole", Name: "Ed Cole", Club: "Bearwood Lakes", Price: 15},
		{ID: "glf-shaw", Name: "Fred Shaw", Club: "Bearwood Lakes", Price: 12},
		{ID: "glf-penn", Name: "Gus Penn", Club: "Bearwood Lakes", Price: 10},
		{ID: "glf-moss", Name: "Harry Moss", Club: "Bearwood Lakes", Price: 8},
		{ID: "glf-reed", Name: "Ian Reed", Club: "Bearwood Lakes", Price: 8},
		{ID: "glf-kerr", Name: "Jack Kerr", Club: "Bearwood Lakes", Price: 6},
	}
}

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:         "trn-2025-jan-stableford",
			Name:       "January Stableford",
			StartDate:  time.Date(SeedSeason, time.January, 11, 8, 0, 0, 0, time.Local),
			EndDate:    time.Date(SeedSeason, time.January, 11, 18, 0, 0, 0, time.Local),
			Status:     tournament.StatusComplete,
			Season:     SeedSeason,
			Multiplier: 1,
			Format:     tournament.FormatStableford,
		},
		{
			ID:         "trn-2025-feb-medal",
			Name:       "February Medal",
			StartDate:  time.Date(SeedSeason, time.February, 8, 8, 0, 0, 0, time.Local),
			EndDate:    time.Date(SeedSeason, time.February, 8, 18, 0, 0, 0, time.Local),
			Status:     tournament.StatusComplete,
			Season:     SeedSeason,
			Multiplier: 1,
			Format:     tournament.FormatMedal,
		},
		{
			ID:         "trn-2025-club-champs",
			Name:       "Club Championship",
			StartDate:  time.Date(SeedSeason, time.July, 12, 8, 0, 0, 0, time.Local),
			EndDate:    time.Date(SeedSeason, time.July, 13, 18, 0, 0, 0, time.Local),
			Status:     tournament.StatusPublished,
			Season:     SeedSeason,
			Multiplier: 2,
			Format:     tournament.FormatMedal,
		},
		{
			ID:         "trn-2025-autumn-open",
			Name:       "Autumn Open",
			StartDate:  time.Date(SeedSeason, time.October, 4, 8, 0, 0, 0, time.Local),
			EndDate:    time.Date(SeedSeason, time.October, 4, 18, 0, 0, 0, time.Local),
			Status:     tournament.StatusDraft,
			Season:     SeedSeason,
			Multiplier: 1,
			Format:     tournament.FormatStableford,
		},
	}
}

func SeedPicks() []pick.Pick {
	janSecond := time.Date(SeedSeason, time.January, 2, 10, 0, 0, 0, time.Local)
	marchMonday := time.Date(SeedSeason, time.March, 3, 20, 15, 0, 0, time.Local)

	return []pick.Pick{
		{
			ID:         "pck-0001",
			UserID:     "usr-atkins",
			Season:     SeedSeason,
			GolferIDs:  []string{"glf-ward", "glf-dale", "glf-cole", "glf-shaw", "glf-moss", "glf-kerr"},
			CaptainID:  "glf-ward",
			CreatedAt:  &janSecond,
			TotalSpent: 86,
		},
		{
			ID:         "pck-0002",
			UserID:     "usr-bishop",
			Season:     SeedSeason,
			GolferIDs:  []string{"glf-hart", "glf-fox", "glf-penn", "glf-moss", "glf-reed", "glf-kerr"},
			CaptainID:  "glf-hart",
			CreatedAt:  &marchMonday,
			TotalSpent: 72,
		},
		{
			// Imported from the old site; no creation timestamp survived, so
			// the pick is grandfathered into every period.
			ID:         "pck-0003",
			UserID:     "usr-cremin",
			Season:     SeedSeason,
			GolferIDs:  []string{"glf-ward", "glf-hart", "glf-dale", "glf-fox", "glf-cole", "glf-shaw"},
			TotalSpent: 112,
		},
	}
}

func SeedScores() []score.Score {
	return []score.Score{
		{TournamentID: "trn-2025-jan-stableford", GolferID: "glf-ward", Participated: true, Position: intPtr(1), RawScore: intPtr(42), MultipliedPoints: 25},
		{TournamentID: "trn-2025-jan-stableford", GolferID: "glf-hart", Participated: true, Position: intPtr(2), RawScore: intPtr(40), MultipliedPoints: 18},
		{TournamentID: "trn-2025-jan-stableford", GolferID: "glf-dale", Participated: true, RawScore: intPtr(33), MultipliedPoints: 10},
		{TournamentID: "trn-2025-jan-stableford", GolferID: "glf-penn", Participated: false},
		{TournamentID: "trn-2025-feb-medal", GolferID: "glf-fox", Participated: true, Position: intPtr(1), RawScore: intPtr(68), MultipliedPoints: 25},
		{TournamentID: "trn-2025-feb-medal", GolferID: "glf-cole", Participated: true, Position: intPtr(2), RawScore: intPtr(70), MultipliedPoints: 18},
		{TournamentID: "trn-2025-feb-medal", GolferID: "glf-moss", Participated: true, RawScore: intPtr(74), MultipliedPoints: 8},
	}
}

func intPtr(v int) *int {
	return &v
}
