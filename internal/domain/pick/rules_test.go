package pick

import (
	"errors"
	"testing"
)

func testPrices() map[string]int64 {
	return map[string]int64{
		"g1": 25, "g2": 22, "g3": 20, "g4": 15, "g5": 10, "g6": 8, "g7": 40,
	}
}

func sixGolfers() []string {
	return []string{"g1", "g2", "g3", "g4", "g5", "g6"}
}

func TestValidatePick_Valid(t *testing.T) {
	t.Parallel()

	item := Pick{ID: "p1", UserID: "u1", Season: 2025, GolferIDs: sixGolfers(), CaptainID: "g1"}
	if err := ValidatePick(item, DefaultRules(), testPrices()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidatePick_WrongSquadSize(t *testing.T) {
	t.Parallel()

	item := Pick{ID: "p1", UserID: "u1", Season: 2025, GolferIDs: []string{"g1", "g2"}}
	err := ValidatePick(item, DefaultRules(), testPrices())
	if !errors.Is(err, ErrInvalidSquadSize) {
		t.Fatalf("expected ErrInvalidSquadSize, got %v", err)
	}
}

func TestValidatePick_DuplicateGolfer(t *testing.T) {
	t.Parallel()

	item := Pick{ID: "p1", UserID: "u1", Season: 2025, GolferIDs: []string{"g1", "g1", "g2", "g3", "g4", "g5"}}
	err := ValidatePick(item, DefaultRules(), testPrices())
	if !errors.Is(err, ErrDuplicateGolfer) {
		t.Fatalf("expected ErrDuplicateGolfer, got %v", err)
	}
}

func TestValidatePick_OverBudget(t *testing.T) {
	t.Parallel()

	// Swapping the cheapest golfer for g7 pushes the total past the cap.
	item := Pick{ID: "p1", UserID: "u1", Season: 2025, GolferIDs: []string{"g1", "g2", "g3", "g4", "g5", "g7"}}
	err := ValidatePick(item, DefaultRules(), testPrices())
	if !errors.Is(err, ErrExceededBudget) {
		t.Fatalf("expected ErrExceededBudget, got %v", err)
	}
}

func TestValidatePick_CaptainMustBeInSquad(t *testing.T) {
	t.Parallel()

	item := Pick{ID: "p1", UserID: "u1", Season: 2025, GolferIDs: sixGolfers(), CaptainID: "g7"}
	err := ValidatePick(item, DefaultRules(), testPrices())
	if !errors.Is(err, ErrCaptainOutsideSet) {
		t.Fatalf("expected ErrCaptainOutsideSet, got %v", err)
	}
}

func TestValidatePick_UnknownGolfer(t *testing.T) {
	t.Parallel()

	item := Pick{ID: "p1", UserID: "u1", Season: 2025, GolferIDs: []string{"g1", "g2", "g3", "g4", "g5", "nope"}}
	if err := ValidatePick(item, DefaultRules(), testPrices()); err == nil {
		t.Fatal("expected error for unknown golfer")
	}
}

func TestValidatePick_NoCaptainIsAllowed(t *testing.T) {
	t.Parallel()

	item := Pick{ID: "p1", UserID: "u1", Season: 2025, GolferIDs: sixGolfers()}
	if err := ValidatePick(item, DefaultRules(), testPrices()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
