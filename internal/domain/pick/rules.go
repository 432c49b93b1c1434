package pick

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSquadSize  = errors.New("invalid squad size")
	ErrExceededBudget    = errors.New("budget cap exceeded")
	ErrDuplicateGolfer   = errors.New("duplicate golfer in squad")
	ErrCaptainOutsideSet = errors.New("captain is not in the squad")
)

// Rules stores squad validation parameters.
type Rules struct {
	SquadSize int
	BudgetCap int64
}

func DefaultRules() Rules {
	return Rules{
		SquadSize: 6,
		BudgetCap: 100,
	}
}

// ValidatePick checks squad composition against the rules. priceByGolfer maps
// golfer id to price; golfers missing from it fail validation.
func ValidatePick(item Pick, rules Rules, priceByGolfer map[string]int64) error {
	if len(item.GolferIDs) != rules.SquadSize {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidSquadSize, rules.SquadSize, len(item.GolferIDs))
	}

	seen := make(map[string]struct{}, len(item.GolferIDs))
	var totalSpent int64
	for _, golferID := range item.GolferIDs {
		if golferID == "" {
			return fmt.Errorf("golfer id is required")
		}
		if _, exists := seen[golferID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateGolfer, golferID)
		}
		seen[golferID] = struct{}{}

		price, ok := priceByGolfer[golferID]
		if !ok {
			return fmt.Errorf("unknown golfer %s", golferID)
		}
		totalSpent += price
	}

	if totalSpent > rules.BudgetCap {
		return fmt.Errorf("%w: cap=%d used=%d", ErrExceededBudget, rules.BudgetCap, totalSpent)
	}

	if item.CaptainID != "" {
		if _, ok := seen[item.CaptainID]; !ok {
			return fmt.Errorf("%w: %s", ErrCaptainOutsideSet, item.CaptainID)
		}
	}

	return nil
}
