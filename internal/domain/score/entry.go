package score

import (
	"errors"
	"fmt"
)

var (
	ErrNoParticipants     = errors.New("no participants")
	ErrMissingPodium      = errors.New("missing podium position")
	ErrDuplicatePodium    = errors.New("duplicate podium position")
	ErrPositionOutOfRange = errors.New("position out of range")
)

const maxPosition = 100

// Entry is the submission shape for one golfer's result, before persistence.
// BasePoints is the unscaled points award; the scoring service multiplies it
// by the tournament multiplier when converting entries into Scores.
type Entry struct {
	GolferID     string
	Position     *int
	RawScore     *int
	Participated bool
	BasePoints   int
}

// ValidateEntries enforces the structural rules on a bulk score submission.
// Rules run in order and the first failure wins. How many podium places must
// be filled scales with the field size: small fields need a winner, mid-size
// fields first and second, large fields the full podium. Positions on
// non-participating entries are ignored throughout.
func ValidateEntries(entries []Entry) error {
	participants := 0
	for _, entry := range entries {
		if entry.GolferID == "" {
			return fmt.Errorf("golfer id is required")
		}
		if entry.Participated {
			participants++
		}
	}
	if participants == 0 {
		return fmt.Errorf("%w: at least one golfer must have participated", ErrNoParticipants)
	}

	holders := make(map[int][]string)
	for _, entry := range entries {
		if !entry.Participated || entry.Position == nil {
			continue
		}
		pos := *entry.Position
		if pos < 1 || pos > maxPosition {
			return fmt.Errorf("%w: golfer %s has position %d", ErrPositionOutOfRange, entry.GolferID, pos)
		}
		if pos <= 3 {
			holders[pos] = append(holders[pos], entry.GolferID)
		}
	}

	required := requiredPodium(participants)
	for _, pos := range required {
		if len(holders[pos]) == 0 {
			return fmt.Errorf("%w: a field of %d requires %s", ErrMissingPodium, participants, podiumPhrase(required))
		}
	}

	for pos := 1; pos <= 3; pos++ {
		if ids := holders[pos]; len(ids) > 1 {
			return fmt.Errorf("%w: golfers %s and %s both placed %s", ErrDuplicatePodium, ids[0], ids[1], ordinal(pos))
		}
	}

	return nil
}

// requiredPodium returns the positions a field of the given size must fill.
func requiredPodium(participants int) []int {
	switch {
	case participants >= 20:
		return []int{1, 2, 3}
	case participants >= 11:
		return []int{1, 2}
	default:
		return []int{1}
	}
}

func podiumPhrase(required []int) string {
	switch len(required) {
	case 3:
		return "1st, 2nd and 3rd place"
	case 2:
		return "both 1st and 2nd place"
	default:
		return "a 1st place"
	}
}

func ordinal(pos int) string {
	switch pos {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", pos)
	}
}
