package score

import "fmt"

// Score is one golfer's result in one tournament. MultipliedPoints is already
// scaled by the tournament multiplier when the score is written; the
// aggregation layer consumes it as-is.
type Score struct {
	TournamentID     string
	GolferID         string
	Participated     bool
	Position         *int
	RawScore         *int
	MultipliedPoints int
}

func (s Score) Validate() error {
	if s.TournamentID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if s.GolferID == "" {
		return fmt.Errorf("golfer id is required")
	}
	if s.Position != nil && *s.Position < 1 {
		return fmt.Errorf("position must be 1-based")
	}

	return nil
}
