package tournament

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusComplete  = "complete"
)

const (
	FormatStableford = "stableford"
	FormatMedal      = "medal"
)

// Tournament is one scheduled club competition. Only published or complete
// tournaments ever contribute to leaderboards.
type Tournament struct {
	ID         string
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	Season     int
	Multiplier int
	Format     string
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusDraft
	}
	return status
}

// IsScoreable reports whether the tournament may contribute points.
func (t Tournament) IsScoreable() bool {
	switch NormalizeStatus(t.Status) {
	case StatusPublished, StatusComplete:
		return true
	default:
		return false
	}
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.StartDate.IsZero() {
		return fmt.Errorf("tournament start date is required")
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("tournament end date precedes start date")
	}
	if t.Season <= 0 {
		return fmt.Errorf("tournament season is required")
	}
	if t.Multiplier <= 0 {
		return fmt.Errorf("tournament multiplier must be greater than zero")
	}
	switch t.Format {
	case FormatStableford, FormatMedal:
	default:
		return fmt.Errorf("unknown tournament format %q", t.Format)
	}
	switch NormalizeStatus(t.Status) {
	case StatusDraft, StatusPublished, StatusComplete:
	default:
		return fmt.Errorf("unknown tournament status %q", t.Status)
	}

	return nil
}
