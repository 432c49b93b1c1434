package pick

import (
	"fmt"
	"time"
)

// Pick is one member's squad for a season. Each user holds at most one pick
// per season; CreatedAt drives scoring eligibility and may be missing on
// legacy picks imported from the old site.
type Pick struct {
	ID         string
	UserID     string
	Season     int
	GolferIDs  []string
	CaptainID  string
	CreatedAt  *time.Time
	TotalSpent int64
}

func (p Pick) ValidateBasic() error {
	if p.ID == "" {
		return fmt.Errorf("pick id is required")
	}
	if p.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if p.Season <= 0 {
		return fmt.Errorf("season is required")
	}

	return nil
}

// HasCaptain reports whether the optional captain slot is filled.
func (p Pick) HasCaptain() bool {
	return p.CaptainID != ""
}
