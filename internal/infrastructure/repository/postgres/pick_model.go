package postgres

import (
	"time"

	"github.com/lib/pq"
)

type pickTableModel struct {
	ID         string         `db:"id"`
	UserID     string         `db:"user_id"`
	Season     int            `db:"season"`
	GolferIDs  pq.StringArray `db:"golfer_ids"`
	CaptainID  string         `db:"captain_id"`
	CreatedAt  *time.Time     `db:"created_at"`
	TotalSpent int64          `db:"total_spent"`
}
