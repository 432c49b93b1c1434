package postgres

import "database/sql"

type scoreTableModel struct {
	TournamentID     string        `db:"tournament_id"`
	GolferID         string        `db:"golfer_id"`
	Participated     bool          `db:"participated"`
	Position         sql.NullInt64 `db:"position"`
	RawScore         sql.NullInt64 `db:"raw_score"`
	MultipliedPoints int           `db:"multiplied_points"`
}
