package postgres

import "time"

type tournamentTableModel struct {
	ID         string     `db:"id"`
	Name       string     `db:"name"`
	StartDate  time.Time  `db:"start_date"`
	EndDate    time.Time  `db:"end_date"`
	Status     string     `db:"status"`
	Season     int        `db:"season"`
	Multiplier int        `db:"multiplier"`
	Format     string     `db:"format"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type tournamentInsertModel struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	Status     string    `db:"status"`
	Season     int       `db:"season"`
	Multiplier int       `db:"multiplier"`
	Format     string    `db:"format"`
}
