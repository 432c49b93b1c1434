package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/tournament"
	qb "github.com/NickLiffen/bearwood-lakes-fantasy/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) ListBySeason(ctx context.Context, season int) ([]tournament.Tournament, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(
			qb.Eq("season", season),
			qb.IsNull("deleted_at"),
		).
		OrderBy("start_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournamentFromRow(row))
	}

	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(
			qb.Eq("id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build get tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament by id: %w", err)
	}

	return tournamentFromRow(row), true, nil
}

func (r *TournamentRepository) Create(ctx context.Context, item tournament.Tournament) error {
	query, args, err := qb.InsertModel("tournaments", tournamentInsertModel{
		ID:         item.ID,
		Name:       item.Name,
		StartDate:  item.StartDate,
		EndDate:    item.EndDate,
		Status:     tournament.NormalizeStatus(item.Status),
		Season:     item.Season,
		Multiplier: item.Multiplier,
		Format:     item.Format,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert tournament query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert tournament: %w", err)
	}

	return nil
}

func (r *TournamentRepository) UpdateStatus(ctx context.Context, tournamentID, status string) error {
	query, args, err := qb.Update("tournaments").
		Set("status", status).
		Where(
			qb.Eq("id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update tournament status query: %w", err)
	}

	var updatedID string
	if err := r.db.GetContext(ctx, &updatedID, query, args...); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("tournament %s not found", tournamentID)
		}
		return fmt.Errorf("update tournament status: %w", err)
	}

	return nil
}

func tournamentFromRow(row tournamentTableModel) tournament.Tournament {
	return tournament.Tournament{
		ID:         row.ID,
		Name:       row.Name,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		Status:     row.Status,
		Season:     row.Season,
		Multiplier: row.Multiplier,
		Format:     row.Format,
	}
}
