package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/pick"
	qb "github.com/NickLiffen/bearwood-lakes-fantasy/internal/platform/querybuilder"
)

type PickRepository struct {
	db *sqlx.DB
}

func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

// created_at is nullable on purpose: picks imported from the old site have no
// creation timestamp and must stay NULL so eligibility grandfathers them.
func (r *PickRepository) ListBySeason(ctx context.Context, season int) ([]pick.Pick, error) {
	query, args, err := qb.Select("id", "user_id", "season", "golfer_ids", "captain_id", "created_at", "total_spent").
		From("picks").
		Where(qb.Eq("season", season)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select picks query: %w", err)
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select picks: %w", err)
	}

	out := make([]pick.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickFromRow(row))
	}

	return out, nil
}

func (r *PickRepository) GetByUserAndSeason(ctx context.Context, userID string, season int) (pick.Pick, bool, error) {
	query, args, err := qb.Select("id", "user_id", "season", "golfer_ids", "captain_id", "created_at", "total_spent").
		From("picks").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("season", season),
		).
		ToSQL()
	if err != nil {
		return pick.Pick{}, false, fmt.Errorf("build get pick query: %w", err)
	}

	var row pickTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return pick.Pick{}, false, nil
		}
		return pick.Pick{}, false, fmt.Errorf("get pick by user and season: %w", err)
	}

	return pickFromRow(row), true, nil
}

func (r *PickRepository) Create(ctx context.Context, item pick.Pick) error {
	query, args, err := qb.InsertInto("picks").
		Columns("id", "user_id", "season", "golfer_ids", "captain_id", "created_at", "total_spent").
		Values(item.ID, item.UserID, item.Season, pq.StringArray(item.GolferIDs), item.CaptainID, item.CreatedAt, item.TotalSpent).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert pick query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert pick: %w", err)
	}

	return nil
}

func pickFromRow(row pickTableModel) pick.Pick {
	return pick.Pick{
		ID:         row.ID,
		UserID:     row.UserID,
		Season:     row.Season,
		GolferIDs:  append([]string(nil), row.GolferIDs...),
		CaptainID:  row.CaptainID,
		CreatedAt:  row.CreatedAt,
		TotalSpent: row.TotalSpent,
	}
}
