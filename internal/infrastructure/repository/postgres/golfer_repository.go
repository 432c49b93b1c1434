package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/golfer"
	qb "github.com/NickLiffen/bearwood-lakes-fantasy/internal/platform/querybuilder"
)

type golferTableModel struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Club  string `db:"club"`
	Price int64  `db:"price"`
}

type GolferRepository struct {
	db *sqlx.DB
}

func NewGolferRepository(db *sqlx.DB) *GolferRepository {
	return &GolferRepository{db: db}
}

func (r *GolferRepository) List(ctx context.Context) ([]golfer.Golfer, error) {
	query, args, err := qb.Select("id", "name", "club", "price").From("golfers").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select golfers query: %w", err)
	}

	var rows []golferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select golfers: %w", err)
	}

	out := make([]golfer.Golfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, golfer.Golfer{
			ID:    row.ID,
			Name:  row.Name,
			Club:  row.Club,
			Price: row.Price,
		})
	}

	return out, nil
}

func (r *GolferRepository) GetByID(ctx context.Context, golferID string) (golfer.Golfer, bool, error) {
	query, args, err := qb.Select("id", "name", "club", "price").From("golfers").
		Where(qb.Eq("id", golferID)).
		ToSQL()
	if err != nil {
		return golfer.Golfer{}, false, fmt.Errorf("build get golfer query: %w", err)
	}

	var row golferTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return golfer.Golfer{}, false, nil
		}
		return golfer.Golfer{}, false, fmt.Errorf("get golfer by id: %w", err)
	}

	return golfer.Golfer{
		ID:    row.ID,
		Name:  row.Name,
		Club:  row.Club,
		Price: row.Price,
	}, true, nil
}
