package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/score"
	qb "github.com/NickLiffen/bearwood-lakes-fantasy/internal/platform/querybuilder"
)

type ScoreRepository struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) ListBySeason(ctx context.Context, season int) ([]score.Score, error) {
	const query = `
SELECT s.tournament_id, s.golfer_id, s.participated, s.position, s.raw_score, s.multiplied_points
FROM scores s
JOIN tournaments t ON t.id = s.tournament_id
WHERE t.season = $1
  AND t.deleted_at IS NULL
ORDER BY s.tournament_id, s.golfer_id`

	var rows []scoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, season); err != nil {
		return nil, fmt.Errorf("select season scores: %w", err)
	}

	return scoresFromRows(rows), nil
}

func (r *ScoreRepository) ListByTournament(ctx context.Context, tournamentID string) ([]score.Score, error) {
	query, args, err := qb.Select("tournament_id", "golfer_id", "participated", "position", "raw_score", "multiplied_points").
		From("scores").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("golfer_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournament scores query: %w", err)
	}

	var rows []scoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournament scores: %w", err)
	}

	return scoresFromRows(rows), nil
}

// ReplaceByTournament swaps a tournament's score set in one transaction, so a
// partially applied sheet can never be observed.
func (r *ScoreRepository) ReplaceByTournament(ctx context.Context, tournamentID string, scores []score.Score) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for score replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("scores").
		Where(qb.Eq("tournament_id", tournamentID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete tournament scores query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete tournament scores: %w", err)
	}

	if len(scores) > 0 {
		insert := qb.InsertInto("scores").
			Columns("tournament_id", "golfer_id", "participated", "position", "raw_score", "multiplied_points")
		for _, s := range scores {
			insert = insert.Values(
				tournamentID,
				s.GolferID,
				s.Participated,
				intPtrToNullInt64(s.Position),
				intPtrToNullInt64(s.RawScore),
				s.MultipliedPoints,
			)
		}

		insertQuery, insertArgs, err := insert.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert tournament scores query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert tournament scores: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit score replace: %w", err)
	}

	return nil
}

func scoresFromRows(rows []scoreTableModel) []score.Score {
	out := make([]score.Score, 0, len(rows))
	for _, row := range rows {
		out = append(out, score.Score{
			TournamentID:     row.TournamentID,
			GolferID:         row.GolferID,
			Participated:     row.Participated,
			Position:         nullInt64ToIntPtr(row.Position),
			RawScore:         nullInt64ToIntPtr(row.RawScore),
			MultipliedPoints: row.MultipliedPoints,
		})
	}
	return out
}
