package httpapi

import (
	"net/http"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/score"
)

type scoreDTO struct {
	TournamentID     string `json:"tournament_id"`
	GolferID         string `json:"golfer_id"`
	Participated     bool   `json:"participated"`
	Position         *int   `json:"position,omitempty"`
	RawScore         *int   `json:"raw_score,omitempty"`
	MultipliedPoints int    `json:"multiplied_points"`
}

type submitScoresRequest struct {
	Entries []scoreEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

type scoreEntryRequest struct {
	GolferID     string `json:"golfer_id" validate:"required"`
	Position     *int   `json:"position" validate:"omitempty,gte=1"`
	RawScore     *int   `json:"raw_score"`
	Participated bool   `json:"participated"`
	BasePoints   int    `json:"base_points" validate:"gte=0"`
}

// SubmitScores replaces the tournament's score sheet. The whole sheet is
// validated before the swap, so a bad submission changes nothing.
func (h *Handler) SubmitScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitScores")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")

	var req submitScoresRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]score.Entry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, score.Entry{
			GolferID:     e.GolferID,
			Position:     e.Position,
			RawScore:     e.RawScore,
			Participated: e.Participated,
			BasePoints:   e.BasePoints,
		})
	}

	stored, err := h.scoringService.SubmitScores(ctx, tournamentID, entries)
	if err != nil {
		h.logger.WarnContext(ctx, "submit scores failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "scores submitted", "tournament_id", tournamentID, "count", len(stored))
	writeSuccess(ctx, w, http.StatusOK, scoresToDTO(stored))
}

func (h *Handler) ListScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScores")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	items, err := h.scoringService.ListByTournament(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list scores failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoresToDTO(items))
}

func scoresToDTO(items []score.Score) []scoreDTO {
	out := make([]scoreDTO, 0, len(items))
	for _, item := range items {
		out = append(out, scoreDTO{
			TournamentID:     item.TournamentID,
			GolferID:         item.GolferID,
			Participated:     item.Participated,
			Position:         item.Position,
			RawScore:         item.RawScore,
			MultipliedPoints: item.MultipliedPoints,
		})
	}
	return out
}
