package httpapi

import (
	"net/http"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/usecase"
)

type recomputeRequest struct {
	MaxWorkers int `json:"max_workers" validate:"gte=0"`
}

// RecomputeLeaderboards warms every period board for a season after a bulk
// data correction. Admin only; the request body is optional.
func (h *Handler) RecomputeLeaderboards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeLeaderboards")
	defer span.End()

	season, err := seasonFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req recomputeRequest
	if r.ContentLength > 0 {
		if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	result, err := h.recomputeService.Recompute(ctx, usecase.RecomputeInput{
		Season:     season,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "recompute failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "recompute finished",
		"season", result.Season,
		"tasks", result.TaskCount,
		"succeeded", result.SuccessCount,
		"failed", result.FailedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}
