package httpapi

import (
	"net/http"
	"time"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/golfer"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/pick"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/usecase"
)

type golferDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Club  string `json:"club,omitempty"`
	Price int64  `json:"price"`
}

type pickDTO struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	Season     int      `json:"season"`
	GolferIDs  []string `json:"golfer_ids"`
	CaptainID  string   `json:"captain_id,omitempty"`
	CreatedAt  string   `json:"created_at,omitempty"`
	TotalSpent int64    `json:"total_spent"`
}

type createPickRequest struct {
	GolferIDs []string `json:"golfer_ids" validate:"required,min=1,dive,required"`
	CaptainID string   `json:"captain_id"`
}

func (h *Handler) ListGolfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGolfers")
	defer span.End()

	items, err := h.teamService.ListGolfers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list golfers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, golfersToDTO(items))
}

// CreatePick registers a member's squad for the season in the URL. The squad
// is locked once created; there is no update endpoint.
func (h *Handler) CreatePick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePick")
	defer span.End()

	season, err := seasonFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	userID := r.PathValue("userID")

	var req createPickRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.CreatePick(ctx, usecase.CreatePickInput{
		UserID:    userID,
		Season:    season,
		GolferIDs: req.GolferIDs,
		CaptainID: req.CaptainID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create pick failed", "user_id", userID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "pick created", "pick_id", item.ID, "user_id", item.UserID, "season", item.Season)
	writeSuccess(ctx, w, http.StatusCreated, pickToDTO(item))
}

func (h *Handler) GetPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPick")
	defer span.End()

	season, err := seasonFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	userID := r.PathValue("userID")

	item, err := h.teamService.GetPick(ctx, userID, season)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pickToDTO(item))
}

func golfersToDTO(items []golfer.Golfer) []golferDTO {
	out := make([]golferDTO, 0, len(items))
	for _, item := range items {
		out = append(out, golferDTO{
			ID:    item.ID,
			Name:  item.Name,
			Club:  item.Club,
			Price: item.Price,
		})
	}
	return out
}

func pickToDTO(item pick.Pick) pickDTO {
	dto := pickDTO{
		ID:         item.ID,
		UserID:     item.UserID,
		Season:     item.Season,
		GolferIDs:  item.GolferIDs,
		CaptainID:  item.CaptainID,
		TotalSpent: item.TotalSpent,
	}
	if item.CreatedAt != nil {
		dto.CreatedAt = item.CreatedAt.Format(time.RFC3339)
	}
	return dto
}
