package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/tournament"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/usecase"
)

type tournamentDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	Season     int    `json:"season"`
	Multiplier int    `json:"multiplier"`
	Format     string `json:"format"`
}

type createTournamentRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"omitempty"`
	Season     int    `json:"season" validate:"required,gt=0"`
	Multiplier int    `json:"multiplier" validate:"required,gt=0"`
	Format     string `json:"format" validate:"required,oneof=stableford medal"`
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	season, err := seasonFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.tournamentService.ListBySeason(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list tournaments failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]tournamentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, tournamentToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournament")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	item, err := h.tournamentService.GetByID(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(item))
}

func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTournament")
	defer span.End()

	var req createTournamentRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	startDate, err := h.parseTournamentDate(req.StartDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var endDate time.Time
	if req.EndDate != "" {
		if endDate, err = h.parseTournamentDate(req.EndDate); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	item, err := h.tournamentService.Create(ctx, usecase.CreateTournamentInput{
		Name:       req.Name,
		StartDate:  startDate,
		EndDate:    endDate,
		Season:     req.Season,
		Multiplier: req.Multiplier,
		Format:     req.Format,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create tournament failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "tournament created", "tournament_id", item.ID, "season", item.Season)
	writeSuccess(ctx, w, http.StatusCreated, tournamentToDTO(item))
}

func (h *Handler) PublishTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PublishTournament")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	item, err := h.tournamentService.Publish(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "publish tournament failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "tournament published", "tournament_id", item.ID)
	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(item))
}

func (h *Handler) CompleteTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteTournament")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	item, err := h.tournamentService.Complete(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "complete tournament failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "tournament completed", "tournament_id", item.ID)
	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(item))
}

// parseTournamentDate accepts a bare date or a full RFC3339 timestamp; bare
// dates land at club-local midnight.
func (h *Handler) parseTournamentDate(raw string) (time.Time, error) {
	if parsed, err := time.ParseInLocation("2006-01-02", raw, h.loc); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.In(h.loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD or RFC3339", usecase.ErrInvalidInput, raw)
}

func tournamentToDTO(item tournament.Tournament) tournamentDTO {
	return tournamentDTO{
		ID:         item.ID,
		Name:       item.Name,
		StartDate:  item.StartDate.Format(time.RFC3339),
		EndDate:    item.EndDate.Format(time.RFC3339),
		Status:     tournament.NormalizeStatus(item.Status),
		Season:     item.Season,
		Multiplier: item.Multiplier,
		Format:     item.Format,
	}
}
