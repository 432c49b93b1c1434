package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/leaderboard"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/schedule"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/usecase"
)

type leaderboardDTO struct {
	Season      int                   `json:"season"`
	PeriodType  string                `json:"period_type"`
	PeriodLabel string                `json:"period_label"`
	PeriodStart string                `json:"period_start"`
	PeriodEnd   string                `json:"period_end"`
	Gameweek    int                   `json:"gameweek,omitempty"`
	HasPrevious bool                  `json:"has_previous"`
	HasNext     bool                  `json:"has_next"`
	Entries     []leaderboardEntryDTO `json:"entries"`
}

type leaderboardEntryDTO struct {
	UserID         string `json:"user_id"`
	Points         int    `json:"points"`
	Rank           int    `json:"rank"`
	PreviousRank   int    `json:"previous_rank,omitempty"`
	Movement       string `json:"movement"`
	MovementAmount int    `json:"movement_amount,omitempty"`
}

type userSummaryDTO struct {
	UserID      string   `json:"user_id"`
	Season      int      `json:"season"`
	HasTeam     bool     `json:"has_team"`
	GolferIDs   []string `json:"golfer_ids,omitempty"`
	TotalPoints int      `json:"total_points"`
	Rank        int      `json:"rank,omitempty"`
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	season, err := seasonFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rawPeriod := strings.TrimSpace(r.URL.Query().Get("period"))
	if rawPeriod == "" {
		rawPeriod = string(schedule.PeriodWeek)
	}
	periodType, ok := schedule.ParsePeriodType(rawPeriod)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown period type %q", usecase.ErrInvalidInput, rawPeriod))
		return
	}

	ref, err := dateQueryParam(r, h.loc)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.leaderboardService.GetLeaderboard(ctx, season, periodType, ref)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "season", season, "period", rawPeriod, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(board))
}

func (h *Handler) GetUserSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUserSummary")
	defer span.End()

	season, err := seasonFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	userID := r.PathValue("userID")

	summary, err := h.leaderboardService.GetUserSummary(ctx, season, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get user summary failed", "season", season, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userSummaryDTO{
		UserID:      summary.UserID,
		Season:      summary.Season,
		HasTeam:     summary.HasTeam,
		GolferIDs:   summary.GolferIDs,
		TotalPoints: summary.TotalPoints,
		Rank:        summary.Rank,
	})
}

func leaderboardToDTO(board usecase.Leaderboard) leaderboardDTO {
	entries := make([]leaderboardEntryDTO, 0, len(board.Entries))
	for _, entry := range board.Entries {
		entries = append(entries, leaderboardEntryToDTO(entry))
	}

	return leaderboardDTO{
		Season:      board.Season,
		PeriodType:  string(board.Period.Type),
		PeriodLabel: board.Period.Label,
		PeriodStart: board.Period.Start.Format("2006-01-02"),
		PeriodEnd:   board.Period.End.Format("2006-01-02"),
		Gameweek:    board.Period.Gameweek,
		HasPrevious: board.Navigation.HasPrevious,
		HasNext:     board.Navigation.HasNext,
		Entries:     entries,
	}
}

func leaderboardEntryToDTO(entry leaderboard.Entry) leaderboardEntryDTO {
	return leaderboardEntryDTO{
		UserID:         entry.UserID,
		Points:         entry.Points,
		Rank:           entry.Rank,
		PreviousRank:   entry.PreviousRank,
		Movement:       entry.Movement,
		MovementAmount: entry.MovementAmount,
	}
}
