package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/platform/logging"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/usecase"
)

type Handler struct {
	tournamentService  *usecase.TournamentService
	scoringService     *usecase.ScoringService
	leaderboardService *usecase.LeaderboardService
	teamService        *usecase.TeamService
	recomputeService   *usecase.RecomputeService
	loc                *time.Location
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	tournamentService *usecase.TournamentService,
	scoringService *usecase.ScoringService,
	leaderboardService *usecase.LeaderboardService,
	teamService *usecase.TeamService,
	recomputeService *usecase.RecomputeService,
	loc *time.Location,
	logger *logging.Logger,
) *Handler {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		tournamentService:  tournamentService,
		scoringService:     scoringService,
		leaderboardService: leaderboardService,
		teamService:        teamService,
		recomputeService:   recomputeService,
		loc:                loc,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, body io.Reader, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func seasonFromPath(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("season"))
	season, err := strconv.Atoi(raw)
	if err != nil || season <= 0 {
		return 0, fmt.Errorf("%w: invalid season %q", usecase.ErrInvalidInput, raw)
	}
	return season, nil
}

// dateQueryParam reads an optional ?date=YYYY-MM-DD reference in the given
// location. Absent means "now".
func dateQueryParam(r *http.Request, loc *time.Location) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", usecase.ErrInvalidInput, raw)
	}
	return parsed, nil
}
