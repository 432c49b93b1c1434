package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/config"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/golfer"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/pick"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/score"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/tournament"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/infrastructure/repository/memory"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/infrastructure/repository/postgres"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/interfaces/httpapi"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/platform/cache"
	idgen "github.com/NickLiffen/bearwood-lakes-fantasy/internal/platform/id"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/platform/logging"
	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/usecase"
)

type repositories struct {
	tournaments tournament.Repository
	golfers     golfer.Repository
	picks       pick.Repository
	scores      score.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	loc, err := cfg.SeasonLocation()
	if err != nil {
		return nil, err
	}

	repos, closeDB, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	var boardCache *cache.Store
	if cfg.CacheEnabled {
		boardCache = cache.NewStore(cfg.CacheTTL)
	}

	leaderboardSvc := usecase.NewLeaderboardService(repos.picks, repos.tournaments, repos.scores, boardCache, loc)
	tournamentSvc := usecase.NewTournamentService(repos.tournaments, idgen.NewRandomGenerator(), boardCache)
	scoringSvc := usecase.NewScoringService(repos.tournaments, repos.scores, boardCache)
	teamSvc := usecase.NewTeamService(repos.picks, repos.golfers, idgen.NewRandomGenerator(), pick.DefaultRules(), boardCache)
	recomputeSvc := usecase.NewRecomputeService(leaderboardSvc, loc)

	handler := httpapi.NewHandler(tournamentSvc, scoringSvc, leaderboardSvc, teamSvc, recomputeSvc, loc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if closeDB != nil {
		server.RegisterOnShutdown(func() {
			if err := closeDB(); err != nil {
				logger.Error("close database", "error", err)
			}
		})
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDatabase(cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		logger.Info("storage ready", "driver", cfg.StorageDriver, "database", databaseName(cfg.DBURL))
		return repositories{
			tournaments: postgres.NewTournamentRepository(db),
			golfers:     postgres.NewGolferRepository(db),
			picks:       postgres.NewPickRepository(db),
			scores:      postgres.NewScoreRepository(db),
		}, db.Close, nil
	default:
		tournamentRepo := memory.NewTournamentRepository(memory.SeedTournaments())
		logger.Info("storage ready", "driver", cfg.StorageDriver, "season", memory.SeedSeason)
		return repositories{
			tournaments: tournamentRepo,
			golfers:     memory.NewGolferRepository(memory.SeedGolfers()),
			picks:       memory.NewPickRepository(memory.SeedPicks()),
			scores:      memory.NewScoreRepository(tournamentRepo, memory.SeedScores()),
		}, nil, nil
	}
}
