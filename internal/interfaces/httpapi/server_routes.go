package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/golfers", handler.ListGolfers)
	mux.HandleFunc("GET /v1/seasons/{season}/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/scores", handler.ListScores)
	mux.HandleFunc("GET /v1/seasons/{season}/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/seasons/{season}/users/{userID}/summary", handler.GetUserSummary)
	mux.HandleFunc("GET /v1/seasons/{season}/users/{userID}/pick", handler.GetPick)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/tournaments", RequireAdminToken(adminToken, http.HandlerFunc(handler.CreateTournament)))
	mux.Handle("POST /v1/tournaments/{tournamentID}/publish", RequireAdminToken(adminToken, http.HandlerFunc(handler.PublishTournament)))
	mux.Handle("POST /v1/tournaments/{tournamentID}/complete", RequireAdminToken(adminToken, http.HandlerFunc(handler.CompleteTournament)))
	mux.Handle("PUT /v1/tournaments/{tournamentID}/scores", RequireAdminToken(adminToken, http.HandlerFunc(handler.SubmitScores)))
	mux.Handle("POST /v1/seasons/{season}/users/{userID}/pick", RequireAdminToken(adminToken, http.HandlerFunc(handler.CreatePick)))
	mux.Handle("POST /v1/seasons/{season}/recompute", RequireAdminToken(adminToken, http.HandlerFunc(handler.RecomputeLeaderboards)))
}
