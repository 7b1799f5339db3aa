package httpapi

import (
	"net/http"

	"github.com/riskibarqy/team-registry/internal/platform/metrics"
)

type routeRegistrar struct {
	mux     *http.ServeMux
	metrics *metrics.Metrics
}

func (r routeRegistrar) handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, instrumentRoute(r.metrics, pattern, handler))
}

func (r routeRegistrar) handleFunc(pattern string, handler http.HandlerFunc) {
	r.handle(pattern, handler)
}

func registerSystemRoutes(routes routeRegistrar, handler *Handler, metricsHandler http.Handler) {
	routes.handleFunc("GET /healthz", handler.Healthz)
	if metricsHandler == nil {
		return
	}

	routes.mux.Handle("GET /metrics", metricsHandler)
}

func registerTeamRoutes(routes routeRegistrar, handler *Handler) {
	routes.handleFunc("POST /v1/teams", handler.InsertTeam)
	routes.handleFunc("GET /v1/teams", handler.ListAllTeams)
	routes.handleFunc("GET /v1/teams/summaries", handler.ListTeamSummaries)
	routes.handleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	routes.handleFunc("GET /v1/teams/{teamID}/name", handler.GetTeamName)
	routes.handleFunc("GET /v1/teams/{teamID}/captain", handler.GetTeamCaptain)
	routes.handleFunc("GET /v1/teams/{teamID}/players", handler.ListTeamPlayers)
	routes.handleFunc("GET /v1/teams/{teamID}/players/best", handler.BestPlayerOnTeam)
	routes.handleFunc("GET /v1/teams/{teamID}/players/oldest", handler.OldestPlayerOnTeam)
	routes.handleFunc("GET /v1/teams/{teamID}/players/highest-paid", handler.HighestPaidPlayerOnTeam)
	routes.handleFunc("GET /v1/teams/{teamID}/summary", handler.GetTeamSummary)
	routes.handleFunc("GET /v1/teams/{homeTeamID}/away-uniform/{awayTeamID}", handler.AwayUniformColor)
}

func registerPlayerRoutes(routes routeRegistrar, handler *Handler) {
	routes.handleFunc("POST /v1/players", handler.InsertPlayer)
	routes.handleFunc("GET /v1/players/top", handler.TopPlayers)
	routes.handleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	routes.handleFunc("GET /v1/players/{playerID}/name", handler.GetPlayerName)
	routes.handleFunc("GET /v1/players/{playerID}/salary", handler.GetPlayerSalary)
	routes.handleFunc("PUT /v1/players/{playerID}/captain", handler.SetCaptain)
}

func registerImportRoutes(routes routeRegistrar, handler *Handler) {
	routes.handleFunc("POST /v1/imports", handler.ImportRoster)
}
