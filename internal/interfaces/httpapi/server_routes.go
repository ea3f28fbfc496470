package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/overview", handler.GetTeamOverview)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/shots", handler.GetTeamShotChart)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/schedule", handler.GetTeamSchedule)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/scouting", handler.GetTeamScouting)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players/{playerID}/overview", handler.GetPlayerOverview)
}
