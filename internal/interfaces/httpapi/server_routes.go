package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerRecommendationRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/leagues/{leagueID}/recommendations/lineup", handler.LineupRecommendations)
	mux.HandleFunc("POST /v1/leagues/{leagueID}/recommendations/waiver", handler.WaiverRecommendations)
}
