package server

import (
	"net/http"

	"github.com/smimonitor/noticias/pkg/domain"
	"github.com/smimonitor/noticias/pkg/metrics"
	"github.com/smimonitor/noticias/pkg/service"
)

// dashboardResponse is the overview with the per-day series under their dashboard names
type dashboardResponse struct {
	service.Overview
	CountByDay     []metrics.DayCount     `json:"noticiasPorPeriodo"`
	ScoreByDay     []metrics.DayScore     `json:"pontuacaoPorPeriodo"`
	Evolution      []metrics.DayCount     `json:"evolucaoNoticiasPorPeriodo"`
	SentimentByDay []metrics.DaySentiment `json:"sentimentoNoticiasPorPeriodo"`
}

type totalResponse struct {
	Total int `json:"total"`
}

// dashboardHandler returns every dashboard figure in one payload
func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	req, err := parseDashboardQuery(r.URL.Query())
	if err != nil {
		handleError(w, r, err)
		return
	}
	ov, err := s.svc.Dashboard.Overview(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, dashboardResponse{
		Overview:       ov,
		CountByDay:     ov.Counts(),
		ScoreByDay:     ov.Scores(),
		Evolution:      ov.Counts(),
		SentimentByDay: ov.Sentiments(),
	})
}

// dashboardTotal makes a handler rendering one summary total as {"total": n}
func (s *Server) dashboardTotal(pick func(metrics.Summary) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sm, ok := s.summary(w, r)
		if !ok {
			return
		}
		renderJSON(w, r, http.StatusOK, totalResponse{Total: pick(sm)})
	}
}

// dashboardSeries makes a handler rendering a projection of the per-day series
func (s *Server) dashboardSeries(project func(metrics.Summary) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sm, ok := s.summary(w, r)
		if !ok {
			return
		}
		renderJSON(w, r, http.StatusOK, project(sm))
	}
}

// portalRankingHandler returns the top and bottom portals
func (s *Server) portalRankingHandler(w http.ResponseWriter, r *http.Request) {
	req, err := parseDashboardQuery(r.URL.Query())
	if err != nil {
		handleError(w, r, err)
		return
	}
	rank, err := s.svc.Dashboard.Ranking(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, rank)
}

// topPortalsHandler makes a handler ranking portals by items with the given sentiment
func (s *Server) topPortalsHandler(sentiment domain.Sentiment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseDashboardQuery(r.URL.Query())
		if err != nil {
			handleError(w, r, err)
			return
		}
		res, err := s.svc.Dashboard.TopPortals(r.Context(), req, sentiment)
		if err != nil {
			handleError(w, r, err)
			return
		}
		if res == nil {
			res = []metrics.PortalSentiment{}
		}
		renderJSON(w, r, http.StatusOK, res)
	}
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) (metrics.Summary, bool) {
	req, err := parseDashboardQuery(r.URL.Query())
	if err != nil {
		handleError(w, r, err)
		return metrics.Summary{}, false
	}
	sm, err := s.svc.Dashboard.Summary(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return metrics.Summary{}, false
	}
	return sm, true
}
