package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/smimonitor/noticias/pkg/domain"
)

// listWeeksHandler lists all strategic weeks, or those covering ?data=DD/MM/YYYY
func (s *Server) listWeeksHandler(w http.ResponseWriter, r *http.Request) {
	var day domain.Date
	if v := strings.TrimSpace(r.URL.Query().Get("data")); v != "" {
		d, err := domain.ParseStorage(v)
		if err != nil {
			handleError(w, r, fmt.Errorf("data: %w", err))
			return
		}
		day = d
	}
	weeks, err := s.svc.Weeks.List(r.Context(), day)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if weeks == nil {
		weeks = []domain.StrategicWeek{}
	}
	renderJSON(w, r, http.StatusOK, weeks)
}

// getWeekHandler returns one strategic week
func (s *Server) getWeekHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	week, err := s.svc.Weeks.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, week)
}

// createWeekHandler stores a new strategic week, overlaps are rejected with the conflicting week
func (s *Server) createWeekHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.WeekInput
	if err := decodeBody(r, &in); err != nil {
		handleError(w, r, err)
		return
	}
	week, err := s.svc.Weeks.Create(r.Context(), in)
	if err != nil {
		handleError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, week)
}

// updateWeekHandler replaces a strategic week and resyncs the items of its new interval
func (s *Server) updateWeekHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var in domain.WeekInput
	if err = decodeBody(r, &in); err != nil {
		handleError(w, r, err)
		return
	}
	week, err := s.svc.Weeks.Update(r.Context(), id, in)
	if err != nil {
		handleError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, week)
}

// getPortalHandler finds a portal by name
func (s *Server) getPortalHandler(w http.ResponseWriter, r *http.Request) {
	portal, err := s.svc.Portals.GetByName(r.Context(), r.PathValue("nome"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, portal)
}

// createPortalHandler stores a new portal
func (s *Server) createPortalHandler(w http.ResponseWriter, r *http.Request) {
	var p domain.Portal
	if err := decodeBody(r, &p); err != nil {
		handleError(w, r, err)
		return
	}
	portal, err := s.svc.Portals.Create(r.Context(), p)
	if err != nil {
		handleError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, portal)
}

// updatePortalHandler replaces a portal
func (s *Server) updatePortalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var p domain.Portal
	if err = decodeBody(r, &p); err != nil {
		handleError(w, r, err)
		return
	}
	portal, err := s.svc.Portals.Update(r.Context(), id, p)
	if err != nil {
		handleError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, portal)
}
