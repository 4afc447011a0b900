package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/smimonitor/noticias/pkg/domain"
)

// listNewsHandler returns a filtered page of items with the next cursor and the total count
func (s *Server) listNewsHandler(w http.ResponseWriter, r *http.Request) {
	req, err := parseListQuery(r.URL.Query())
	if err != nil {
		handleError(w, r, err)
		return
	}
	res, err := s.svc.News.List(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// getNewsHandler returns a single item
func (s *Server) getNewsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	item, err := s.svc.News.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, item)
}

// updateNewsHandler applies a partial update and returns the stored item
func (s *Server) updateNewsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		handleError(w, r, fmt.Errorf("%w: can't read body: %w", domain.ErrInvalidArgument, err))
		return
	}
	patch, err := domain.DecodeNewsPatch(body)
	if err != nil {
		handleError(w, r, err)
		return
	}
	item, err := s.svc.News.Update(r.Context(), id, patch)
	if err != nil {
		handleError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, item)
}

// strategicDatesHandler lists days having strategic items as DD/MM/YYYY strings
func (s *Server) strategicDatesHandler(w http.ResponseWriter, r *http.Request) {
	dates, err := s.svc.News.StrategicDates(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if dates == nil {
		dates = []domain.Date{}
	}
	renderJSON(w, r, http.StatusOK, dates)
}

// postNewsHandler creates an item from a staff submission
func (s *Server) postNewsHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.NewsInput
	if err := decodeBody(r, &in); err != nil {
		handleError(w, r, err)
		return
	}
	item, err := s.svc.Intake.Create(r.Context(), in)
	if err != nil {
		handleError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, item)
}
