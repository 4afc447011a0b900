package server

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/smimonitor/noticias/pkg/domain"
	"github.com/smimonitor/noticias/pkg/service"
)

// parseListQuery builds a list request from /noticias query parameters
func parseListQuery(q url.Values) (service.ListRequest, error) {
	var req service.ListRequest
	var err error

	if req.From, err = queryDate(q, "from"); err != nil {
		return req, err
	}
	if req.To, err = queryDate(q, "to"); err != nil {
		return req, err
	}
	if q.Get("date") != "" {
		d, err := queryDate(q, "date")
		if err != nil {
			return req, err
		}
		req.From, req.To = d, d
	}

	if req.Filter, err = parseFilter(q); err != nil {
		return req, err
	}
	req.Filter.Theme = strings.TrimSpace(q.Get("tema"))
	req.Filter.Title = strings.TrimSpace(q.Get("titulo"))
	req.Filter.Portal = strings.TrimSpace(q.Get("portal"))

	req.After = strings.TrimSpace(q.Get("after"))
	if q.Has("limit") {
		limit, err := strconv.Atoi(strings.TrimSpace(q.Get("limit")))
		if err != nil {
			return req, fmt.Errorf("%w: limit must be a number, got %q", domain.ErrInvalidArgument, q.Get("limit"))
		}
		req.Limit = &limit
	}
	return req, nil
}

// parseDashboardQuery builds a dashboard request. Without relevancia every item counts.
func parseDashboardQuery(q url.Values) (service.DashboardRequest, error) {
	var req service.DashboardRequest
	var err error

	if req.From, err = queryDate(q, "dataInicio"); err != nil {
		return req, err
	}
	if req.To, err = queryDate(q, "dataFim"); err != nil {
		return req, err
	}
	req.LastWindow = q.Get("forceLast30Days") == "true"

	if req.Filter, err = parseFilter(q); err != nil {
		return req, err
	}
	if req.Filter.Relevance == domain.RelevanceDefault {
		req.Filter.Relevance = domain.RelevanceAll
	}
	return req, nil
}

// parseFilter reads the filters shared by listing and dashboard
func parseFilter(q url.Values) (domain.NewsFilter, error) {
	var f domain.NewsFilter
	var err error

	if f.Relevance, err = domain.ParseRelevanceFilter(q.Get("relevancia")); err != nil {
		return f, err
	}

	switch v := strings.ToLower(strings.TrimSpace(q.Get("estrategica"))); v {
	case "":
	case "true", "false":
		strategic := v == "true"
		f.Strategic = &strategic
	default:
		return f, fmt.Errorf("%w: estrategica must be true or false, got %q", domain.ErrInvalidArgument, v)
	}

	// present but empty, or "nula", selects items without sentiment
	if q.Has("avaliacao") {
		v := strings.TrimSpace(q.Get("avaliacao"))
		s := domain.SentimentNone
		if v != "" && !strings.EqualFold(v, "nula") {
			if s, err = domain.ParseSentiment(v); err != nil {
				return f, err
			}
		}
		f.Sentiment = &s
	}
	return f, nil
}

// queryDate parses an optional YYYY-MM-DD parameter
func queryDate(q url.Values, key string) (domain.Date, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return domain.Date{}, nil
	}
	d, err := domain.ParseQuery(v)
	if err != nil {
		return domain.Date{}, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
