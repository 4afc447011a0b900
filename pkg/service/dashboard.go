package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/smimonitor/noticias/pkg/domain"
	"github.com/smimonitor/noticias/pkg/metrics"
	"github.com/smimonitor/noticias/pkg/repository"
)

// DashboardRequest holds dashboard inputs, zero dates mean the bound was not given
type DashboardRequest struct {
	From       domain.Date
	To         domain.Date
	LastWindow bool // ignore From and To, use the default window up to today
	Filter     domain.NewsFilter
}

// Overview is the full dashboard payload
type Overview struct {
	metrics.Summary
	Ranking         metrics.Ranking           `json:"portaisRanking"`
	PositivePortals []metrics.PortalSentiment `json:"portaisRelevantesPositivas"`
	NegativePortals []metrics.PortalSentiment `json:"portaisRelevantesNegativas"`
	PeriodStart     string                    `json:"dataInicio"`
	PeriodEnd       string                    `json:"dataFim"`
}

// DashboardService computes dashboard metrics over filtered items
type DashboardService struct {
	repos      *repository.Repositories
	windowDays int
	now        func() time.Time
}

// NewDashboardService creates a dashboard service, windowDays is the default range length
func NewDashboardService(repos *repository.Repositories, windowDays int) *DashboardService {
	if windowDays <= 0 {
		windowDays = 30
	}
	return &DashboardService{repos: repos, windowDays: windowDays, now: time.Now}
}

// Summary returns totals and the per-day series
func (s *DashboardService) Summary(ctx context.Context, req DashboardRequest) (metrics.Summary, error) {
	items, _, err := s.items(ctx, req)
	if err != nil {
		return metrics.Summary{}, err
	}
	return metrics.Summarize(items), nil
}

// Ranking returns the top and bottom portals by summed derived score
func (s *DashboardService) Ranking(ctx context.Context, req DashboardRequest) (metrics.Ranking, error) {
	items, _, err := s.items(ctx, req)
	if err != nil {
		return metrics.Ranking{}, err
	}
	return metrics.RankPortals(items, metrics.RankSize), nil
}

// TopPortals returns the portals ranked by their items with sentiment sentiment
func (s *DashboardService) TopPortals(ctx context.Context, req DashboardRequest, sentiment domain.Sentiment) ([]metrics.PortalSentiment, error) {
	items, _, err := s.items(ctx, req)
	if err != nil {
		return nil, err
	}
	return metrics.TopBySentiment(items, sentiment, metrics.RankSize), nil
}

// Overview loads the filtered items once and computes summary and rankings concurrently
func (s *DashboardService) Overview(ctx context.Context, req DashboardRequest) (Overview, error) {
	items, period, err := s.items(ctx, req)
	if err != nil {
		return Overview{}, err
	}

	res := Overview{PeriodStart: period.Start.ISO(), PeriodEnd: period.End.ISO()}
	var g errgroup.Group
	g.Go(func() error {
		res.Summary = metrics.Summarize(items)
		return nil
	})
	g.Go(func() error {
		res.Ranking = metrics.RankPortals(items, metrics.RankSize)
		return nil
	})
	g.Go(func() error {
		res.PositivePortals = metrics.TopBySentiment(items, domain.SentimentPositive, metrics.RankSize)
		return nil
	})
	g.Go(func() error {
		res.NegativePortals = metrics.TopBySentiment(items, domain.SentimentNegative, metrics.RankSize)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Overview{}, fmt.Errorf("compute dashboard: %w", err)
	}
	return res, nil
}

func (s *DashboardService) items(ctx context.Context, req DashboardRequest) ([]domain.NewsItem, domain.Interval, error) {
	from, to := req.From, req.To
	if req.LastWindow {
		from, to = domain.Date{}, domain.Date{}
	}
	period, err := domain.ResolvePeriod(from, to, s.windowDays, s.now())
	if err != nil {
		return nil, domain.Interval{}, err
	}
	filter := req.Filter
	filter.Period = period
	items, err := s.repos.News.Find(ctx, filter)
	if err != nil {
		return nil, domain.Interval{}, fmt.Errorf("load dashboard items: %w", err)
	}
	return items, period, nil
}
