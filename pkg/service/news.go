package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/smimonitor/noticias/pkg/cursor"
	"github.com/smimonitor/noticias/pkg/domain"
	"github.com/smimonitor/noticias/pkg/repository"
)

// NewsOptions controls listing defaults
type NewsOptions struct {
	WindowDays   int // default date range length when bounds are missing
	DefaultLimit int
	MaxLimit     int
}

// NewsService lists and annotates news items
type NewsService struct {
	repos *repository.Repositories
	opts  NewsOptions
	now   func() time.Time
}

// ListRequest holds the raw listing inputs, zero dates mean the bound was not given
type ListRequest struct {
	From   domain.Date
	To     domain.Date
	Filter domain.NewsFilter // Period is filled from From and To
	After  string            // cursor token, empty for the first page
	Limit  *int              // nil means the default limit
}

// ListResult is one page of items
type ListResult struct {
	Items      []domain.NewsItem `json:"data"`
	NextCursor *string           `json:"nextCursor"`
	Total      int               `json:"total"`
}

// NewNewsService creates a news service, zero options get defaults
func NewNewsService(repos *repository.Repositories, opts NewsOptions) *NewsService {
	if opts.WindowDays <= 0 {
		opts.WindowDays = 30
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 100
	}
	if opts.DefaultLimit <= 0 || opts.DefaultLimit > opts.MaxLimit {
		opts.DefaultLimit = min(50, opts.MaxLimit)
	}
	return &NewsService{repos: repos, opts: opts, now: time.Now}
}

// List returns a page of items matching the request, newest first, with the total of all matches
func (s *NewsService) List(ctx context.Context, req ListRequest) (ListResult, error) {
	limit := s.opts.DefaultLimit
	if req.Limit != nil {
		if *req.Limit <= 0 {
			return ListResult{}, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidArgument)
		}
		limit = min(*req.Limit, s.opts.MaxLimit)
	}

	period, err := domain.ResolvePeriod(req.From, req.To, s.opts.WindowDays, s.now())
	if err != nil {
		return ListResult{}, err
	}
	filter := req.Filter
	filter.Period = period

	var after *cursor.Cursor
	if req.After != "" {
		c, err := cursor.Decode(req.After)
		if err != nil {
			return ListResult{}, err
		}
		after = &c
	}

	items, err := s.repos.News.List(ctx, filter, after, limit)
	if err != nil {
		return ListResult{}, fmt.Errorf("list news: %w", err)
	}
	total, err := s.repos.News.Count(ctx, filter)
	if err != nil {
		return ListResult{}, fmt.Errorf("count news: %w", err)
	}
	return ListResult{Items: items, NextCursor: cursor.Next(items, limit), Total: total}, nil
}

// Get returns a single item
func (s *NewsService) Get(ctx context.Context, id int64) (domain.NewsItem, error) {
	return s.repos.News.Get(ctx, id)
}

// StrategicDates returns the dates having strategic items, newest first
func (s *NewsService) StrategicDates(ctx context.Context) ([]domain.Date, error) {
	return s.repos.News.StrategicDates(ctx)
}

// Update applies the patch to an item and returns the stored result. All writes happen in one
// transaction: the patched fields, the category taken from the covering strategic week when the
// item becomes strategic without an explicit category, the category reset when it stops being
// strategic and the derived score when the sentiment is part of the patch.
func (s *NewsService) Update(ctx context.Context, id int64, patch domain.NewsPatch) (domain.NewsItem, error) {
	if err := patch.Validate(); err != nil {
		return domain.NewsItem{}, err
	}

	var updated domain.NewsItem
	err := s.repos.InTransaction(ctx, func(tx *repository.Tx) error {
		item, err := tx.GetNews(ctx, id)
		if err != nil {
			return err
		}

		if err = tx.ApplyNewsPatch(ctx, id, patch); err != nil {
			return fmt.Errorf("apply patch: %w", err)
		}

		switch {
		case patch.Strategic.Valid && patch.Strategic.V && !patch.ExplicitCategory():
			week, err := tx.FindCoveringWeek(ctx, item.Date)
			if err != nil {
				return fmt.Errorf("find strategic week: %w", err)
			}
			var category, subcategory *string
			if week != nil {
				category, subcategory = &week.Category, &week.Subcategory
			}
			if err = tx.SetNewsCategory(ctx, id, category, subcategory); err != nil {
				return fmt.Errorf("assign strategic week: %w", err)
			}
		case patch.Strategic.Valid && !patch.Strategic.V:
			if err = tx.SetNewsCategory(ctx, id, nil, nil); err != nil {
				return fmt.Errorf("clear category: %w", err)
			}
		}

		if patch.Sentiment.Set {
			score := domain.DeriveScore(item.BaseScore, patch.Sentiment.V)
			if err = tx.SetDerivedScore(ctx, id, score); err != nil {
				return fmt.Errorf("set derived score: %w", err)
			}
		}

		if updated, err = tx.GetNews(ctx, id); err != nil {
			return fmt.Errorf("reload: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.NewsItem{}, fmt.Errorf("update news %d: %w", id, err)
	}
	log.Printf("[DEBUG] updated news %d, strategic=%v, score=%d", id, updated.Strategic, updated.DerivedScore)
	return updated, nil
}
