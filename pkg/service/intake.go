package service

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/smimonitor/noticias/pkg/domain"
	"github.com/smimonitor/noticias/pkg/repository"
)

// IntakeService creates news items posted by staff, prefilled from their portal
type IntakeService struct {
	repos      *repository.Repositories
	bodyPolicy *bluemonday.Policy
	textPolicy *bluemonday.Policy
}

// NewIntakeService creates an intake service
func NewIntakeService(repos *repository.Repositories) *IntakeService {
	return &IntakeService{
		repos:      repos,
		bodyPolicy: bluemonday.UGCPolicy(),
		textPolicy: bluemonday.StrictPolicy(),
	}
}

// Create stores a posted item. Base score and reach come from the portal, the derived score
// follows the sentiment and strategic items get the category of the covering week.
func (s *IntakeService) Create(ctx context.Context, in domain.NewsInput) (domain.NewsItem, error) {
	in.Title = s.plainText(in.Title)
	in.Portal = strings.TrimSpace(in.Portal)
	in.Link = strings.TrimSpace(in.Link)
	in.Body = strings.TrimSpace(s.bodyPolicy.Sanitize(in.Body))
	if err := in.Validate(); err != nil {
		return domain.NewsItem{}, err
	}
	strategic, _ := in.IsStrategic()

	portal, err := s.repos.Portals.GetByName(ctx, in.Portal)
	if err != nil {
		return domain.NewsItem{}, fmt.Errorf("portal for new item: %w", err)
	}

	theme, body, reach := in.Theme, in.Body, string(portal.Reach)
	item := domain.NewsItem{
		Date:         in.Date,
		Portal:       portal.Name,
		Title:        in.Title,
		Link:         in.Link,
		Body:         &body,
		BaseScore:    portal.BaseScore,
		DerivedScore: domain.DeriveScore(portal.BaseScore, in.Sentiment),
		Theme:        &theme,
		Sentiment:    in.Sentiment,
		Strategic:    strategic,
		Reach:        &reach,
	}

	err = repository.RetryOnLock(ctx, func() error {
		return s.repos.InTransaction(ctx, func(tx *repository.Tx) error {
			item.Category, item.Subcategory = nil, nil
			if strategic {
				week, err := tx.FindCoveringWeek(ctx, item.Date)
				if err != nil {
					return err
				}
				if week != nil {
					item.Category, item.Subcategory = &week.Category, &week.Subcategory
				}
			}
			return tx.CreateNews(ctx, &item)
		})
	})
	if err != nil {
		return domain.NewsItem{}, fmt.Errorf("create posted news: %w", err)
	}
	log.Printf("[INFO] posted news %d from %s, %s", item.ID, item.Portal, item.Date)
	return s.repos.News.Get(ctx, item.ID)
}

// plainText strips all markup and decodes entities left by the sanitizer
func (s *IntakeService) plainText(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.textPolicy.Sanitize(v)))
}
