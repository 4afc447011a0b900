package service

import (
	"context"
	"fmt"
	"log"

	"github.com/smimonitor/noticias/pkg/domain"
	"github.com/smimonitor/noticias/pkg/repository"
)

// WeekService manages strategic weeks
type WeekService struct {
	repos *repository.Repositories
}

// NewWeekService creates a strategic week service
func NewWeekService(repos *repository.Repositories) *WeekService {
	return &WeekService{repos: repos}
}

// List returns all weeks, or the weeks covering day when it is set
func (s *WeekService) List(ctx context.Context, day domain.Date) ([]domain.StrategicWeek, error) {
	return s.repos.Weeks.List(ctx, day)
}

// Get returns one week
func (s *WeekService) Get(ctx context.Context, id int64) (domain.StrategicWeek, error) {
	return s.repos.Weeks.Get(ctx, id)
}

// Create validates the input, rejects intervals overlapping an existing week and stores it
func (s *WeekService) Create(ctx context.Context, in domain.WeekInput) (domain.StrategicWeek, error) {
	if err := in.Validate(); err != nil {
		return domain.StrategicWeek{}, err
	}

	var created domain.StrategicWeek
	err := s.repos.InTransaction(ctx, func(tx *repository.Tx) error {
		weeks, err := tx.ListWeeks(ctx)
		if err != nil {
			return err
		}
		if err = domain.CheckWeekOverlap(in.Interval(), weeks, 0); err != nil {
			return err
		}
		id, err := tx.CreateWeek(ctx, in)
		if err != nil {
			return err
		}
		created, err = tx.GetWeek(ctx, id)
		return err
	})
	if err != nil {
		return domain.StrategicWeek{}, fmt.Errorf("create strategic week: %w", err)
	}
	log.Printf("[INFO] created strategic week %d, cycle %d, %s - %s", created.ID, created.Cycle,
		created.StartDate, created.EndDate)
	return created, nil
}

// Update replaces a week and, in the same transaction, stamps its category and subcategory
// on every item dated inside the new interval. Items outside it keep their labels.
func (s *WeekService) Update(ctx context.Context, id int64, in domain.WeekInput) (domain.StrategicWeek, error) {
	if err := in.Validate(); err != nil {
		return domain.StrategicWeek{}, err
	}

	var updated domain.StrategicWeek
	var resynced int64
	err := s.repos.InTransaction(ctx, func(tx *repository.Tx) error {
		if _, err := tx.GetWeek(ctx, id); err != nil {
			return err
		}
		weeks, err := tx.ListWeeks(ctx)
		if err != nil {
			return err
		}
		if err = domain.CheckWeekOverlap(in.Interval(), weeks, id); err != nil {
			return err
		}
		if err = tx.UpdateWeek(ctx, id, in); err != nil {
			return err
		}
		if resynced, err = tx.ResyncWeekItems(ctx, in.Interval(), in.Category, in.Subcategory); err != nil {
			return err
		}
		updated, err = tx.GetWeek(ctx, id)
		return err
	})
	if err != nil {
		return domain.StrategicWeek{}, fmt.Errorf("update strategic week %d: %w", id, err)
	}
	log.Printf("[INFO] updated strategic week %d, %d items resynced", id, resynced)
	return updated, nil
}
