package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// MinCycle is the lowest accepted strategic week cycle number
const MinCycle = 20

// maxLabelLen limits category and subcategory labels
const maxLabelLen = 250

// WeekCategories lists the accepted strategic week categories
var WeekCategories = []string{"Educação", "Gestão", "Infraestrutura", "Saúde"}

// StrategicWeek is an admin-defined inclusive date interval tagging a category and subcategory
type StrategicWeek struct {
	ID          int64     `json:"id"`
	StartDate   Date      `json:"data_inicial"`
	EndDate     Date      `json:"data_final"`
	Cycle       int       `json:"ciclo"`
	Category    string    `json:"categoria"`
	Subcategory string    `json:"subcategoria"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Interval returns the week's date range
func (w StrategicWeek) Interval() Interval {
	return Interval{Start: w.StartDate, End: w.EndDate}
}

// WeekInput is the create/update payload of a strategic week
type WeekInput struct {
	StartDate   Date   `json:"data_inicial"`
	EndDate     Date   `json:"data_final"`
	Cycle       int    `json:"ciclo"`
	Category    string `json:"categoria"`
	Subcategory string `json:"subcategoria"`
}

// Validate checks dates, cycle, category and subcategory of the input
func (in WeekInput) Validate() error {
	if err := in.Interval().Validate(); err != nil {
		return err
	}
	if in.Cycle < MinCycle {
		return fmt.Errorf("%w: ciclo must be at least %d", ErrInvalidArgument, MinCycle)
	}
	if !isWeekCategory(in.Category) {
		return fmt.Errorf("%w: categoria must be one of %v", ErrInvalidArgument, WeekCategories)
	}
	if in.Subcategory == "" {
		return fmt.Errorf("%w: subcategoria is required", ErrInvalidArgument)
	}
	if utf8.RuneCountInString(in.Subcategory) > maxLabelLen {
		return fmt.Errorf("%w: subcategoria is longer than %d characters", ErrInvalidArgument, maxLabelLen)
	}
	return nil
}

// Interval returns the input's date range
func (in WeekInput) Interval() Interval {
	return Interval{Start: in.StartDate, End: in.EndDate}
}

func isWeekCategory(c string) bool {
	for _, wc := range WeekCategories {
		if wc == c {
			return true
		}
	}
	return false
}
