package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/smimonitor/noticias/pkg/domain"
)

// WeekRepository handles strategic week reads, writes go through Tx
type WeekRepository struct {
	db *sqlx.DB
}

// weekSQL represents a strategic week for SQL operations
type weekSQL struct {
	ID          int64       `db:"id"`
	StartDate   domain.Date `db:"data_inicial"`
	EndDate     domain.Date `db:"data_final"`
	StartDay    int64       `db:"inicio_dia"`
	EndDay      int64       `db:"fim_dia"`
	Cycle       int         `db:"ciclo"`
	Category    string      `db:"categoria"`
	Subcategory string      `db:"subcategoria"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

const weekColumns = `id, data_inicial, data_final, inicio_dia, fim_dia, ciclo, categoria, subcategoria, created_at, updated_at`

// NewWeekRepository creates a new strategic week repository
func NewWeekRepository(database *sqlx.DB) *WeekRepository {
	return &WeekRepository{db: database}
}

// List returns all weeks ordered by start date, or only the ones covering day when it is set
func (r *WeekRepository) List(ctx context.Context, day domain.Date) ([]domain.StrategicWeek, error) {
	if day.IsZero() {
		return listWeeks(ctx, r.db)
	}
	var rows []weekSQL
	query := "SELECT " + weekColumns + " FROM semanas_estrategicas WHERE inicio_dia <= ? AND fim_dia >= ? " +
		"ORDER BY updated_at DESC, id DESC"
	if err := r.db.SelectContext(ctx, &rows, query, day.Days(), day.Days()); err != nil {
		return nil, fmt.Errorf("list weeks on %s: %w", day, err)
	}
	return toDomainWeeks(rows), nil
}

// Get retrieves a week by id
func (r *WeekRepository) Get(ctx context.Context, id int64) (domain.StrategicWeek, error) {
	return getWeek(ctx, r.db, id)
}

func listWeeks(ctx context.Context, q sqlx.QueryerContext) ([]domain.StrategicWeek, error) {
	var rows []weekSQL
	if err := sqlx.SelectContext(ctx, q, &rows, "SELECT "+weekColumns+" FROM semanas_estrategicas ORDER BY inicio_dia, id"); err != nil {
		return nil, fmt.Errorf("list weeks: %w", err)
	}
	return toDomainWeeks(rows), nil
}

func getWeek(ctx context.Context, q sqlx.QueryerContext, id int64) (domain.StrategicWeek, error) {
	var row weekSQL
	err := sqlx.GetContext(ctx, q, &row, "SELECT "+weekColumns+" FROM semanas_estrategicas WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.StrategicWeek{}, fmt.Errorf("strategic week %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.StrategicWeek{}, fmt.Errorf("get strategic week %d: %w", id, err)
	}
	return row.toDomain(), nil
}

func fromWeekInput(in domain.WeekInput) weekSQL {
	return weekSQL{
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		StartDay:    in.StartDate.Days(),
		EndDay:      in.EndDate.Days(),
		Cycle:       in.Cycle,
		Category:    in.Category,
		Subcategory: in.Subcategory,
	}
}

func (r weekSQL) toDomain() domain.StrategicWeek {
	return domain.StrategicWeek{
		ID:          r.ID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Cycle:       r.Cycle,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toDomainWeeks(rows []weekSQL) []domain.StrategicWeek {
	weeks := make([]domain.StrategicWeek, len(rows))
	for i, row := range rows {
		weeks[i] = row.toDomain()
	}
	return weeks
}
