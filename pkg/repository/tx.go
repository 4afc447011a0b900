package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/smimonitor/noticias/pkg/domain"
)

// Tx groups the writes that must commit together, obtained from Repositories.InTransaction
type Tx struct {
	tx *sqlx.Tx
}

// GetNews retrieves a news item inside the transaction
func (t *Tx) GetNews(ctx context.Context, id int64) (domain.NewsItem, error) {
	return getNews(ctx, t.tx, id)
}

// CreateNews inserts a news item
func (t *Tx) CreateNews(ctx context.Context, item *domain.NewsItem) error {
	return createNews(ctx, t.tx, item)
}

// ApplyNewsPatch writes the fields present in p. Only whitelisted columns are ever
// named in the statement, values always travel as arguments.
func (t *Tx) ApplyNewsPatch(ctx context.Context, id int64, p domain.NewsPatch) error {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if p.Relevance.Set {
		set("relevancia", nullIfEmpty(string(p.Relevance.V)))
	}
	if p.Theme.Set {
		set("tema", nullString(p.Theme.Ptr()))
		key := ""
		if p.Theme.Valid {
			key = searchKey(p.Theme.V)
		}
		set("tema_busca", key)
	}
	if p.Sentiment.Set {
		set("avaliacao", nullIfEmpty(string(p.Sentiment.V)))
	}
	if p.Strategic.Set {
		set("estrategica", p.Strategic.V)
	}
	if p.Category.Set {
		set("categoria", nullString(p.Category.Ptr()))
	}
	if p.Subcategory.Set {
		set("subcategoria", nullString(p.Subcategory.Ptr()))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE noticias SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	return execOne(ctx, t.tx, fmt.Sprintf("news %d", id), query, args...)
}

// SetNewsCategory overwrites category and subcategory of an item, nil clears them
func (t *Tx) SetNewsCategory(ctx context.Context, id int64, category, subcategory *string) error {
	return execOne(ctx, t.tx, fmt.Sprintf("news %d", id),
		"UPDATE noticias SET categoria = ?, subcategoria = ? WHERE id = ?",
		nullString(category), nullString(subcategory), id)
}

// SetDerivedScore stores the signed score of an item
func (t *Tx) SetDerivedScore(ctx context.Context, id int64, score int) error {
	return execOne(ctx, t.tx, fmt.Sprintf("news %d", id),
		"UPDATE noticias SET pontos_new = ? WHERE id = ?", score, id)
}

// FindCoveringWeek returns the week whose interval contains d, nil when there is none.
// If several weeks cover d the most recently updated one wins, then the highest id.
func (t *Tx) FindCoveringWeek(ctx context.Context, d domain.Date) (*domain.StrategicWeek, error) {
	var row weekSQL
	query := "SELECT " + weekColumns + " FROM semanas_estrategicas WHERE inicio_dia <= ? AND fim_dia >= ? " +
		"ORDER BY updated_at DESC, id DESC LIMIT 1"
	err := t.tx.GetContext(ctx, &row, query, d.Days(), d.Days())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find week covering %s: %w", d, err)
	}
	w := row.toDomain()
	return &w, nil
}

// ListWeeks returns all weeks, used for overlap checks
func (t *Tx) ListWeeks(ctx context.Context) ([]domain.StrategicWeek, error) {
	return listWeeks(ctx, t.tx)
}

// GetWeek retrieves a week inside the transaction
func (t *Tx) GetWeek(ctx context.Context, id int64) (domain.StrategicWeek, error) {
	return getWeek(ctx, t.tx, id)
}

// CreateWeek inserts a week and returns its id
func (t *Tx) CreateWeek(ctx context.Context, in domain.WeekInput) (int64, error) {
	query := `
		INSERT INTO semanas_estrategicas (data_inicial, data_final, inicio_dia, fim_dia, ciclo, categoria, subcategoria)
		VALUES (:data_inicial, :data_final, :inicio_dia, :fim_dia, :ciclo, :categoria, :subcategoria)
	`
	result, err := t.tx.NamedExecContext(ctx, query, fromWeekInput(in))
	if err != nil {
		return 0, fmt.Errorf("create strategic week: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get insert id: %w", err)
	}
	return id, nil
}

// UpdateWeek overwrites all fields of a week
func (t *Tx) UpdateWeek(ctx context.Context, id int64, in domain.WeekInput) error {
	row := fromWeekInput(in)
	row.ID = id
	query := `
		UPDATE semanas_estrategicas
		SET data_inicial = :data_inicial, data_final = :data_final, inicio_dia = :inicio_dia, fim_dia = :fim_dia,
		    ciclo = :ciclo, categoria = :categoria, subcategoria = :subcategoria
		WHERE id = :id
	`
	result, err := t.tx.NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("update strategic week %d: %w", id, err)
	}
	return checkAffected(result, fmt.Sprintf("strategic week %d", id))
}

// ResyncWeekItems overwrites category and subcategory of every item dated inside iv.
// Items outside iv are not touched.
func (t *Tx) ResyncWeekItems(ctx context.Context, iv domain.Interval, category, subcategory string) (int64, error) {
	result, err := t.tx.ExecContext(ctx,
		"UPDATE noticias SET categoria = ?, subcategoria = ? WHERE data_dia >= ? AND data_dia <= ?",
		category, subcategory, iv.Start.Days(), iv.End.Days())
	if err != nil {
		return 0, fmt.Errorf("resync items %s - %s: %w", iv.Start, iv.End, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get affected rows: %w", err)
	}
	return n, nil
}

func execOne(ctx context.Context, ext sqlx.ExecerContext, what, query string, args ...any) error {
	result, err := ext.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", what, err)
	}
	return checkAffected(result, what)
}

func checkAffected(result sql.Result, what string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
