package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/smimonitor/noticias/pkg/cursor"
	"github.com/smimonitor/noticias/pkg/domain"
)

// NewsRepository handles news item reads and standalone writes
type NewsRepository struct {
	db *sqlx.DB
}

// newsSQL represents a news item for SQL operations
type newsSQL struct {
	ID           int64          `db:"id"`
	Date         domain.Date    `db:"data"`
	Day          int64          `db:"data_dia"`
	Portal       string         `db:"portal"`
	Title        string         `db:"titulo"`
	Link         string         `db:"link"`
	Body         sql.NullString `db:"corpo"`
	BaseScore    int            `db:"pontos"`
	DerivedScore int            `db:"pontos_new"`
	Theme        sql.NullString `db:"tema"`
	Sentiment    sql.NullString `db:"avaliacao"`
	Relevance    sql.NullString `db:"relevancia"`
	Strategic    bool           `db:"estrategica"`
	Category     sql.NullString `db:"categoria"`
	Subcategory  sql.NullString `db:"subcategoria"`
	Reach        sql.NullString `db:"abrangencia"`
	TitleSearch  string         `db:"titulo_busca"`
	PortalSearch string         `db:"portal_busca"`
	ThemeSearch  string         `db:"tema_busca"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

const newsColumns = `id, data, data_dia, portal, titulo, link, corpo, pontos, pontos_new, tema, avaliacao,
	relevancia, estrategica, categoria, subcategoria, abrangencia, created_at, updated_at`

// NewNewsRepository creates a new news repository
func NewNewsRepository(database *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: database}
}

// Create inserts a news item, retrying while the database is locked
func (r *NewsRepository) Create(ctx context.Context, item *domain.NewsItem) error {
	return RetryOnLock(ctx, func() error {
		return createNews(ctx, r.db, item)
	})
}

// Get retrieves a news item by id
func (r *NewsRepository) Get(ctx context.Context, id int64) (domain.NewsItem, error) {
	return getNews(ctx, r.db, id)
}

// List returns up to limit items matching f after the cursor, newest first
func (r *NewsRepository) List(ctx context.Context, f domain.NewsFilter, after *cursor.Cursor, limit int) ([]domain.NewsItem, error) {
	where, args := newsWhere(f)
	if after != nil {
		day := after.Date.Days()
		where = appendCond(where, "(data_dia < ? OR (data_dia = ? AND id < ?))")
		args = append(args, day, day, after.ID)
	}
	query := "SELECT " + newsColumns + " FROM noticias" + where + " ORDER BY data_dia DESC, id DESC LIMIT ?"
	args = append(args, limit)

	var rows []newsSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return toDomainNews(rows), nil
}

// Count returns the number of items matching f
func (r *NewsRepository) Count(ctx context.Context, f domain.NewsFilter) (int, error) {
	where, args := newsWhere(f)
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM noticias"+where, args...); err != nil {
		return 0, fmt.Errorf("count news: %w", err)
	}
	return count, nil
}

// Find returns every item matching f, oldest first
func (r *NewsRepository) Find(ctx context.Context, f domain.NewsFilter) ([]domain.NewsItem, error) {
	where, args := newsWhere(f)
	query := "SELECT " + newsColumns + " FROM noticias" + where + " ORDER BY data_dia, id"
	var rows []newsSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find news: %w", err)
	}
	return toDomainNews(rows), nil
}

// StrategicDates returns the distinct dates having strategic items, newest first
func (r *NewsRepository) StrategicDates(ctx context.Context) ([]domain.Date, error) {
	var dates []domain.Date
	err := r.db.SelectContext(ctx, &dates,
		"SELECT data FROM noticias WHERE estrategica = 1 GROUP BY data_dia, data ORDER BY data_dia DESC")
	if err != nil {
		return nil, fmt.Errorf("get strategic dates: %w", err)
	}
	return dates, nil
}

func createNews(ctx context.Context, ext sqlx.ExtContext, item *domain.NewsItem) error {
	row := fromDomainNews(*item)
	query := `
		INSERT INTO noticias (
			data, data_dia, portal, titulo, link, corpo, pontos, pontos_new, tema, avaliacao,
			relevancia, estrategica, categoria, subcategoria, abrangencia,
			titulo_busca, portal_busca, tema_busca
		) VALUES (
			:data, :data_dia, :portal, :titulo, :link, :corpo, :pontos, :pontos_new, :tema, :avaliacao,
			:relevancia, :estrategica, :categoria, :subcategoria, :abrangencia,
			:titulo_busca, :portal_busca, :tema_busca
		)
	`
	result, err := sqlx.NamedExecContext(ctx, ext, query, row)
	if err != nil {
		return fmt.Errorf("create news: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	item.ID = id
	return nil
}

func getNews(ctx context.Context, q sqlx.QueryerContext, id int64) (domain.NewsItem, error) {
	var row newsSQL
	err := sqlx.GetContext(ctx, q, &row, "SELECT "+newsColumns+" FROM noticias WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewsItem{}, fmt.Errorf("news %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.NewsItem{}, fmt.Errorf("get news %d: %w", id, err)
	}
	return row.toDomain(), nil
}

// newsWhere builds the WHERE clause shared by listing, counting and metrics
func newsWhere(f domain.NewsFilter) (where string, args []any) {
	if !f.Period.Start.IsZero() {
		where = appendCond(where, "data_dia >= ?")
		args = append(args, f.Period.Start.Days())
	}
	if !f.Period.End.IsZero() {
		where = appendCond(where, "data_dia <= ?")
		args = append(args, f.Period.End.Days())
	}

	switch f.Relevance {
	case domain.RelevanceDefault:
		where = appendCond(where, "(relevancia IS NULL OR relevancia = ?)")
		args = append(args, string(domain.RelevanceUseful))
	case domain.RelevanceNull:
		where = appendCond(where, "relevancia IS NULL")
	case domain.RelevanceUtil:
		where = appendCond(where, "relevancia = ?")
		args = append(args, string(domain.RelevanceUseful))
	case domain.RelevanceLixo:
		where = appendCond(where, "relevancia = ?")
		args = append(args, string(domain.RelevanceTrash))
	case domain.RelevanceSuporte:
		where = appendCond(where, "relevancia = ?")
		args = append(args, string(domain.RelevanceSupport))
	case domain.RelevanceAll:
	}

	if f.Strategic != nil {
		where = appendCond(where, "estrategica = ?")
		args = append(args, *f.Strategic)
	}
	if f.Theme != "" {
		where = appendCond(where, "tema_busca = ?")
		args = append(args, searchKey(f.Theme))
	}
	if f.Portal != "" {
		where = appendCond(where, "portal_busca = ?")
		args = append(args, searchKey(f.Portal))
	}
	if f.Title != "" {
		where = appendCond(where, `titulo_busca LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(searchKey(f.Title))+"%")
	}
	if f.Sentiment != nil {
		if *f.Sentiment == domain.SentimentNone {
			where = appendCond(where, "avaliacao IS NULL")
		} else {
			where = appendCond(where, "avaliacao = ?")
			args = append(args, string(*f.Sentiment))
		}
	}
	return where, args
}

func appendCond(where, cond string) string {
	if where == "" {
		return " WHERE " + cond
	}
	return where + " AND " + cond
}

// searchKey is the lower-cased form kept in *_busca columns, SQLite's lower() only folds ASCII
func searchKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func fromDomainNews(item domain.NewsItem) newsSQL {
	row := newsSQL{
		ID:           item.ID,
		Date:         item.Date,
		Day:          item.Date.Days(),
		Portal:       item.Portal,
		Title:        item.Title,
		Link:         item.Link,
		Body:         nullString(item.Body),
		BaseScore:    item.BaseScore,
		DerivedScore: item.DerivedScore,
		Theme:        nullString(item.Theme),
		Strategic:    item.Strategic,
		Category:     nullString(item.Category),
		Subcategory:  nullString(item.Subcategory),
		Reach:        nullString(item.Reach),
		TitleSearch:  searchKey(item.Title),
		PortalSearch: searchKey(item.Portal),
	}
	if item.Theme != nil {
		row.ThemeSearch = searchKey(*item.Theme)
	}
	if item.Sentiment != domain.SentimentNone {
		row.Sentiment = sql.NullString{String: string(item.Sentiment), Valid: true}
	}
	if item.Relevance != domain.RelevanceUnset {
		row.Relevance = sql.NullString{String: string(item.Relevance), Valid: true}
	}
	return row
}

func (r newsSQL) toDomain() domain.NewsItem {
	return domain.NewsItem{
		ID:           r.ID,
		Date:         r.Date,
		Portal:       r.Portal,
		Title:        r.Title,
		Link:         r.Link,
		Body:         stringPtr(r.Body),
		BaseScore:    r.BaseScore,
		DerivedScore: r.DerivedScore,
		Theme:        stringPtr(r.Theme),
		Sentiment:    domain.Sentiment(r.Sentiment.String),
		Relevance:    domain.Relevance(r.Relevance.String),
		Strategic:    r.Strategic,
		Category:     stringPtr(r.Category),
		Subcategory:  stringPtr(r.Subcategory),
		Reach:        stringPtr(r.Reach),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toDomainNews(rows []newsSQL) []domain.NewsItem {
	items := make([]domain.NewsItem, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items
}
