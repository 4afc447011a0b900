package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/smimonitor/noticias/pkg/domain"
)

// PortalRepository handles portal operations
type PortalRepository struct {
	db *sqlx.DB
}

// portalSQL represents a portal for SQL operations
type portalSQL struct {
	ID        int64          `db:"id"`
	Name      string         `db:"nome"`
	BaseScore int            `db:"pontos"`
	Reach     string         `db:"abrangencia"`
	Priority  string         `db:"prioridade"`
	URL       sql.NullString `db:"url"`
}

// NewPortalRepository creates a new portal repository
func NewPortalRepository(database *sqlx.DB) *PortalRepository {
	return &PortalRepository{db: database}
}

// GetByName retrieves a portal by its exact name
func (r *PortalRepository) GetByName(ctx context.Context, name string) (domain.Portal, error) {
	var row portalSQL
	err := r.db.GetContext(ctx, &row, "SELECT id, nome, pontos, abrangencia, prioridade, url FROM portais WHERE nome = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Portal{}, fmt.Errorf("portal %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Portal{}, fmt.Errorf("get portal %q: %w", name, err)
	}
	return row.toDomain(), nil
}

// Get retrieves a portal by id
func (r *PortalRepository) Get(ctx context.Context, id int64) (domain.Portal, error) {
	var row portalSQL
	err := r.db.GetContext(ctx, &row, "SELECT id, nome, pontos, abrangencia, prioridade, url FROM portais WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Portal{}, fmt.Errorf("portal %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Portal{}, fmt.Errorf("get portal %d: %w", id, err)
	}
	return row.toDomain(), nil
}

// Create inserts a portal, a taken name is reported as invalid argument
func (r *PortalRepository) Create(ctx context.Context, p *domain.Portal) error {
	query := `
		INSERT INTO portais (nome, pontos, abrangencia, prioridade, url)
		VALUES (:nome, :pontos, :abrangencia, :prioridade, :url)
	`
	result, err := r.db.NamedExecContext(ctx, query, fromDomainPortal(*p))
	if err != nil {
		if isUniqueError(err) {
			return fmt.Errorf("%w: portal %q already exists", domain.ErrInvalidArgument, p.Name)
		}
		return fmt.Errorf("create portal: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	p.ID = id
	return nil
}

// Update overwrites all fields of the portal with p.ID
func (r *PortalRepository) Update(ctx context.Context, p domain.Portal) error {
	query := `
		UPDATE portais SET nome = :nome, pontos = :pontos, abrangencia = :abrangencia,
		    prioridade = :prioridade, url = :url
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, fromDomainPortal(p))
	if err != nil {
		if isUniqueError(err) {
			return fmt.Errorf("%w: portal %q already exists", domain.ErrInvalidArgument, p.Name)
		}
		return fmt.Errorf("update portal %d: %w", p.ID, err)
	}
	return checkAffected(result, fmt.Sprintf("portal %d", p.ID))
}

func fromDomainPortal(p domain.Portal) portalSQL {
	return portalSQL{
		ID:        p.ID,
		Name:      p.Name,
		BaseScore: p.BaseScore,
		Reach:     string(p.Reach),
		Priority:  string(p.Priority),
		URL:       nullString(p.URL),
	}
}

func (r portalSQL) toDomain() domain.Portal {
	return domain.Portal{
		ID:        r.ID,
		Name:      r.Name,
		BaseScore: r.BaseScore,
		Reach:     domain.Reach(r.Reach),
		Priority:  domain.Priority(r.Priority),
		URL:       stringPtr(r.URL),
	}
}
