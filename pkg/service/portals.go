package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/smimonitor/noticias/pkg/domain"
	"github.com/smimonitor/noticias/pkg/repository"
)

// PortalService manages news portals
type PortalService struct {
	repos *repository.Repositories
}

// NewPortalService creates a portal service
func NewPortalService(repos *repository.Repositories) *PortalService {
	return &PortalService{repos: repos}
}

// GetByName finds a portal by its trimmed name
func (s *PortalService) GetByName(ctx context.Context, name string) (domain.Portal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Portal{}, fmt.Errorf("%w: portal name can't be empty", domain.ErrInvalidArgument)
	}
	return s.repos.Portals.GetByName(ctx, name)
}

// Create validates and stores a new portal
func (s *PortalService) Create(ctx context.Context, p domain.Portal) (domain.Portal, error) {
	if err := p.Validate(); err != nil {
		return domain.Portal{}, err
	}
	p.ID = 0
	if err := s.repos.Portals.Create(ctx, &p); err != nil {
		return domain.Portal{}, err
	}
	return p, nil
}

// Update replaces all fields of the portal with the given id
func (s *PortalService) Update(ctx context.Context, id int64, p domain.Portal) (domain.Portal, error) {
	if err := p.Validate(); err != nil {
		return domain.Portal{}, err
	}
	p.ID = id
	if err := s.repos.Portals.Update(ctx, p); err != nil {
		return domain.Portal{}, err
	}
	return s.repos.Portals.Get(ctx, id)
}
