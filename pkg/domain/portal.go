package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Reach is the audience scope of a portal ("abrangência")
type Reach string

// reach values
const (
	ReachRegional Reach = "Regional"
	ReachLocal    Reach = "Local"
	ReachNational Reach = "Nacional"
)

// Priority is the monitoring priority of a portal
type Priority string

// priority values
const (
	PriorityLow    Priority = "Baixa"
	PriorityMedium Priority = "Media"
	PriorityHigh   Priority = "Alta"
)

const maxPortalNameLen = 255

// Portal is a news source, used to prefill base score and reach of new items
type Portal struct {
	ID        int64    `json:"id"`
	Name      string   `json:"nome"`
	BaseScore int      `json:"pontos"`
	Reach     Reach    `json:"abrangencia"`
	Priority  Priority `json:"prioridade"`
	URL       *string  `json:"url"`
}

// Validate checks the portal fields, the name is trimmed in place
func (p *Portal) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("%w: nome is required", ErrInvalidArgument)
	}
	if utf8.RuneCountInString(p.Name) > maxPortalNameLen {
		return fmt.Errorf("%w: nome is longer than %d characters", ErrInvalidArgument, maxPortalNameLen)
	}
	if p.BaseScore < 0 {
		return fmt.Errorf("%w: pontos must not be negative", ErrInvalidArgument)
	}
	switch p.Reach {
	case ReachRegional, ReachLocal, ReachNational:
	default:
		return fmt.Errorf("%w: abrangencia must be Regional, Local or Nacional", ErrInvalidArgument)
	}
	switch p.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return fmt.Errorf("%w: prioridade must be Baixa, Media or Alta", ErrInvalidArgument)
	}
	if p.URL != nil && strings.TrimSpace(*p.URL) == "" {
		p.URL = nil
	}
	return nil
}
