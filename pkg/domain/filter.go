package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// RelevanceFilter selects items by relevance mark
type RelevanceFilter string

// relevance filter values accepted in query strings
const (
	RelevanceDefault RelevanceFilter = ""        // unset or Util
	RelevanceAll     RelevanceFilter = "todas"   // no restriction
	RelevanceNull    RelevanceFilter = "nula"    // unset only
	RelevanceUtil    RelevanceFilter = "util"    // Util only
	RelevanceLixo    RelevanceFilter = "lixo"    // Lixo only
	RelevanceSuporte RelevanceFilter = "suporte" // Suporte only
)

// ParseRelevanceFilter parses a relevance query value, case and the accent of "útil" are ignored
func ParseRelevanceFilter(s string) (RelevanceFilter, error) {
	switch v := RelevanceFilter(foldAccents(s)); v {
	case RelevanceDefault, RelevanceAll, RelevanceNull, RelevanceUtil, RelevanceLixo, RelevanceSuporte:
		return v, nil
	}
	return "", fmt.Errorf("%w: relevancia filter must be util, lixo, suporte, nula or todas, got %q", ErrInvalidArgument, s)
}

// NewsFilter is the set of restrictions shared by listing and metrics
type NewsFilter struct {
	Period    Interval
	Relevance RelevanceFilter
	Strategic *bool
	Theme     string     // case-insensitive exact match
	Title     string     // case-insensitive substring
	Portal    string     // case-insensitive exact match
	Sentiment *Sentiment // pointer to SentimentNone selects items without sentiment
}

// ResolvePeriod fills missing bounds of a date range. With no bounds the range is the last
// window days up to today, with only from it runs until today, with only to it starts window
// days before to. A from after to is rejected.
func ResolvePeriod(from, to Date, window int, now time.Time) (Interval, error) {
	today := DateOf(now)
	switch {
	case from.IsZero() && to.IsZero():
		to, from = today, today.AddDays(-window)
	case to.IsZero():
		to = today
	case from.IsZero():
		from = to.AddDays(-window)
	}
	iv := Interval{Start: from, End: to}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// intake field limits
const (
	maxTitleLen = 255
	maxBodyLen  = 49000
	maxLinkLen  = 2048
)

// NewsInput is a manually posted news item, base score and reach come from its portal
type NewsInput struct {
	Date      Date      `json:"data"`
	Title     string    `json:"titulo"`
	Body      string    `json:"corpo"`
	Link      string    `json:"link"`
	Portal    string    `json:"portal"`
	Theme     string    `json:"tema"`
	Sentiment Sentiment `json:"avaliacao"`
	Strategic string    `json:"estrategica"` // "Sim" or "Não"
}

// Validate checks required fields and their limits
func (in NewsInput) Validate() error {
	if in.Date.IsZero() {
		return fmt.Errorf("%w: data is required in DD/MM/YYYY format", ErrInvalidArgument)
	}
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: titulo is required", ErrInvalidArgument)
	}
	if utf8.RuneCountInString(in.Title) > maxTitleLen {
		return fmt.Errorf("%w: titulo is longer than %d characters", ErrInvalidArgument, maxTitleLen)
	}
	if utf8.RuneCountInString(in.Body) > maxBodyLen {
		return fmt.Errorf("%w: corpo is longer than %d characters", ErrInvalidArgument, maxBodyLen)
	}
	if utf8.RuneCountInString(in.Link) > maxLinkLen {
		return fmt.Errorf("%w: link is longer than %d characters", ErrInvalidArgument, maxLinkLen)
	}
	if strings.TrimSpace(in.Portal) == "" {
		return fmt.Errorf("%w: portal is required", ErrInvalidArgument)
	}
	if !IsValidTheme(in.Theme) {
		return fmt.Errorf("%w: tema must be one of %v", ErrInvalidArgument, Themes)
	}
	if in.Sentiment == SentimentNone {
		return fmt.Errorf("%w: avaliacao is required", ErrInvalidArgument)
	}
	if _, err := in.IsStrategic(); err != nil {
		return err
	}
	return nil
}

// IsStrategic converts the "Sim"/"Não" flag
func (in NewsInput) IsStrategic() (bool, error) {
	switch in.Strategic {
	case "Sim":
		return true, nil
	case "Não", "Nao":
		return false, nil
	}
	return false, fmt.Errorf("%w: estrategica must be \"Sim\" or \"Não\"", ErrInvalidArgument)
}
