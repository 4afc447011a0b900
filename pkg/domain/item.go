package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// NewsItem represents a monitored news article ("notícia")
type NewsItem struct {
	ID           int64     `json:"id"`
	Date         Date      `json:"data"`
	Portal       string    `json:"portal"`
	Title        string    `json:"titulo"`
	Link         string    `json:"link"`
	Body         *string   `json:"corpo,omitempty"`
	BaseScore    int       `json:"pontos"`
	DerivedScore int       `json:"pontos_new"`
	Theme        *string   `json:"tema"`
	Sentiment    Sentiment `json:"avaliacao"`
	Relevance    Relevance `json:"relevancia"`
	Strategic    bool      `json:"estrategica"`
	Category     *string   `json:"categoria"`
	Subcategory  *string   `json:"subcategoria"`
	Reach        *string   `json:"abrangencia,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// Sentiment is the staff evaluation of an item ("avaliação"), empty means not evaluated
type Sentiment string

// sentiment values as stored
const (
	SentimentNone     Sentiment = ""
	SentimentPositive Sentiment = "Positiva"
	SentimentNegative Sentiment = "Negativa"
	SentimentNeutral  Sentiment = "Neutra"
)

// ParseSentiment accepts the stored values case-insensitively, empty string means no sentiment
func ParseSentiment(s string) (Sentiment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return SentimentNone, nil
	case "positiva":
		return SentimentPositive, nil
	case "negativa":
		return SentimentNegative, nil
	case "neutra":
		return SentimentNeutral, nil
	}
	return SentimentNone, fmt.Errorf("%w: avaliacao must be Positiva, Negativa, Neutra or empty, got %q", ErrInvalidArgument, s)
}

// MarshalJSON renders no sentiment as null
func (s Sentiment) MarshalJSON() ([]byte, error) {
	if s == SentimentNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON accepts a sentiment string, empty string or null
func (s *Sentiment) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = SentimentNone
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: avaliacao must be a string", ErrInvalidArgument)
	}
	parsed, err := ParseSentiment(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Relevance is the tri-state usefulness mark ("relevância"), empty means unset
type Relevance string

// relevance values as stored
const (
	RelevanceUnset   Relevance = ""
	RelevanceUseful  Relevance = "Util"
	RelevanceTrash   Relevance = "Lixo"
	RelevanceSupport Relevance = "Suporte"
)

// ParseRelevance accepts util/útil, lixo and suporte in any case, empty string means unset
func ParseRelevance(s string) (Relevance, error) {
	switch foldAccents(s) {
	case "":
		return RelevanceUnset, nil
	case "util":
		return RelevanceUseful, nil
	case "lixo":
		return RelevanceTrash, nil
	case "suporte":
		return RelevanceSupport, nil
	}
	return RelevanceUnset, fmt.Errorf("%w: relevancia must be Util, Lixo, Suporte or empty, got %q", ErrInvalidArgument, s)
}

// MarshalJSON renders unset relevance as null
func (r Relevance) MarshalJSON() ([]byte, error) {
	if r == RelevanceUnset {
		return []byte("null"), nil
	}
	return json.Marshal(string(r))
}

// UnmarshalJSON accepts a relevance string or null. Booleans from older clients map true to Util
// and false to Lixo.
func (r *Relevance) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		*r = RelevanceUnset
		return nil
	case "true":
		*r = RelevanceUseful
		return nil
	case "false":
		*r = RelevanceTrash
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: relevancia must be a string", ErrInvalidArgument)
	}
	parsed, err := ParseRelevance(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Themes lists the accepted item themes ("tema")
var Themes = []string{
	"Agricultura",
	"Social",
	"Segurança Pública",
	"Saúde",
	"Política",
	"Meio Ambiente",
	"Infraestrutura",
	"Educação",
	"Economia",
	"Cultura",
}

// IsValidTheme reports whether theme is one of Themes
func IsValidTheme(theme string) bool {
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}

// foldAccents lowercases s and drops the accents used in relevance labels
func foldAccents(s string) string {
	return strings.NewReplacer("ú", "u", "Ú", "u").Replace(strings.ToLower(strings.TrimSpace(s)))
}
