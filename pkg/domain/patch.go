package domain

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Opt is a JSON field that distinguishes absent, null and a value.
// Set is true when the key was present, Valid is false when it was null.
type Opt[T any] struct {
	Set   bool
	Valid bool
	V     T
}

// Some makes a present, non-null field
func Some[T any](v T) Opt[T] { return Opt[T]{Set: true, Valid: true, V: v} }

// Null makes a present field holding null
func Null[T any]() Opt[T] { return Opt[T]{Set: true} }

// UnmarshalJSON is only called for keys present in the document
func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		var zero T
		o.V = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.V); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a pointer, nil for null
func (o Opt[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.V
	return &v
}

// NewsPatch is the whitelist of fields a caller may change on a news item.
// Keys outside it are dropped by the decoder.
type NewsPatch struct {
	Relevance   Opt[Relevance] `json:"relevancia"`
	Theme       Opt[string]    `json:"tema"`
	Sentiment   Opt[Sentiment] `json:"avaliacao"`
	Strategic   Opt[bool]      `json:"estrategica"`
	Category    Opt[string]    `json:"categoria"`
	Subcategory Opt[string]    `json:"subcategoria"`
}

// Empty reports whether the patch has no recognized field
func (p NewsPatch) Empty() bool {
	return !p.Relevance.Set && !p.Theme.Set && !p.Sentiment.Set &&
		!p.Strategic.Set && !p.Category.Set && !p.Subcategory.Set
}

// Validate rejects empty patches and values the store can't hold
func (p NewsPatch) Validate() error {
	if p.Empty() {
		return fmt.Errorf("%w: no updatable field in request", ErrInvalidArgument)
	}
	if p.Theme.Valid && !IsValidTheme(p.Theme.V) {
		return fmt.Errorf("%w: tema must be one of %v", ErrInvalidArgument, Themes)
	}
	if p.Strategic.Set && !p.Strategic.Valid {
		return fmt.Errorf("%w: estrategica can't be null", ErrInvalidArgument)
	}
	if p.Category.Valid && utf8.RuneCountInString(p.Category.V) > maxLabelLen {
		return fmt.Errorf("%w: categoria is longer than %d characters", ErrInvalidArgument, maxLabelLen)
	}
	if p.Subcategory.Valid && utf8.RuneCountInString(p.Subcategory.V) > maxLabelLen {
		return fmt.Errorf("%w: subcategoria is longer than %d characters", ErrInvalidArgument, maxLabelLen)
	}
	return nil
}

// ExplicitCategory reports whether the caller supplied categoria or subcategoria
func (p NewsPatch) ExplicitCategory() bool {
	return p.Category.Set || p.Subcategory.Set
}

// DecodeNewsPatch parses a JSON patch body, unknown keys are ignored
func DecodeNewsPatch(data []byte) (NewsPatch, error) {
	var p NewsPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return NewsPatch{}, fmt.Errorf("%w: malformed body: %w", ErrInvalidArgument, err)
	}
	return p, nil
}
