// Package cursor encodes and decodes keyset pagination tokens for lists ordered by date and id, newest first.
package cursor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smimonitor/noticias/pkg/domain"
)

// ErrInvalidCursor is returned for tokens that can't be decoded
var ErrInvalidCursor = fmt.Errorf("%w: invalid cursor", domain.ErrInvalidArgument)

// Cursor is the (date, id) of the last row of a page
type Cursor struct {
	Date domain.Date
	ID   int64
}

// Encode makes a "YYYY-MM-DD_id" token
func Encode(d domain.Date, id int64) string {
	return d.ISO() + "_" + strconv.FormatInt(id, 10)
}

// Decode parses a token made by Encode
func Decode(token string) (Cursor, error) {
	parts := strings.Split(token, "_")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Cursor{}, fmt.Errorf("%w: %q must be date_id", ErrInvalidCursor, token)
	}
	d, err := domain.ParseQuery(parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: bad date in %q", ErrInvalidCursor, token)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: bad id in %q", ErrInvalidCursor, token)
	}
	return Cursor{Date: d, ID: id}, nil
}

// String returns the encoded token
func (c Cursor) String() string { return Encode(c.Date, c.ID) }

// After reports whether a row at (d, id) comes after the cursor in (date desc, id desc) order
func (c Cursor) After(d domain.Date, id int64) bool {
	return d.Before(c.Date) || (d.Equal(c.Date) && id < c.ID)
}

// Next returns the token for the page following items, or nil when the page is not full
func Next(items []domain.NewsItem, limit int) *string {
	if limit <= 0 || len(items) < limit {
		return nil
	}
	last := items[len(items)-1]
	token := Encode(last.Date, last.ID)
	return &token
}
