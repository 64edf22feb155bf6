package paginator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// GapLabel is how a gap token is rendered and serialized.
const GapLabel = "…"

// Token is one entry of a rendered paginator: a clickable page number or a
// non-clickable gap. The zero value is a gap.
type Token struct {
	page int
}

// Gap is the ellipsis token standing in for two or more skipped pages.
var Gap = Token{}

// Page returns the token for page n. Pages are numbered from 1; Page panics
// for n < 1 so a page number can never be mistaken for a gap.
func Page(n int) Token {
	if n < 1 {
		panic(fmt.Sprintf("paginator: page number %d must be positive", n))
	}
	return Token{page: n}
}

func (t Token) IsGap() bool {
	return t.page == 0
}

// Number returns the page number and true, or 0 and false for a gap.
func (t Token) Number() (int, bool) {
	return t.page, t.page != 0
}

func (t Token) String() string {
	if t.IsGap() {
		return GapLabel
	}
	return strconv.Itoa(t.page)
}

// MarshalJSON encodes a page as a JSON number and a gap as the string "…".
func (t Token) MarshalJSON() ([]byte, error) {
	if t.IsGap() {
		return json.Marshal(GapLabel)
	}
	return []byte(strconv.Itoa(t.page)), nil
}

func (t *Token) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != GapLabel {
			return fmt.Errorf("paginator: unexpected token label %q", s)
		}
		*t = Gap
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("paginator: decode token: %w", err)
	}
	if n < 1 {
		return fmt.Errorf("paginator: page token %d must be positive", n)
	}
	*t = Page(n)
	return nil
}
