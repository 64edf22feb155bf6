package paginator

import "golang.org/x/exp/constraints"

// LastPage derives the last page number from a result count. An empty result
// still has one (empty) page. A non-positive pageSize is treated as one item
// per page.
func LastPage[T constraints.Integer](totalCount, pageSize T) int {
	if pageSize <= 0 {
		pageSize = 1
	}
	if totalCount <= 0 {
		return 1
	}
	return int((totalCount + pageSize - 1) / pageSize)
}

// Clamp moves page into [1, last].
func Clamp(page, last int) int {
	if last < 1 {
		last = 1
	}
	return min(max(page, 1), last)
}

// Step is a Previous or Next affordance.
type Step struct {
	Page     int  `json:"page"`
	Disabled bool `json:"disabled"`
}

// Controls are the Previous/Next affordances rendered next to the tokens.
type Controls struct {
	Previous Step `json:"previous"`
	Next     Step `json:"next"`
}

// NewControls returns the Previous/Next affordances for current of last.
// Disabled steps point at current.
func NewControls(current, last int) Controls {
	c := Controls{
		Previous: Step{Page: current - 1},
		Next:     Step{Page: current + 1},
	}
	if current <= 1 {
		c.Previous = Step{Page: current, Disabled: true}
	}
	if current >= last {
		c.Next = Step{Page: current, Disabled: true}
	}
	return c
}

// Activate calls onChange with the page of t. Gaps are inert and return false.
func (t Token) Activate(onChange func(page int)) bool {
	n, ok := t.Number()
	if !ok {
		return false
	}
	onChange(n)
	return true
}
