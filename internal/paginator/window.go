// Package paginator computes which page links a compact paginator control
// shows: both anchors, the current page with its neighbours, and gap markers
// for whatever is left out.
package paginator

import (
	"iter"
	"slices"
)

// reservedSlots are the window slots taken by the first page, the last page
// and the current page.
const reservedSlots = 3

// State is the input of the window calculation. Current is expected to be
// clamped into [1, Last] by the caller; see Clamp.
type State struct {
	Current   int `json:"currentPage"`
	Last      int `json:"lastPage"`
	MaxLength int `json:"maxLength"`
}

// Validate reports the first argument that falls outside its range.
func (s State) Validate() error {
	if s.Last < 1 {
		return &InvalidRangeError{Field: "lastPage", Value: s.Last, Min: 1}
	}
	if s.MaxLength < 1 {
		return &InvalidRangeError{Field: "maxLength", Value: s.MaxLength, Min: 1}
	}
	if s.Current < 1 || s.Current > s.Last {
		return &InvalidRangeError{Field: "currentPage", Value: s.Current, Min: 1, Max: s.Last}
	}
	return nil
}

// Tokens returns the page tokens for s.
func (s State) Tokens() ([]Token, error) {
	seq, err := s.Seq()
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// Seq validates s and returns a sequence yielding its tokens in order. The
// sequence can be ranged over any number of times.
func (s State) Seq() (iter.Seq[Token], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.tokens, nil
}

func (s State) tokens(yield func(Token) bool) {
	if s.Last <= s.MaxLength {
		for p := 1; p < s.Last; p++ {
			if !yield(Page(p)) {
				return
			}
		}
		yield(Page(s.Last))
		return
	}

	lo, hi := s.window()
	if !yield(Page(1)) {
		return
	}
	// Pages 2..lo-1 are skipped on the left.
	switch {
	case lo == 3:
		if !yield(Page(2)) {
			return
		}
	case lo > 3:
		if !yield(Gap) {
			return
		}
	}
	for p := max(lo, 2); p <= min(hi, s.Last-1); p++ {
		if !yield(Page(p)) {
			return
		}
	}
	// Pages hi+1..Last-1 are skipped on the right.
	switch {
	case hi == s.Last-2:
		if !yield(Page(s.Last - 1)) {
			return
		}
	case hi < s.Last-2:
		if !yield(Gap) {
			return
		}
	}
	yield(Page(s.Last))
}

// window returns the bounds of the contiguous run around Current. The run
// keeps its full width near either edge by sliding inwards. Offsets are
// clipped to the distance from Current to each edge before they are added,
// so the bounds stay within [1, Last] for any valid state.
func (s State) window() (lo, hi int) {
	side := max(0, (s.MaxLength-reservedSlots)/2)
	left := min(side, s.Current-1)
	// Slots the left edge could not take go to the right, and back again.
	want := side + (side - left)
	right := min(want, s.Last-s.Current)
	if spare := want - right; spare > 0 {
		left += min(spare, s.Current-1-left)
	}
	return s.Current - left, s.Current + right
}

// Window returns the page tokens for the given page state.
func Window(current, last, maxLength int) ([]Token, error) {
	return State{Current: current, Last: last, MaxLength: maxLength}.Tokens()
}

// Seq is the lazy form of Window.
func Seq(current, last, maxLength int) (iter.Seq[Token], error) {
	return State{Current: current, Last: last, MaxLength: maxLength}.Seq()
}
