// core/fragment/fragment.go
package fragment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSequence is returned by New when the text holds a symbol outside A C G T.
var ErrInvalidSequence = errors.New("invalid sequence")

// Fragment is an immutable run of nucleotides over {A, C, G, T}.
// The zero value is the empty fragment.
type Fragment struct {
	seq string
}

// New validates text and returns a Fragment holding exactly that text.
// Matching is case-sensitive; the empty string is accepted.
func New(text string) (Fragment, error) {
	for i := 0; i < len(text); i++ {
		if !isBase(text[i]) {
			return Fragment{}, fmt.Errorf("%w: invalid base %q at %d; allowed: A C G T", ErrInvalidSequence, text[i], i+1)
		}
	}
	return Fragment{seq: text}, nil
}

// MustNew is like New but panics on invalid input. Intended for fixtures.
func MustNew(text string) Fragment {
	f, err := New(text)
	if err != nil {
		panic(err)
	}
	return f
}

func isBase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}

// Len returns the number of nucleotides.
func (f Fragment) Len() int { return len(f.seq) }

// String returns the text the fragment was built from, unmodified.
func (f Fragment) String() string { return f.seq }

// Equal reports whether both fragments hold the same nucleotides in the same order.
func (f Fragment) Equal(o Fragment) bool {
	if len(f.seq) != len(o.seq) {
		return false
	}
	return f.seq == o.seq
}

// Same is the nil-safe form of Equal: an absent fragment is never equal to anything.
func Same(a, b *Fragment) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Equal(*b)
}

// Overlap returns the largest k such that the last k nucleotides of f equal
// the first k nucleotides of o. It is not symmetric: CAA/AAG gives 2 while
// AAG/CAA gives 0.
func (f Fragment) Overlap(o Fragment) int {
	bound := len(f.seq)
	if len(o.seq) < bound {
		bound = len(o.seq)
	}
	for k := bound; k > 0; k-- {
		if strings.HasSuffix(f.seq, o.seq[:k]) {
			return k
		}
	}
	return 0
}

// MergedWith returns f followed by the part of o that lies past their overlap.
// Neither operand is modified.
func (f Fragment) MergedWith(o Fragment) Fragment {
	return Fragment{seq: f.seq + o.seq[f.Overlap(o):]}
}

// MergedLen is the length MergedWith would produce for a known overlap.
func (f Fragment) MergedLen(o Fragment, overlap int) int {
	return len(f.seq) + len(o.seq) - overlap
}
