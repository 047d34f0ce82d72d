// core/assembler/assembler.go
package assembler

import (
	"context"

	"greedyasm/core/fragment"
)

// Merge describes one greedy step: Left and Right were replaced by Result.
type Merge struct {
	Step    int
	Left    fragment.Fragment
	Right   fragment.Fragment
	Overlap int
	Result  fragment.Fragment
}

// Config holds assembly parameters.
type Config struct {
	MinOverlap int         // smallest overlap that may be merged (<=0 means 1)
	OnMerge    func(Merge) // called after every successful step; may be nil
}

// Assembler greedily reduces a working collection of fragments.
// It is not safe for concurrent use.
type Assembler struct {
	cfg   Config
	frags []fragment.Fragment
	steps int
}

// New copies frags into a new Assembler; later changes to frags are not seen.
func New(frags []fragment.Fragment) *Assembler {
	return NewWithConfig(frags, Config{})
}

// NewWithConfig is New with explicit parameters.
func NewWithConfig(frags []fragment.Fragment, c Config) *Assembler {
	if c.MinOverlap <= 0 {
		c.MinOverlap = 1
	}
	return &Assembler{
		cfg:   c,
		frags: append([]fragment.Fragment(nil), frags...),
	}
}

// Fragments returns a snapshot of the working collection in its current order.
func (a *Assembler) Fragments() []fragment.Fragment {
	return append([]fragment.Fragment(nil), a.frags...)
}

// Len returns the size of the working collection.
func (a *Assembler) Len() int { return len(a.frags) }

// Steps returns the number of merges performed so far.
func (a *Assembler) Steps() int { return a.steps }

// AssembleOnce performs at most one greedy merge and reports whether it did.
//
// Every ordered pair of distinct positions (i, j) is scored by
// frags[i].Overlap(frags[j]). The largest overlap wins; equal overlaps prefer
// the shorter merged fragment; anything still tied keeps the first pair seen
// in row-major order. The winning pair is removed and its merge appended.
func (a *Assembler) AssembleOnce() bool {
	n := len(a.frags)
	if n < 2 {
		return false
	}

	bestI, bestJ := -1, -1
	bestOv, bestLen := -1, 0
	for i := 0; i < n; i++ {
		left := a.frags[i]
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			right := a.frags[j]
			ov := left.Overlap(right)
			ml := left.MergedLen(right, ov)
			if ov > bestOv || (ov == bestOv && ml < bestLen) {
				bestI, bestJ = i, j
				bestOv, bestLen = ov, ml
			}
		}
	}
	if bestOv < a.cfg.MinOverlap {
		return false
	}

	left, right := a.frags[bestI], a.frags[bestJ]
	merged := left.MergedWith(right)

	rest := make([]fragment.Fragment, 0, n-1)
	for k, f := range a.frags {
		if k != bestI && k != bestJ {
			rest = append(rest, f)
		}
	}
	a.frags = append(rest, merged)
	a.steps++

	if a.cfg.OnMerge != nil {
		a.cfg.OnMerge(Merge{Step: a.steps, Left: left, Right: right, Overlap: bestOv, Result: merged})
	}
	return true
}

// AssembleAll merges until no pair reaches the minimum overlap.
func (a *Assembler) AssembleAll() {
	for a.AssembleOnce() {
	}
}

// AssembleAllContext is AssembleAll that stops between steps once ctx is done.
// The working collection is left in the state reached by the last full step.
func (a *Assembler) AssembleAllContext(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !a.AssembleOnce() {
			return nil
		}
	}
}
