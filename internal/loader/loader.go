// internal/loader/loader.go
package loader

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"greedyasm/core/fasta"
	"greedyasm/core/fragment"
)

// Input is one validated fragment and where it came from.
type Input struct {
	Source string // file path, "-" for stdin
	ID     string
	Frag   fragment.Fragment
}

// Load reads every path concurrently and returns the fragments in argument
// order, then file order, so downstream tie-breaking is reproducible.
// The first read or validation error cancels the remaining reads.
func Load(ctx context.Context, paths []string, format fasta.Format) ([]Input, error) {
	perFile := make([][]Input, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			in, err := loadOne(gctx, path, format)
			if err != nil {
				return err
			}
			perFile[i] = in
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Input
	for _, in := range perFile {
		out = append(out, in...)
	}
	return out, nil
}

func loadOne(ctx context.Context, path string, format fasta.Format) ([]Input, error) {
	recs, err := fasta.ReadPath(ctx, path, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out := make([]Input, 0, len(recs))
	for _, r := range recs {
		id := r.ID
		if id == "" {
			id = fmt.Sprintf("%s:%d", path, r.Line)
		}
		f, err := fragment.New(r.Seq)
		if err != nil {
			return nil, fmt.Errorf("%s: record %q: %w", path, id, err)
		}
		out = append(out, Input{Source: path, ID: id, Frag: f})
	}
	return out, nil
}

// Fragments strips provenance, keeping order.
func Fragments(in []Input) []fragment.Fragment {
	out := make([]fragment.Fragment, 0, len(in))
	for _, x := range in {
		out = append(out, x.Frag)
	}
	return out
}
