// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"greedyasm/pkg/api"
)

// Options carries presentation switches shared by all formats.
type Options struct {
	Header    bool // text: emit the column header line
	LineWidth int  // fasta: wrap width, 0 = one line per record
}

// WriteFunc serializes one result.
type WriteFunc func(w io.Writer, res api.ResultV1, o Options) error

// Writers maps format name → handler. Formats register themselves in init().
var Writers = map[string]WriteFunc{}

// Register adds or replaces (last wins) the handler for format.
func Register(format string, fn WriteFunc) { Writers[format] = fn }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(Writers))
	for k := range Writers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the handler registered for format.
func Write(format string, w io.Writer, res api.ResultV1, o Options) error {
	fn, ok := Writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, res, o)
}
