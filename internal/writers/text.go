// internal/writers/text.go
package writers

import (
	"fmt"
	"io"

	"greedyasm/pkg/api"
)

// TextHeader is the column header of text output.
const TextHeader = "id\tlength\tseq"

func init() { Register("text", WriteText) }

// WriteText writes contigs as a tab-delimited table.
func WriteText(w io.Writer, res api.ResultV1, o Options) error {
	if o.Header {
		if _, err := fmt.Fprintln(w, TextHeader); err != nil {
			return err
		}
	}
	for _, c := range res.Contigs {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", c.ID, c.Length, c.Seq); err != nil {
			return err
		}
	}
	return nil
}
