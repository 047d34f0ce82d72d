// internal/writers/fasta.go
package writers

import (
	"fmt"
	"io"

	"greedyasm/pkg/api"
)

func init() { Register("fasta", WriteFASTA) }

// WriteFASTA writes each contig as a FASTA record, wrapped at o.LineWidth.
func WriteFASTA(w io.Writer, res api.ResultV1, o Options) error {
	for _, c := range res.Contigs {
		if _, err := fmt.Fprintf(w, ">%s len=%d\n", c.ID, c.Length); err != nil {
			return err
		}
		seq := c.Seq
		if o.LineWidth <= 0 {
			if _, err := fmt.Fprintln(w, seq); err != nil {
				return err
			}
			continue
		}
		for len(seq) > o.LineWidth {
			if _, err := fmt.Fprintln(w, seq[:o.LineWidth]); err != nil {
				return err
			}
			seq = seq[o.LineWidth:]
		}
		if _, err := fmt.Fprintln(w, seq); err != nil {
			return err
		}
	}
	return nil
}
