// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"greedyasm/internal/jsonlutil"
	"greedyasm/pkg/api"
)

func init() { Register("jsonl", WriteJSONL) }

// WriteJSONL writes one v1 contig per line; run totals and the merge trace are
// only available in json/yaml.
func WriteJSONL(w io.Writer, res api.ResultV1, _ Options) error {
	return jsonlutil.Write(w, res.Contigs,
		func(enc *json.Encoder, c api.ContigV1) error { return enc.Encode(c) },
		IsBrokenPipe,
	)
}
