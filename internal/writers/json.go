// internal/writers/json.go
package writers

import (
	"io"

	"greedyasm/internal/jsonutil"
	"greedyasm/pkg/api"
)

func init() { Register("json", WriteJSON) }

// WriteJSON writes the v1 result as one pretty-indented JSON document.
func WriteJSON(w io.Writer, res api.ResultV1, _ Options) error {
	if res.Contigs == nil {
		res.Contigs = []api.ContigV1{}
	}
	return jsonutil.EncodePretty(w, res)
}
