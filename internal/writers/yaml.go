// internal/writers/yaml.go
package writers

import (
	"io"

	"gopkg.in/yaml.v3"

	"greedyasm/pkg/api"
)

func init() { Register("yaml", WriteYAML) }

// WriteYAML writes the v1 result as a YAML document.
func WriteYAML(w io.Writer, res api.ResultV1, _ Options) error {
	if res.Contigs == nil {
		res.Contigs = []api.ContigV1{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return enc.Close()
}
