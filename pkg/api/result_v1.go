// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON/YAML schema for one assembly run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	InputCount  int        `json:"input_count" yaml:"input_count"`
	ContigCount int        `json:"contig_count" yaml:"contig_count"`
	Steps       int        `json:"steps" yaml:"steps"`
	Contigs     []ContigV1 `json:"contigs" yaml:"contigs"`
	Merges      []MergeV1  `json:"merges,omitempty" yaml:"merges,omitempty"`
}

// ContigV1 is one fragment left in the working collection after assembly.
type ContigV1 struct {
	ID     string `json:"id" yaml:"id"`
	Length int    `json:"length" yaml:"length"`
	Seq    string `json:"seq" yaml:"seq"`
}

// MergeV1 records a single greedy step (only emitted with --trace).
type MergeV1 struct {
	Step      int    `json:"step" yaml:"step"`
	Left      string `json:"left" yaml:"left"`
	Right     string `json:"right" yaml:"right"`
	Overlap   int    `json:"overlap" yaml:"overlap"`
	MergedLen int    `json:"merged_length" yaml:"merged_length"`
}
