// internal/writers/result.go
package writers

import (
	"fmt"
	"sort"

	"greedyasm/core/assembler"
	"greedyasm/core/fragment"
	"greedyasm/pkg/api"
)

// ToAPIResult converts the final working collection to the v1 schema.
// merges is only serialized when non-nil (--trace). With sortContigs the contigs are ordered by
// length descending, then sequence; otherwise assembler order is kept.
// Contigs are numbered contig_1.. after ordering.
func ToAPIResult(inputCount, steps int, frags []fragment.Fragment, merges []assembler.Merge, sortContigs bool) api.ResultV1 {
	contigs := make([]api.ContigV1, 0, len(frags))
	for _, f := range frags {
		contigs = append(contigs, api.ContigV1{Length: f.Len(), Seq: f.String()})
	}
	if sortContigs {
		sort.SliceStable(contigs, func(i, j int) bool {
			if contigs[i].Length != contigs[j].Length {
				return contigs[i].Length > contigs[j].Length
			}
			return contigs[i].Seq < contigs[j].Seq
		})
	}
	for i := range contigs {
		contigs[i].ID = fmt.Sprintf("contig_%d", i+1)
	}

	res := api.ResultV1{
		InputCount:  inputCount,
		ContigCount: len(contigs),
		Steps:       steps,
		Contigs:     contigs,
	}
	for _, m := range merges {
		res.Merges = append(res.Merges, api.MergeV1{
			Step:      m.Step,
			Left:      m.Left.String(),
			Right:     m.Right.String(),
			Overlap:   m.Overlap,
			MergedLen: m.Result.Len(),
		})
	}
	return res
}
