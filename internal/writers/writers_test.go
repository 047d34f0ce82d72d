package writers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"greedyasm/core/assembler"
	"greedyasm/core/fragment"
	"greedyasm/pkg/api"
)

func sample() api.ResultV1 {
	frags := []fragment.Fragment{fragment.MustNew("CCC"), fragment.MustNew("GATTACAGGCAT")}
	return ToAPIResult(4, 2, frags, nil, true)
}

func TestToAPIResult_Sorted(t *testing.T) {
	res := sample()
	assert.Equal(t, 4, res.InputCount)
	assert.Equal(t, 2, res.ContigCount)
	assert.Equal(t, 2, res.Steps)
	require.Len(t, res.Contigs, 2)
	assert.Equal(t, api.ContigV1{ID: "contig_1", Length: 12, Seq: "GATTACAGGCAT"}, res.Contigs[0])
	assert.Equal(t, "contig_2", res.Contigs[1].ID)
	assert.Nil(t, res.Merges)
}

func TestToAPIResult_KeepsOrderAndTrace(t *testing.T) {
	var merges []assembler.Merge
	a := assembler.NewWithConfig([]fragment.Fragment{
		fragment.MustNew("TTTT"), fragment.MustNew("CAA"), fragment.MustNew("AAG"),
	}, assembler.Config{OnMerge: func(m assembler.Merge) { merges = append(merges, m) }})
	a.AssembleAll()

	res := ToAPIResult(3, a.Steps(), a.Fragments(), merges, false)
	require.Len(t, res.Contigs, 2)
	assert.Equal(t, "TTTT", res.Contigs[0].Seq)
	assert.Equal(t, "CAAG", res.Contigs[1].Seq)
	require.Len(t, res.Merges, 1)
	assert.Equal(t, api.MergeV1{Step: 1, Left: "CAA", Right: "AAG", Overlap: 2, MergedLen: 4}, res.Merges[0])
}

func TestWriteText(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("text", &b, sample(), Options{Header: true}))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, TextHeader, lines[0])
	assert.Equal(t, "contig_1\t12\tGATTACAGGCAT", lines[1])

	b.Reset()
	require.NoError(t, Write("text", &b, sample(), Options{}))
	assert.NotContains(t, b.String(), "length")
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("json", &b, sample(), Options{}))
	var got api.ResultV1
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, sample(), got)
	assert.NotContains(t, b.String(), "merges")
}

func TestWriteJSON_EmptyContigsIsArray(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("json", &b, api.ResultV1{}, Options{}))
	assert.Contains(t, b.String(), `"contigs": []`)
}

func TestWriteYAML(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("yaml", &b, sample(), Options{}))
	var got api.ResultV1
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, sample(), got)
	assert.Contains(t, b.String(), "contig_count: 2")
}

func TestWriteFASTA_Wrap(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("fasta", &b, sample(), Options{LineWidth: 5}))
	want := ">contig_1 len=12\nGATTA\nCAGGC\nAT\n>contig_2 len=3\nCCC\n"
	assert.Equal(t, want, b.String())

	b.Reset()
	require.NoError(t, Write("fasta", &b, sample(), Options{}))
	assert.Equal(t, ">contig_1 len=12\nGATTACAGGCAT\n>contig_2 len=3\nCCC\n", b.String())
}

func TestWriteJSONL(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("jsonl", &b, sample(), Options{}))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 2)
	var c api.ContigV1
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &c))
	assert.Equal(t, "contig_1", c.ID)
	assert.Equal(t, "GATTACAGGCAT", c.Seq)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var b bytes.Buffer
	err := Write("nope-format", &b, sample(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"fasta", "json", "jsonl", "text", "yaml"}, Formats())
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.True(t, IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(io.EOF))
}
