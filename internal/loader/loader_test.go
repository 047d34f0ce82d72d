package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greedyasm/core/fasta"
	"greedyasm/core/fragment"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func TestLoad_PreservesArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.fa", ">r1\nGATTACA\n>r2\nTACAGG\n")
	b := write(t, dir, "b.fa", ">r3\nAGGCAT\n")

	for i := 0; i < 5; i++ {
		got, err := Load(context.Background(), []string{b, a}, fasta.FormatFASTA)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "r3", got[0].ID)
		assert.Equal(t, "r1", got[1].ID)
		assert.Equal(t, "r2", got[2].ID)
		assert.Equal(t, b, got[0].Source)
	}
}

func TestLoad_LinesFormatNamesByLine(t *testing.T) {
	dir := t.TempDir()
	fn := write(t, dir, "reads.txt", "caa\n\naag\n")

	got, err := Load(context.Background(), []string{fn}, fasta.FormatLines)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, fn+":1", got[0].ID)
	assert.Equal(t, fn+":3", got[1].ID)
	assert.Equal(t, []string{"CAA", "AAG"}, []string{got[0].Frag.String(), got[1].Frag.String()})
}

func TestLoad_InvalidSequence(t *testing.T) {
	dir := t.TempDir()
	ok := write(t, dir, "ok.fa", ">a\nACGT\n")
	bad := write(t, dir, "bad.fa", ">good\nACGT\n>amb\nACGNT\n")

	_, err := Load(context.Background(), []string{ok, bad}, fasta.FormatFASTA)
	require.Error(t, err)
	assert.ErrorIs(t, err, fragment.ErrInvalidSequence)
	assert.Contains(t, err.Error(), `record "amb"`)
	assert.Contains(t, err.Error(), bad)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), []string{filepath.Join(t.TempDir(), "none.fa")}, fasta.FormatFASTA)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Empty(t *testing.T) {
	got, err := Load(context.Background(), nil, fasta.FormatFASTA)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, Fragments(got))
}

func TestFragments(t *testing.T) {
	in := []Input{
		{ID: "x", Frag: fragment.MustNew("CAA")},
		{ID: "y", Frag: fragment.MustNew("AAG")},
	}
	fs := Fragments(in)
	require.Len(t, fs, 2)
	assert.True(t, fs[1].Equal(fragment.MustNew("AAG")))
}
