// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed sequence. Line is the 1-based line of its header
// (or of the sequence itself for line-per-record input).
type Record struct {
	ID   string
	Seq  string
	Line int
}

// Format selects how input text is split into records.
type Format string

const (
	FormatFASTA Format = "fasta"
	FormatLines Format = "lines"
)

const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return sc
}

// Scan parses FASTA from r and calls emit once per record, in file order.
// Sequence lines are trimmed and upper-cased; blank lines are ignored.
// Sequence text before the first header is emitted with an empty ID.
//
// It is cancelable: it returns ctx.Err() promptly when ctx is done.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := newScanner(r)

	var (
		id      string
		hdrLine int
		seen    bool
		seq     = make([]byte, 0, 1024)
		lineNo  int
	)

	flush := func() error {
		if !seen && len(seq) == 0 {
			return nil
		}
		return emit(Record{ID: id, Seq: string(seq), Line: hdrLine})
	}

	for sc.Scan() {
		lineNo++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			seq = seq[:0]
			id = parseHeaderID(line[1:])
			hdrLine = lineNo
			seen = true
			continue
		}
		if !seen && len(seq) == 0 {
			hdrLine = lineNo
		}
		seq = append(seq, bytes.ToUpper(bytes.TrimSpace(line))...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ScanLines treats every non-blank line of r as one record. IDs are empty;
// callers name records by Line.
func ScanLines(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := newScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := emit(Record{Seq: string(bytes.ToUpper(line)), Line: lineNo}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("line scan: %w", err)
	}
	return nil
}

// ReadPath opens path (gzip and "-" aware) and collects all records in order.
func ReadPath(ctx context.Context, path string, format Format) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var recs []Record
	collect := func(r Record) error {
		recs = append(recs, r)
		return nil
	}
	switch format {
	case FormatFASTA, "":
		err = Scan(ctx, rc, collect)
	case FormatLines:
		err = ScanLines(ctx, rc, collect)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
