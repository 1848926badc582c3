package fasta

import (
	"context"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ReadIDs returns the ID of every record in r, in file order.
// The ID is the header up to its first blank; sequences are discarded.
func ReadIDs(ctx context.Context, r io.Reader) ([]string, error) {
	var (
		ids []string
		sc  = seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	)
	for sc.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ids = append(ids, sc.Seq().Name())
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return ids, nil
}

// ReadIDsPath is ReadIDs on a file opened with Open.
func ReadIDsPath(ctx context.Context, path string) ([]string, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	ids, err := ReadIDs(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ids, nil
}
