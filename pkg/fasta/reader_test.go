package fasta

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const locusFa = `>hAT-1_ML
ACGTACGTNN
>mLuc_Nway1_Blast1_ some description
ACGT
ACGT
>mVel_Nway0_BlastN_TooShort
NNNN
`

func TestReadIDs(t *testing.T) {
	ids, err := ReadIDs(context.Background(), strings.NewReader(locusFa))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []string{"hAT-1_ML", "mLuc_Nway1_Blast1_", "mVel_Nway0_BlastN_TooShort"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %q, want %q", ids, want)
	}
}

func TestReadIDsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ReadIDs(ctx, strings.NewReader(locusFa)); err == nil {
		t.Fatal("expected context error")
	}
}

func TestReadIDsPathGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "L1.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(locusFa)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	ids, err := ReadIDsPath(context.Background(), path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(ids) != 3 || ids[0] != "hAT-1_ML" {
		t.Fatalf("gzip parse failed, ids=%v", ids)
	}
}

func TestReadIDsPathMissing(t *testing.T) {
	if _, err := ReadIDsPath(context.Background(), filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
