package table

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
)

type staged struct {
	tmp  string
	path string
}

// Batch stages output files next to their targets and moves them in place
// only on Commit, so a failed run leaves no partial outputs.
type Batch struct {
	Dir   string
	files []staged
}

func NewBatch(dir string) *Batch {
	return &Batch{Dir: dir}
}

// Add stages name with an optional title row followed by records.
func (b *Batch) Add(name string, title []string, records [][]string) error {
	path := filepath.Join(b.Dir, name)
	fh, err := os.CreateTemp(b.Dir, "."+name+".*")
	if err != nil {
		return err
	}
	b.files = append(b.files, staged{tmp: fh.Name(), path: path})
	if err := fh.Chmod(OutputMode); err != nil {
		_ = fh.Close()
		return err
	}

	w := csv.NewWriter(fh)
	if title != nil {
		if err := w.Write(title); err != nil {
			_ = fh.Close()
			return err
		}
	}
	if err := w.WriteAll(records); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

// AddList stages one id per line without a title row.
func (b *Batch) AddList(name string, ids []string) error {
	var records = make([][]string, len(ids))
	for i, id := range ids {
		records[i] = []string{id}
	}
	return b.Add(name, nil, records)
}

// Commit renames every staged file onto its target. If a rename fails the
// targets already renamed are removed along with the remaining staged files.
func (b *Batch) Commit() ([]string, error) {
	var paths []string
	for i, f := range b.files {
		if err := os.Rename(f.tmp, f.path); err != nil {
			errs := []error{err}
			for _, path := range paths {
				if rerr := os.Remove(path); rerr != nil && !os.IsNotExist(rerr) {
					errs = append(errs, rerr)
				}
			}
			b.files = b.files[i:]
			return nil, errors.Join(append(errs, b.Abort())...)
		}
		paths = append(paths, f.path)
	}
	b.files = nil
	return paths, nil
}

// Abort removes staged files that were not committed.
func (b *Batch) Abort() error {
	var errs []error
	for _, f := range b.files {
		if err := os.Remove(f.tmp); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}
	b.files = nil
	return errors.Join(errs...)
}
