package locus

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"teGenotype/pkg/header"
)

var (
	ErrDuplicateSpecies = errors.New("species called twice in one locus")
	ErrDuplicateLocus   = errors.New("locus listed twice")
)

// Options controls how calls are reduced while a locus is built.
type Options struct {
	// UnknownAsError reduces BlastN calls with an unrecognized detail to
	// header.SymbolError instead of header.SymbolUnknown.
	UnknownAsError bool
}

// Locus is one FASTA file: an element and one call per species.
type Locus struct {
	ID      string
	Path    string
	Element string

	Calls   []*header.Call
	Symbols map[string]header.Symbol
}

// ID derives a locus id from a file path: the path with everything after the
// first dot of its base name removed. The directory is kept.
func ID(path string) string {
	stem, _, _ := strings.Cut(filepath.Base(path), ".")
	return filepath.Join(filepath.Dir(path), stem)
}

// Build decodes the record IDs of one file into a finalized Locus.
func Build(path string, ids []string, opt Options) (*Locus, error) {
	var l = &Locus{
		ID:      ID(path),
		Path:    path,
		Symbols: make(map[string]header.Symbol),
	}
	for i, id := range ids {
		rec, err := header.Decode(id)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", path, i+1, err)
		}
		if rec.IsElement() {
			if l.Element != "" {
				slog.Warn("element overwritten", "locus", l.ID, "old", l.Element, "new", rec.Element.ID)
			}
			l.Element = rec.Element.ID
			continue
		}
		if err := l.addCall(rec.Call, opt); err != nil {
			return nil, fmt.Errorf("%s record %d: %w", path, i+1, err)
		}
	}
	return l, nil
}

func (l *Locus) addCall(call *header.Call, opt Options) error {
	if _, ok := l.Symbols[call.Species]; ok {
		return fmt.Errorf("%w: %s in %s", ErrDuplicateSpecies, call.Species, l.ID)
	}
	symbol := call.Symbol()
	if symbol == header.SymbolUnknown {
		slog.Warn("unrecognized BlastN detail", "locus", l.ID, "species", call.Species, "call", call.Blast)
		if opt.UnknownAsError {
			symbol = header.SymbolError
		}
	}
	l.Calls = append(l.Calls, call)
	l.Symbols[call.Species] = symbol
	return nil
}

// Species lists the called species in file order.
func (l *Locus) Species() []string {
	var species = make([]string, len(l.Calls))
	for i, call := range l.Calls {
		species[i] = call.Species
	}
	return species
}

func (l *Locus) GenotypeRow() GenotypeRow {
	var row = GenotypeRow{
		Locus:   l.ID,
		Element: l.Element,
		Nway:    make(map[string]string, len(l.Calls)),
		Blast:   make(map[string]string, len(l.Calls)),
	}
	for _, call := range l.Calls {
		row.Nway[call.Species] = call.Nway
		row.Blast[call.Species] = call.Blast
	}
	return row
}

func (l *Locus) SymbolRow() SymbolRow {
	var row = SymbolRow{
		Locus:   l.ID,
		Symbols: make(map[string]header.Symbol, len(l.Symbols)),
	}
	for species, symbol := range l.Symbols {
		row.Symbols[species] = symbol
	}
	return row
}
