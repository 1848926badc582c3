package locus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"teGenotype/pkg/fasta"
)

// Aggregator accumulates finalized loci in the order they are added.
type Aggregator struct {
	loci    []*Locus
	ids     map[string]bool
	species []string
}

func NewAggregator() *Aggregator {
	return &Aggregator{ids: make(map[string]bool)}
}

// Add appends a locus as one unit and extends the species universe.
func (a *Aggregator) Add(l *Locus) (*Aggregator, error) {
	if a.ids[l.ID] {
		return a, fmt.Errorf("%w: %s (%s)", ErrDuplicateLocus, l.ID, l.Path)
	}
	a.ids[l.ID] = true
	a.loci = append(a.loci, l)
	a.species = lo.Uniq(append(a.species, l.Species()...))
	return a, nil
}

// Fold adds loci in order.
func Fold(a *Aggregator, loci []*Locus) (*Aggregator, error) {
	var err error
	for _, l := range loci {
		if a, err = a.Add(l); err != nil {
			return a, err
		}
	}
	return a, nil
}

func (a *Aggregator) Len() int {
	return len(a.loci)
}

func (a *Aggregator) Loci() []*Locus {
	return a.loci
}

// Species is the union of species over all loci, in first-seen order.
func (a *Aggregator) Species() []string {
	return a.species
}

func (a *Aggregator) GenotypeTable() *GenotypeTable {
	return &GenotypeTable{
		Species: a.species,
		Rows:    lo.Map(a.loci, func(l *Locus, _ int) GenotypeRow { return l.GenotypeRow() }),
	}
}

func (a *Aggregator) SymbolTable() *SymbolTable {
	return &SymbolTable{
		Species: a.species,
		Rows:    lo.Map(a.loci, func(l *Locus, _ int) SymbolRow { return l.SymbolRow() }),
	}
}

// Load reads every file in paths with up to workers files in flight and
// folds the loci in list order. The first error cancels the batch.
func Load(ctx context.Context, paths []string, workers int, opt Options) (*Aggregator, error) {
	var (
		loci  = make([]*Locus, len(paths))
		g, gc = errgroup.WithContext(ctx)
	)
	g.SetLimit(max(1, workers))
	for i, path := range paths {
		g.Go(func() error {
			slog.Info("locus", "index", i+1, "total", len(paths), "path", path)
			ids, err := fasta.ReadIDsPath(gc, path)
			if err != nil {
				return err
			}
			l, err := Build(path, ids, opt)
			if err != nil {
				return err
			}
			slog.Debug("locus done", "id", l.ID, "element", l.Element, "species", len(l.Calls))
			loci[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Fold(NewAggregator(), loci)
}
