package locus

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"teGenotype/pkg/header"
)

var (
	ErrNoSpecies       = errors.New("symbol table has no species")
	ErrSpeciesMismatch = errors.New("locus species differ from table species")
)

type Reason int

// Rules in precedence order; the first match decides.
const (
	Monomorphic Reason = iota
	NeverPresent
	NeverAbsent
	Undetermined
	Survived
)

var reasonText = [...]string{
	Monomorphic:  "insertion present in all species",
	NeverPresent: "not present in at least one species",
	NeverAbsent:  "not absent in at least one species",
	Undetermined: "undetermined genotype present",
	Survived:     "survived filtering",
}

func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonText) {
		return fmt.Sprintf("Reason(%d)", int(r))
	}
	return reasonText[r]
}

func (r Reason) Keep() bool {
	return r == Survived
}

// Tally counts symbols across the species of one locus.
type Tally map[header.Symbol]int

func NewTally(symbols []header.Symbol) Tally {
	return lo.CountValues(symbols)
}

func (t Tally) Total() int {
	return lo.Sum(lo.Values(t))
}

type Verdict struct {
	Locus  string
	Tally  Tally
	Reason Reason
}

func (v Verdict) Keep() bool {
	return v.Reason.Keep()
}

// Classifier applies the keep/toss rules.
type Classifier struct {
	// MaxUndetermined is the number of '?' calls a locus may carry and
	// still be kept.
	MaxUndetermined int
}

func (c Classifier) Decide(t Tally, n int) Reason {
	switch {
	case t[header.SymbolPresent] == n:
		return Monomorphic
	case t[header.SymbolPresent] == 0:
		return NeverPresent
	case t[header.SymbolAbsent] == 0:
		return NeverAbsent
	case t[header.SymbolUndetermined] > c.MaxUndetermined:
		return Undetermined
	default:
		return Survived
	}
}

// Result holds one verdict per locus in table order.
type Result struct {
	Verdicts []Verdict
	Keep     []string
	Toss     []string
}

// Validate checks every row carries exactly the table's species.
func Validate(t *SymbolTable) error {
	if len(t.Species) == 0 {
		return ErrNoSpecies
	}
	for _, row := range t.Rows {
		missing := lo.Filter(t.Species, func(s string, _ int) bool {
			_, ok := row.Symbols[s]
			return !ok
		})
		if len(missing) > 0 || len(row.Symbols) != len(t.Species) {
			return fmt.Errorf("%w: %s lacks %v", ErrSpeciesMismatch, row.Locus, missing)
		}
	}
	return nil
}

func (c Classifier) Classify(t *SymbolTable) (*Result, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	var (
		n      = len(t.Species)
		result = &Result{Verdicts: make([]Verdict, 0, len(t.Rows))}
	)
	for _, row := range t.Rows {
		tally := NewTally(lo.Map(t.Species, func(s string, _ int) header.Symbol { return row.Symbols[s] }))
		v := Verdict{
			Locus:  row.Locus,
			Tally:  tally,
			Reason: c.Decide(tally, n),
		}
		result.Verdicts = append(result.Verdicts, v)
		if v.Keep() {
			result.Keep = append(result.Keep, v.Locus)
		} else {
			result.Toss = append(result.Toss, v.Locus)
		}
	}
	return result, nil
}

type ReasonCount struct {
	Reason Reason
	Count  int
}

// Summary counts verdicts per reason, most frequent first.
func (r *Result) Summary() []ReasonCount {
	counts := lo.CountValuesBy(r.Verdicts, func(v Verdict) Reason { return v.Reason })
	summary := lo.MapToSlice(counts, func(reason Reason, count int) ReasonCount {
		return ReasonCount{Reason: reason, Count: count}
	})
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Count == summary[j].Count {
			return summary[i].Reason < summary[j].Reason
		}
		return summary[i].Count > summary[j].Count
	})
	return summary
}
