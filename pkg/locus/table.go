package locus

import (
	"teGenotype/pkg/header"
)

// Column suffixes of the genotype and symbol tables.
const (
	NwaySuffix   = "_Nway"
	BlastSuffix  = "_Blast"
	SimpleSuffix = "_simple"
)

// GenotypeRow holds the raw calls of one locus, keyed by species.
type GenotypeRow struct {
	Locus   string
	Element string
	Nway    map[string]string
	Blast   map[string]string
}

// SymbolRow holds the simplified symbol of every species of one locus.
type SymbolRow struct {
	Locus   string
	Symbols map[string]header.Symbol
}

// GenotypeTable is sparse: a species missing from a locus leaves empty cells.
type GenotypeTable struct {
	Species []string
	Rows    []GenotypeRow
}

func (t *GenotypeTable) Header() []string {
	var title = []string{"locus", "element"}
	for _, species := range t.Species {
		title = append(title, species+NwaySuffix, species+BlastSuffix)
	}
	return title
}

func (t *GenotypeTable) Records() [][]string {
	var records = make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		var record = []string{row.Locus, row.Element}
		for _, species := range t.Species {
			record = append(record, row.Nway[species], row.Blast[species])
		}
		records = append(records, record)
	}
	return records
}

type SymbolTable struct {
	Species []string
	Rows    []SymbolRow
}

func (t *SymbolTable) Header() []string {
	var title = []string{"locus"}
	for _, species := range t.Species {
		title = append(title, species+SimpleSuffix)
	}
	return title
}

func (t *SymbolTable) Records() [][]string {
	var records = make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		var record = []string{row.Locus}
		for _, species := range t.Species {
			record = append(record, row.Symbols[species].String())
		}
		records = append(records, record)
	}
	return records
}
