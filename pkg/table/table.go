package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"teGenotype/pkg/header"
	"teGenotype/pkg/locus"
)

func VerdictRecords(result *locus.Result) [][]string {
	return lo.Map(result.Verdicts, func(v locus.Verdict, _ int) []string {
		verdict := "toss"
		if v.Keep() {
			verdict = "keep"
		}
		record := []string{v.Locus, verdict, v.Reason.String()}
		for _, s := range header.Symbols {
			record = append(record, strconv.Itoa(v.Tally[s]))
		}
		return record
	})
}

// WriteAll stages and commits every output of a run into dir.
func WriteAll(dir string, gt *locus.GenotypeTable, st *locus.SymbolTable, result *locus.Result) ([]string, error) {
	var b = NewBatch(dir)
	steps := []func() error{
		func() error { return b.Add(GenotypeFile, gt.Header(), gt.Records()) },
		func() error { return b.Add(SymbolFile, st.Header(), st.Records()) },
		func() error { return b.Add(VerdictFile, VerdictTitle, VerdictRecords(result)) },
		func() error { return b.AddList(KeepFile, result.Keep) },
		func() error { return b.AddList(TossFile, result.Toss) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			_ = b.Abort()
			return nil, err
		}
	}
	return b.Commit()
}

// ReadGenotypeTable parses a table written from locus.GenotypeTable.
func ReadGenotypeTable(r io.Reader) (*locus.GenotypeTable, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("genotype table: no title row")
	}
	title := records[0]
	if len(title) < 2 || title[0] != "locus" || title[1] != "element" || len(title)%2 != 0 {
		return nil, fmt.Errorf("genotype table: bad title %v", title)
	}

	var t = &locus.GenotypeTable{}
	for i := 2; i < len(title); i += 2 {
		species, ok := strings.CutSuffix(title[i], locus.NwaySuffix)
		if !ok || title[i+1] != species+locus.BlastSuffix {
			return nil, fmt.Errorf("genotype table: bad columns %q %q", title[i], title[i+1])
		}
		t.Species = append(t.Species, species)
	}
	for _, record := range records[1:] {
		row := locus.GenotypeRow{
			Locus:   record[0],
			Element: record[1],
			Nway:    make(map[string]string),
			Blast:   make(map[string]string),
		}
		for j, species := range t.Species {
			if nway := record[2+2*j]; nway != "" {
				row.Nway[species] = nway
			}
			if blast := record[3+2*j]; blast != "" {
				row.Blast[species] = blast
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func ReadGenotypeTablePath(path string) (*locus.GenotypeTable, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return ReadGenotypeTable(fh)
}
