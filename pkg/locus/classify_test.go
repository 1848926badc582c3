package locus

import (
	"errors"
	"reflect"
	"testing"

	"teGenotype/pkg/header"
)

func symbolTable(rows map[string]string, order ...string) *SymbolTable {
	t := &SymbolTable{Species: []string{"a", "b", "c"}}
	for _, id := range order {
		row := SymbolRow{Locus: id, Symbols: make(map[string]header.Symbol)}
		for i, c := range rows[id] {
			row.Symbols[t.Species[i]] = header.Symbol(string(c))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func TestClassifyScenarios(t *testing.T) {
	cases := []struct {
		symbols string
		want    Reason
	}{
		{"+++", Monomorphic},
		{"---", NeverPresent},
		{"++-", Survived},
		{"+-?", Undetermined},
		{"++?", NeverAbsent},
		{"--?", NeverPresent},
	}
	for _, c := range cases {
		st := symbolTable(map[string]string{"L": c.symbols}, "L")
		result, err := Classifier{}.Classify(st)
		if err != nil {
			t.Fatalf("classify %s: %v", c.symbols, err)
		}
		if got := result.Verdicts[0].Reason; got != c.want {
			t.Errorf("%s: reason = %q, want %q", c.symbols, got, c.want)
		}
	}
}

func TestClassifyTolerance(t *testing.T) {
	st := symbolTable(map[string]string{"L": "+-?"}, "L")
	result, err := Classifier{MaxUndetermined: 1}.Classify(st)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !result.Verdicts[0].Keep() {
		t.Fatalf("reason = %q, want kept", result.Verdicts[0].Reason)
	}
}

func TestClassifyOtherSymbols(t *testing.T) {
	st := &SymbolTable{
		Species: []string{"a", "b", "c", "d"},
		Rows: []SymbolRow{{
			Locus: "L",
			Symbols: map[string]header.Symbol{
				"a": header.SymbolPresent,
				"b": header.SymbolAbsent,
				"c": header.SymbolError,
				"d": header.SymbolUnknown,
			},
		}},
	}
	result, err := Classifier{}.Classify(st)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	v := result.Verdicts[0]
	if v.Reason != Survived {
		t.Fatalf("reason = %q", v.Reason)
	}
	if v.Tally.Total() != 4 || v.Tally[header.SymbolError] != 1 || v.Tally[header.SymbolUnknown] != 1 {
		t.Fatalf("tally = %v", v.Tally)
	}
}

func TestClassifyPartition(t *testing.T) {
	rows := map[string]string{
		"L1": "+++",
		"L2": "++-",
		"L3": "---",
		"L4": "+--",
		"L5": "+-?",
		"L6": "?+-",
	}
	order := []string{"L1", "L2", "L3", "L4", "L5", "L6"}
	st := symbolTable(rows, order...)

	result, err := Classifier{}.Classify(st)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !reflect.DeepEqual(result.Keep, []string{"L2", "L4"}) {
		t.Fatalf("keep = %v", result.Keep)
	}
	if !reflect.DeepEqual(result.Toss, []string{"L1", "L3", "L5", "L6"}) {
		t.Fatalf("toss = %v", result.Toss)
	}
	if len(result.Keep)+len(result.Toss) != len(order) {
		t.Fatalf("partition size mismatch")
	}
	for _, v := range result.Verdicts {
		if v.Tally.Total() != len(st.Species) {
			t.Fatalf("%s tally total = %d", v.Locus, v.Tally.Total())
		}
	}

	// ties fall back to rule order
	wantSummary := []ReasonCount{
		{Undetermined, 2},
		{Survived, 2},
		{Monomorphic, 1},
		{NeverPresent, 1},
	}
	if got := result.Summary(); !reflect.DeepEqual(got, wantSummary) {
		t.Fatalf("summary = %v, want %v", got, wantSummary)
	}

	again, err := Classifier{}.Classify(st)
	if err != nil {
		t.Fatalf("classify again: %v", err)
	}
	if !reflect.DeepEqual(again, result) {
		t.Fatalf("classification not idempotent")
	}
}

func TestClassifyValidation(t *testing.T) {
	if _, err := (Classifier{}).Classify(&SymbolTable{}); !errors.Is(err, ErrNoSpecies) {
		t.Fatalf("err = %v, want ErrNoSpecies", err)
	}
	st := symbolTable(map[string]string{"L1": "+-", "L2": "+-+"}, "L1", "L2")
	if _, err := (Classifier{}).Classify(st); !errors.Is(err, ErrSpeciesMismatch) {
		t.Fatalf("err = %v, want ErrSpeciesMismatch", err)
	}
}

func TestReasonString(t *testing.T) {
	if Monomorphic.String() != "insertion present in all species" {
		t.Fatalf("got %q", Monomorphic.String())
	}
	if Reason(42).String() != "Reason(42)" {
		t.Fatalf("got %q", Reason(42).String())
	}
}
