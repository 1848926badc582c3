package header

import (
	"strings"

	"github.com/samber/lo"
)

type Symbol string

const (
	SymbolPresent      Symbol = "+"
	SymbolAbsent       Symbol = "-"
	SymbolUndetermined Symbol = "?"
	SymbolError        Symbol = "error"
	// BlastN with a detail outside UndeterminedDetails
	SymbolUnknown Symbol = "unknown"
)

// Symbols in tally order.
var Symbols = []Symbol{
	SymbolPresent,
	SymbolAbsent,
	SymbolUndetermined,
	SymbolError,
	SymbolUnknown,
}

func (s Symbol) String() string {
	return string(s)
}

// SplitBlast splits a Blast call on its first underscore.
func SplitBlast(call string) (prefix, detail string) {
	prefix, detail, _ = strings.Cut(call, "_")
	return
}

// Reduce maps a Blast call to its simplified symbol.
func Reduce(call string) Symbol {
	prefix, detail := SplitBlast(call)
	switch prefix {
	case "Blast0":
		return SymbolAbsent
	case "Blast1":
		return SymbolPresent
	case "BlastN":
		if lo.Contains(UndeterminedDetails, detail) {
			return SymbolUndetermined
		}
		return SymbolUnknown
	default:
		return SymbolError
	}
}
