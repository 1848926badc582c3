package table

import "os"

var (
	GenotypeFile = "genotype_table.csv"
	SymbolFile   = "symbol_table.csv"
	VerdictFile  = "verdicts.csv"
	KeepFile     = "keepers.csv"
	TossFile     = "losers.csv"
)

// OutputMode is the permission of committed output files.
var OutputMode os.FileMode = 0644

var VerdictTitle = []string{
	"locus",
	"verdict",
	"reason",
	"+",
	"-",
	"?",
	"error",
	"unknown",
}
