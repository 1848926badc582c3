package main

const (
	UnknownKeep  = "unknown"
	UnknownError = "error"
)

var (
	Rule = "-----------------------"

	UndeterminedNote = "This run classified BlastN_wrongTE genotypes as ?'s, BadMatches as ?'s and shorties as ?'s"

	SummaryTitle = []string{
		"reason",
		"count",
	}

	// sheet names of the xlsx workbook
	GenotypeSheet = "genotype"
	SimpleSheet   = "simple"
	VerdictSheet  = "verdict"
	SummarySheet  = "summary"
)
