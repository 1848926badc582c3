package main

import (
	"io"

	"github.com/liserjrqlxue/goUtil/fmtUtil"

	"teGenotype/pkg/locus"
)

// PrintSummary writes the reason tally and the run's filtering settings.
func PrintSummary(w io.Writer, result *locus.Result, maxQ int) {
	fmtUtil.Fprintln(w, Rule)
	fmtUtil.Fprintln(w, "Summary of final decisions below:")
	fmtUtil.FprintStringArray(w, SummaryTitle, "\t")
	for _, rc := range result.Summary() {
		fmtUtil.Fprintf(w, "%s\t%d\n", rc.Reason, rc.Count)
	}
	fmtUtil.Fprintf(w, "\nThis run allowed %d species with undetermined genotypes.\n", maxQ)
	fmtUtil.Fprintf(w, "    %s\n", UndeterminedNote)
	fmtUtil.Fprintln(w, Rule)
	fmtUtil.Fprintln(w, "finished.")
}
