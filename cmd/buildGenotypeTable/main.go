package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"
	"github.com/liserjrqlxue/version"
	"github.com/samber/lo"

	"teGenotype/pkg/locus"
	"teGenotype/pkg/table"
)

// flag
var (
	samples = flag.String(
		"s",
		"",
		"list of fasta files to process, one file per line",
	)
	outputDir = flag.String(
		"o",
		".",
		"output dir",
	)
	xlsxPath = flag.String(
		"x",
		"",
		"optional xlsx workbook with all tables",
	)
	maxQ = flag.Int(
		"maxQ",
		0,
		"species with undetermined genotypes allowed per locus",
	)
	threads = flag.Int(
		"t",
		1,
		"fasta files decoded in parallel",
	)
	unknown = flag.String(
		"unknown",
		UnknownKeep,
		"BlastN call with unrecognized detail: "+UnknownKeep+" or "+UnknownError,
	)
	verbose = flag.Bool(
		"v",
		false,
		"debug log",
	)
)

func init() {
	flag.StringVar(samples, "samples", "", "alias of -s")
}

func main() {
	version.LogVersion()
	flag.Parse()
	if *samples == "" {
		flag.PrintDefaults()
		log.Fatal("-s is required")
	}
	if err := CheckOptions(*unknown, *maxQ); err != nil {
		flag.PrintDefaults()
		log.Fatal(err)
	}
	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	var (
		paths = SampleList(textUtil.File2Array(*samples))
		opt   = locus.Options{UnknownAsError: *unknown == UnknownError}

		classifier = locus.Classifier{MaxUndetermined: *maxQ}
	)
	slog.Info("samples", "list", *samples, "count", len(paths))

	agg := simpleUtil.HandleError(locus.Load(context.Background(), paths, *threads, opt))
	slog.Info("loaded", "loci", agg.Len(), "species", len(agg.Species()))

	var (
		gt     = agg.GenotypeTable()
		st     = agg.SymbolTable()
		result = simpleUtil.HandleError(classifier.Classify(st))
	)

	simpleUtil.CheckErr(os.MkdirAll(*outputDir, 0755))
	for _, path := range simpleUtil.HandleError(table.WriteAll(*outputDir, gt, st, result)) {
		log.Printf("Write(%s)", path)
	}

	if *xlsxPath != "" {
		if filepath.Dir(*xlsxPath) != "." {
			simpleUtil.CheckErr(os.MkdirAll(filepath.Dir(*xlsxPath), 0755))
		}
		xlsx := NewWorkbook(gt, st, result)
		log.Printf("SaveAs(%s)", *xlsxPath)
		simpleUtil.CheckErr(xlsx.SaveAs(*xlsxPath))
	}

	PrintSummary(os.Stdout, result, *maxQ)
}

// CheckOptions validates the flags that have a closed range.
func CheckOptions(unknown string, maxQ int) error {
	if unknown != UnknownKeep && unknown != UnknownError {
		return fmt.Errorf("-unknown must be %s or %s, got %q", UnknownKeep, UnknownError, unknown)
	}
	if maxQ < 0 {
		return fmt.Errorf("-maxQ must be >= 0, got %d", maxQ)
	}
	return nil
}

// SampleList trims lines and drops blank and '#' comment lines.
func SampleList(lines []string) []string {
	return lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		return line, line != "" && !strings.HasPrefix(line, "#")
	})
}
