package main

import (
	"strconv"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"

	"teGenotype/pkg/locus"
	"teGenotype/pkg/table"
)

func CoordinatesToCellName(col int, row int, abs ...bool) string {
	return simpleUtil.HandleError(
		excelize.CoordinatesToCellName(
			col, row, abs...,
		),
	)
}

// WriteSliceSheet writes title at A1 and one record per row below it.
func WriteSliceSheet(xlsx *excelize.File, sheet string, title []string, records [][]string) {
	simpleUtil.HandleError(xlsx.NewSheet(sheet))
	simpleUtil.CheckErr(xlsx.SetSheetRow(sheet, "A1", &title))

	for i, record := range records {
		simpleUtil.CheckErr(xlsx.SetSheetRow(sheet, CoordinatesToCellName(1, i+2), &record))
	}
}

func addSummary(xlsx *excelize.File, sheet string, result *locus.Result) {
	simpleUtil.HandleError(xlsx.NewSheet(sheet))
	simpleUtil.CheckErr(xlsx.SetSheetRow(sheet, "A1", &SummaryTitle))

	for i, rc := range result.Summary() {
		simpleUtil.CheckErr(xlsx.SetSheetRow(sheet, "A"+strconv.Itoa(i+2), &[]any{rc.Reason.String(), rc.Count}))
	}
}

// NewWorkbook collects every table of a run into one workbook.
func NewWorkbook(gt *locus.GenotypeTable, st *locus.SymbolTable, result *locus.Result) *excelize.File {
	var xlsx = excelize.NewFile()

	WriteSliceSheet(xlsx, GenotypeSheet, gt.Header(), gt.Records())
	WriteSliceSheet(xlsx, SimpleSheet, st.Header(), st.Records())
	WriteSliceSheet(xlsx, VerdictSheet, table.VerdictTitle, table.VerdictRecords(result))
	addSummary(xlsx, SummarySheet, result)

	simpleUtil.CheckErr(xlsx.DeleteSheet("Sheet1"))
	xlsx.SetActiveSheet(simpleUtil.HandleError(xlsx.GetSheetIndex(GenotypeSheet)))
	return xlsx
}
