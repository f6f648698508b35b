package reporting

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX renders the period's summary as a spreadsheet: a Summary
// sheet with the headline figures and the grade distribution, and a
// Trends sheet with one row per day.
func (svc *Service) WriteXLSX(ctx context.Context, period Period, w io.Writer) error {
	summary, err := svc.Summarize(ctx, period)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const summarySheet = "Summary"
	if err = f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return errors.Wrap(err, "renaming sheet")
	}
	rows := [][]interface{}{
		{"Period", string(summary.Period)},
		{"Total Students", summary.TotalStudents},
		{"Active Students", summary.ActiveStudents},
		{"Average Attendance (%)", summary.AverageAttendance},
		{"Average Grade (%)", summary.AverageGrade},
		{},
		{"Letter", "Count"},
		{"A", summary.Distribution.A},
		{"B", summary.Distribution.B},
		{"C", summary.Distribution.C},
		{"D", summary.Distribution.D},
		{"F", summary.Distribution.F},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err = f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return errors.Wrap(err, "writing summary row")
		}
	}

	const trendsSheet = "Trends"
	if _, err = f.NewSheet(trendsSheet); err != nil {
		return errors.Wrap(err, "adding trends sheet")
	}
	header := []interface{}{"Date", "Present", "Absent", "Tardy", "Total"}
	if err = f.SetSheetRow(trendsSheet, "A1", &header); err != nil {
		return errors.Wrap(err, "writing trends header")
	}
	for i, pt := range summary.Trends {
		row := []interface{}{pt.Date.String(), pt.Present, pt.Absent, pt.Tardy, pt.Total}
		cell := fmt.Sprintf("A%d", i+2)
		if err = f.SetSheetRow(trendsSheet, cell, &row); err != nil {
			return errors.Wrap(err, "writing trends row")
		}
	}

	if err = f.Write(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}
