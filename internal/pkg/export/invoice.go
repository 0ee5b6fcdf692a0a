package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/report"
)

var invoiceHeader = []string{
	"Worker", "Job Title", "Days Present", "Days Absent",
	"Hours", "Hourly Rate", "Earned", "Advances", "Net",
}

// CompanyInvoiceXLSX renders the company report as an Excel workbook.
func CompanyInvoiceXLSX(r report.CompanyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Invoice"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	f.SetCellValue(sheet, "A1", r.CompanyName)
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	f.SetCellValue(sheet, "A2", fmt.Sprintf("%s report, %s to %s", r.Kind, r.PeriodStart, r.PeriodEnd))

	const headerRow = 4
	for col, title := range invoiceHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("failed to build cell name: %w", err)
		}
		f.SetCellValue(sheet, cell, title)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := headerRow + 1
	for _, w := range r.Workers {
		values := []any{
			w.Name,
			w.JobTitle,
			w.DaysPresent,
			w.DaysAbsent,
			w.TotalHours,
			w.HourlyRate.InexactFloat64(),
			w.Earned.InexactFloat64(),
			w.TotalAdvances.InexactFloat64(),
			w.NetAmount.InexactFloat64(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	row++
	totals := []any{
		"Total", "", "", "",
		r.TotalHours,
		"",
		r.TotalEarned.InexactFloat64(),
		r.TotalAdvances.InexactFloat64(),
		r.TotalNet.InexactFloat64(),
	}
	for col, v := range totals {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return nil, fmt.Errorf("failed to build cell name: %w", err)
		}
		f.SetCellValue(sheet, cell, v)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// CompanyInvoiceCSV renders the company report as CSV with the same columns
// as the workbook.
func CompanyInvoiceCSV(r report.CompanyReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(invoiceHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, ws := range r.Workers {
		record := []string{
			ws.Name,
			ws.JobTitle,
			strconv.Itoa(ws.DaysPresent),
			strconv.Itoa(ws.DaysAbsent),
			strconv.FormatFloat(ws.TotalHours, 'f', 2, 64),
			ws.HourlyRate.StringFixed(2),
			ws.Earned.StringFixed(2),
			ws.TotalAdvances.StringFixed(2),
			ws.NetAmount.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	totals := []string{
		"Total", "", "", "",
		strconv.FormatFloat(r.TotalHours, 'f', 2, 64),
		"",
		r.TotalEarned.StringFixed(2),
		r.TotalAdvances.StringFixed(2),
		r.TotalNet.StringFixed(2),
	}
	if err := w.Write(totals); err != nil {
		return nil, fmt.Errorf("failed to write csv totals: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
