package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/payroll"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/report"
)

func sampleReport() report.CompanyReport {
	return report.CompanyReport{
		Kind:        "monthly",
		PeriodStart: "2025-06-01",
		PeriodEnd:   "2025-06-30",
		CompanyName: "Worksite Ltd",
		Workers: []payroll.WorkerSummary{
			{
				Name:          "Samir",
				JobTitle:      "worker",
				DaysPresent:   20,
				DaysAbsent:    6,
				TotalHours:    160,
				HourlyRate:    decimal.RequireFromString("50"),
				Earned:        decimal.RequireFromString("8000"),
				TotalAdvances: decimal.RequireFromString("500"),
				NetAmount:     decimal.RequireFromString("7500"),
			},
		},
		TotalHours:    160,
		TotalEarned:   decimal.RequireFromString("8000"),
		TotalAdvances: decimal.RequireFromString("500"),
		TotalNet:      decimal.RequireFromString("7500"),
	}
}

func TestCompanyInvoiceXLSX(t *testing.T) {
	data, err := CompanyInvoiceXLSX(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Invoice"}, f.GetSheetList())

	name, err := f.GetCellValue("Invoice", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Worksite Ltd", name)

	workerName, err := f.GetCellValue("Invoice", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Samir", workerName)
}

func TestCompanyInvoiceCSV(t *testing.T) {
	data, err := CompanyInvoiceCSV(sampleReport())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3) // header + worker + totals
	assert.Equal(t, invoiceHeader, rows[0])
	assert.Equal(t, "Samir", rows[1][0])
	assert.Equal(t, "7500.00", rows[1][8])
	assert.Equal(t, "Total", rows[2][0])
	assert.Equal(t, "7500.00", rows[2][8])
}
