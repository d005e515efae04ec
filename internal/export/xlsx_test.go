package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"telebill/internal/domain"
	"telebill/internal/port"
)

func sampleDetail() *port.InvoiceDetail {
	return &port.InvoiceDetail{
		Invoice: domain.Invoice{
			ID:             1,
			InvoiceNumber:  "670255301",
			AccountNumber:  "123456789/00001",
			Carrier:        domain.CarrierVodafone,
			InvoiceDate:    "2025-12-15",
			TotalMobiles:   2,
			TotalBeforeVAT: 105.00,
			TotalVAT:       21.00,
			TotalAmount:    126.00,
		},
		MobileLines: []domain.MobileLine{
			{MobileNumber: "07345466207", UserName: "JOHN SMITH", CostCentre: "ABC123",
				ServiceCharge: 10.00, UsageCharge: 2.50, AdditionalCharge: -1.00, TotalCharge: 11.50},
		},
		CostCentres: []domain.CostCentre{
			{Code: "ABC123", MobileCount: 2, TotalService: 30.00, TotalUsage: 2.50,
				TotalAdditional: 9.00, TotalAmount: 41.50},
		},
	}
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, sampleDetail()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Mobile Lines", "Cost Centres"}, f.GetSheetList())

	number, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "670255301", number)

	lines, err := f.GetRows("Mobile Lines")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "07345466207", lines[1][0])
	assert.Equal(t, "JOHN SMITH", lines[1][1])

	centres, err := f.GetRows("Cost Centres")
	require.NoError(t, err)
	require.Len(t, centres, 2)
	assert.Equal(t, "ABC123", centres[1][0])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "670255301", SanitizeFilename("670255301"))
	assert.Equal(t, "INV_2025_01", SanitizeFilename("INV/2025 01"))
	assert.Equal(t, "a_b", SanitizeFilename("__a///b__"))
}

func TestWorkbookFilename(t *testing.T) {
	name := WorkbookFilename("670255301")
	assert.Contains(t, name, "invoice_670255301_")
	assert.Contains(t, name, ".xlsx")
}
