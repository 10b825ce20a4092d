package ledger

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Workbook layout: three named sheets, a header row, then data rows in fixed
// column order. A blank value in the key column (Customer_ID or
// Transaction_ID) marks end-of-data on that sheet.
const (
	sheetOperations = "Operations"
	sheetRevenue    = "Revenue"
	sheetExpenses   = "Expenses"

	dateLayout = "2006-01-02"
)

var (
	operationsHeader = []interface{}{
		"Customer_ID", "Customer_Name", "Service_Date", "Week_Number", "Month",
		"Service_Completed", "Service_Type", "Notes", "Status",
	}
	revenueHeader = []interface{}{
		"Transaction_Id", "Customer_id", "Service_Date", "Month", "Service_Type",
		"Amount", "Payment_Status", "Payment_Method", "Status", "Week_Number",
	}
	expensesHeader = []interface{}{
		"Transaction_ID", "Date", "Month", "Category", "Description",
		"Amount", "Supplier", "Status", "Notes",
	}
)

// EncodeWorkbook serializes a snapshot to xlsx bytes.
func EncodeWorkbook(snap *Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetOperations); err != nil {
		return nil, fmt.Errorf("EncodeWorkbook: rename default sheet: %w", err)
	}
	for _, name := range []string{sheetRevenue, sheetExpenses} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("EncodeWorkbook: create sheet %s: %w", name, err)
		}
	}

	if err := writeRows(f, sheetOperations, operationsHeader, len(snap.Operations), func(i int) []interface{} {
		op := snap.Operations[i]
		return []interface{}{
			op.CustomerID, op.CustomerName, op.ServiceDate.String(), op.WeekNumber,
			op.Month, op.ServiceCompleted, op.ServiceType, op.Notes, op.Status,
		}
	}); err != nil {
		return nil, err
	}

	if err := writeRows(f, sheetRevenue, revenueHeader, len(snap.Revenue), func(i int) []interface{} {
		rev := snap.Revenue[i]
		return []interface{}{
			rev.TransactionID, rev.CustomerID, rev.ServiceDate.String(), rev.Month,
			rev.ServiceType, rev.Amount.String(), rev.PaymentStatus, rev.PaymentMethod,
			rev.Status, rev.WeekNumber,
		}
	}); err != nil {
		return nil, err
	}

	if err := writeRows(f, sheetExpenses, expensesHeader, len(snap.Expenses), func(i int) []interface{} {
		exp := snap.Expenses[i]
		return []interface{}{
			exp.TransactionID, exp.Date.String(), exp.Month, exp.Category,
			exp.Description, exp.Amount.String(), exp.Supplier, exp.Status, exp.Notes,
		}
	}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("EncodeWorkbook: write buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, header []interface{}, n int, row func(int) []interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writeRows: %s header: %w", sheet, err)
	}
	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("writeRows: %s row %d: %w", sheet, i+2, err)
		}
		values := row(i)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writeRows: %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

// DecodeWorkbook parses xlsx bytes back into a snapshot, applying the
// defaulting rules the record model applies to blank cells.
func DecodeWorkbook(data []byte) (*Snapshot, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("DecodeWorkbook: open workbook: %w", err)
	}
	defer f.Close()

	snap := &Snapshot{}

	opRows, err := dataRows(f, sheetOperations)
	if err != nil {
		return nil, err
	}
	for _, row := range opRows {
		snap.Operations = append(snap.Operations, domain.Operation{
			CustomerID:       cell(row, 0),
			CustomerName:     cell(row, 1),
			ServiceDate:      parseDate(cell(row, 2)),
			WeekNumber:       parseIntDefault(cell(row, 3), 1),
			Month:            cell(row, 4),
			ServiceCompleted: orDefault(cell(row, 5), domain.ServiceCompletedNo),
			ServiceType:      cell(row, 6),
			Notes:            cell(row, 7),
			Status:           orDefault(cell(row, 8), "Pending"),
		})
	}

	revRows, err := dataRows(f, sheetRevenue)
	if err != nil {
		return nil, err
	}
	for _, row := range revRows {
		snap.Revenue = append(snap.Revenue, domain.Revenue{
			TransactionID: cell(row, 0),
			CustomerID:    cell(row, 1),
			ServiceDate:   parseDate(cell(row, 2)),
			Month:         cell(row, 3),
			ServiceType:   cell(row, 4),
			Amount:        parseAmount(cell(row, 5)),
			PaymentStatus: orDefault(cell(row, 6), domain.PaymentStatusUnpaid),
			PaymentMethod: orDefault(cell(row, 7), "Cash"),
			Status:        orDefault(cell(row, 8), "Pending"),
			WeekNumber:    parseIntDefault(cell(row, 9), 1),
		})
	}

	expRows, err := dataRows(f, sheetExpenses)
	if err != nil {
		return nil, err
	}
	for _, row := range expRows {
		snap.Expenses = append(snap.Expenses, domain.Expense{
			TransactionID: cell(row, 0),
			Date:          parseDate(cell(row, 1)),
			Month:         cell(row, 2),
			Category:      orDefault(cell(row, 3), domain.CategoryOther),
			Description:   cell(row, 4),
			Amount:        parseAmount(cell(row, 5)),
			Supplier:      cell(row, 6),
			Status:        orDefault(cell(row, 7), "Pending"),
			Notes:         cell(row, 8),
		})
	}

	return snap, nil
}

// dataRows returns a sheet's rows after the header, stopping at the first
// row with a blank key column.
func dataRows(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("dataRows: %s: %w", sheet, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	var out [][]string
	for _, row := range rows[1:] {
		if cell(row, 0) == "" {
			break
		}
		out = append(out, row)
	}
	return out, nil
}

// cell reads column i of a row; excelize trims trailing empty cells, so
// missing columns read as blank.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func parseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseDate accepts the canonical layout plus the formats spreadsheet tools
// tend to rewrite dates into. Unparseable cells yield the zero date.
func parseDate(s string) civil.Date {
	for _, layout := range []string{dateLayout, "2006-01-02 15:04:05", "01-02-06", "1/2/06 15:04", "2006/01/02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.DateOf(t)
		}
	}
	return civil.Date{}
}
