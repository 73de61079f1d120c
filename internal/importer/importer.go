// Package importer parses uploaded metric files (CSV, XLS, XLSX) into
// rows and validates them against the required-column contract. Parsing
// is single-pass and in-memory; the caller decides what to do with
// invalid rows.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Row is one unvalidated record as read from the file. Columns are
// matched case-insensitively against the header row.
type Row struct {
	Revenue     string `json:"revenue"`
	Expenses    string `json:"expenses"`
	BurnRate    string `json:"burn_rate"`
	Runway      string `json:"runway"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

// Coerced is a validated row with typed fields.
type Coerced struct {
	Revenue     decimal.Decimal
	Expenses    decimal.Decimal
	BurnRate    decimal.Decimal
	Runway      int
	PeriodStart time.Time
	PeriodEnd   time.Time
}

type PreviewRow struct {
	Row
	Valid bool `json:"valid"`
}

// AllowedExtension gates files before any parsing happens.
func AllowedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".xls", ".xlsx":
		return true
	}
	return false
}

// Parse reads the whole file into ordered rows. An empty file yields
// zero rows and no error.
func Parse(filename string, r io.Reader) ([]Row, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return parseCSV(r)
	case ".xlsx":
		return parseWorkbook(r)
	case ".xls":
		return parseLegacyWorkbook(r)
	}
	return nil, fmt.Errorf("unsupported file extension %q", ext)
}

func parseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := headerIndex(header)

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if blankRecord(record) {
			continue
		}
		rows = append(rows, rowFromRecord(record, cols))
	}
	return rows, nil
}

func parseWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	return rowsFromRecords(records), nil
}

// parseLegacyWorkbook reads BIFF/OLE2 workbooks, which excelize does
// not handle.
func parseLegacyWorkbook(r io.Reader) ([]Row, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	wb, err := xls.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	sheet, err := wb.GetSheet(0)
	if err != nil {
		return nil, nil
	}

	var records [][]string
	for i := 0; i <= sheet.GetNumberRows(); i++ {
		row, err := sheet.GetRow(i)
		if err != nil {
			continue
		}
		var record []string
		for _, cell := range row.GetCols() {
			record = append(record, cell.GetString())
		}
		records = append(records, record)
	}
	return rowsFromRecords(records), nil
}

func rowsFromRecords(records [][]string) []Row {
	if len(records) == 0 {
		return nil
	}
	cols := headerIndex(records[0])

	var rows []Row
	for _, record := range records[1:] {
		if blankRecord(record) {
			continue
		}
		rows = append(rows, rowFromRecord(record, cols))
	}
	return rows
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func blankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func rowFromRecord(record []string, cols map[string]int) Row {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	return Row{
		Revenue:     cell("revenue"),
		Expenses:    cell("expenses"),
		BurnRate:    cell("burn_rate"),
		Runway:      cell("runway"),
		PeriodStart: cell("period_start"),
		PeriodEnd:   cell("period_end"),
	}
}

// Validate checks presence only: all six fields non-blank. No repair,
// no defaulting.
func (r Row) Validate() error {
	for name, v := range map[string]string{
		"revenue":      r.Revenue,
		"expenses":     r.Expenses,
		"burn_rate":    r.BurnRate,
		"runway":       r.Runway,
		"period_start": r.PeriodStart,
		"period_end":   r.PeriodEnd,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("missing required field %q", name)
		}
	}
	return nil
}

func (r Row) Coerce() (Coerced, error) {
	var c Coerced
	var err error
	if c.Revenue, err = decimal.NewFromString(strings.TrimSpace(r.Revenue)); err != nil {
		return Coerced{}, fmt.Errorf("revenue: %w", err)
	}
	if c.Expenses, err = decimal.NewFromString(strings.TrimSpace(r.Expenses)); err != nil {
		return Coerced{}, fmt.Errorf("expenses: %w", err)
	}
	if c.BurnRate, err = decimal.NewFromString(strings.TrimSpace(r.BurnRate)); err != nil {
		return Coerced{}, fmt.Errorf("burn_rate: %w", err)
	}
	if c.Runway, err = strconv.Atoi(strings.TrimSpace(r.Runway)); err != nil {
		return Coerced{}, fmt.Errorf("runway: %w", err)
	}
	if c.PeriodStart, err = ParseDate(r.PeriodStart); err != nil {
		return Coerced{}, fmt.Errorf("period_start: %w", err)
	}
	if c.PeriodEnd, err = ParseDate(r.PeriodEnd); err != nil {
		return Coerced{}, fmt.Errorf("period_end: %w", err)
	}
	return c, nil
}

var dateLayouts = []string{"2006-01-02", "2006/01/02", "01/02/2006", time.RFC3339}

func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", v)
}

// Preview returns the first n rows flagged with validity, for display
// before the upload is confirmed.
func Preview(rows []Row, n int) []PreviewRow {
	if n <= 0 {
		n = 5
	}
	if len(rows) < n {
		n = len(rows)
	}
	out := make([]PreviewRow, 0, n)
	for _, row := range rows[:n] {
		out = append(out, PreviewRow{Row: row, Valid: row.Validate() == nil})
	}
	return out
}
