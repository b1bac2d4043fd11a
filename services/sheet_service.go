// services/sheet_service.go
package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// CSV row types. Categories and departments are processed before items
// so an item row can never reference a name the file itself defines
// later on.
const (
	rowCategory   = "category"
	rowDepartment = "department"
	rowItem       = "item"
)

var sheetHeader = []string{"type", "name", "price", "category", "department", "description"}

type ImportStats struct {
	CategoriesAdded  int      `json:"categories_added"`
	DepartmentsAdded int      `json:"departments_added"`
	ItemsAdded       int      `json:"items_added"`
	Errors           []string `json:"errors"`
}

type ImportResult struct {
	Success bool        `json:"success"`
	Stats   ImportStats `json:"stats"`
}

// SheetService is the spreadsheet boundary: CSV template, full catalog
// export, and bulk import with reconciliation.
type SheetService struct {
	Catalog *CatalogService
}

func NewSheetService(catalog *CatalogService) *SheetService {
	return &SheetService{Catalog: catalog}
}

func (s *SheetService) Template() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{
		sheetHeader,
		{rowCategory, "Mains", "", "", "", ""},
		{rowDepartment, "Kitchen", "", "", "", ""},
		{rowItem, "Classic Burger", "259", "Mains", "Kitchen", "Beef patty with lettuce"},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Export snapshots the whole catalog: categories first, then
// departments, then items, so the file re-imports cleanly.
func (s *SheetService) Export() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(sheetHeader); err != nil {
		return nil, err
	}

	cats, err := s.Catalog.ListCategories()
	if err != nil {
		return nil, err
	}
	for _, cat := range cats {
		if err := w.Write([]string{rowCategory, cat.Name, "", "", "", ""}); err != nil {
			return nil, err
		}
	}

	deps, err := s.Catalog.ListDepartments()
	if err != nil {
		return nil, err
	}
	for _, dep := range deps {
		if err := w.Write([]string{rowDepartment, dep.Name, "", "", "", ""}); err != nil {
			return nil, err
		}
	}

	items, err := s.Catalog.ListItems("All")
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		row := []string{rowItem, item.Name, item.Price.String(), item.Category, item.Department, item.Description}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

type sheetRow struct {
	line   int // 1-based file line, header is line 1
	fields []string
}

// Import reconciles a CSV upload against the catalog. Categories and
// departments are created in a first pass (existing names are skipped,
// never duplicated); item rows run second and are rejected with a row
// error when they reference a name unknown after the first pass.
// A malformed file fails whole with no catalog mutation.
func (s *SheetService) Import(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return &ImportResult{Success: false, Stats: ImportStats{Errors: []string{"unreadable CSV file"}}}, nil
	}
	if len(records) == 0 || !headerMatches(records[0]) {
		return &ImportResult{Success: false, Stats: ImportStats{Errors: []string{"missing or invalid header row"}}}, nil
	}

	var rows []sheetRow
	for i, rec := range records[1:] {
		if isBlankRow(rec) {
			continue
		}
		rows = append(rows, sheetRow{line: i + 2, fields: rec})
	}

	stats := ImportStats{Errors: []string{}}
	known := map[string]map[string]bool{rowCategory: {}, rowDepartment: {}}

	cats, err := s.Catalog.ListCategories()
	if err != nil {
		return nil, err
	}
	for _, cat := range cats {
		known[rowCategory][cat.Name] = true
	}
	deps, err := s.Catalog.ListDepartments()
	if err != nil {
		return nil, err
	}
	for _, dep := range deps {
		known[rowDepartment][dep.Name] = true
	}

	// Pass 1: categories and departments.
	for _, row := range rows {
		kind := strings.ToLower(strings.TrimSpace(field(row.fields, 0)))
		if kind != rowCategory && kind != rowDepartment {
			continue
		}
		name := strings.TrimSpace(field(row.fields, 1))
		if name == "" {
			stats.Errors = append(stats.Errors, fmt.Sprintf("row %d: %s name is required", row.line, kind))
			continue
		}
		if known[kind][name] {
			continue
		}
		var createErr error
		if kind == rowCategory {
			_, createErr = s.Catalog.AddCategory(name)
		} else {
			_, createErr = s.Catalog.AddDepartment(name)
		}
		if createErr != nil {
			stats.Errors = append(stats.Errors, fmt.Sprintf("row %d: %v", row.line, createErr))
			continue
		}
		known[kind][name] = true
		if kind == rowCategory {
			stats.CategoriesAdded++
		} else {
			stats.DepartmentsAdded++
		}
	}

	// Pass 2: items.
	for _, row := range rows {
		kind := strings.ToLower(strings.TrimSpace(field(row.fields, 0)))
		switch kind {
		case rowCategory, rowDepartment:
			continue
		case rowItem:
		default:
			stats.Errors = append(stats.Errors, fmt.Sprintf("row %d: unknown row type %q", row.line, field(row.fields, 0)))
			continue
		}

		name := strings.TrimSpace(field(row.fields, 1))
		if name == "" {
			stats.Errors = append(stats.Errors, fmt.Sprintf("row %d: item name is required", row.line))
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(field(row.fields, 2)))
		if err != nil || price.IsNegative() {
			stats.Errors = append(stats.Errors, fmt.Sprintf("row %d: invalid price %q", row.line, field(row.fields, 2)))
			continue
		}
		category := strings.TrimSpace(field(row.fields, 3))
		department := strings.TrimSpace(field(row.fields, 4))
		if category != "" && !known[rowCategory][category] {
			stats.Errors = append(stats.Errors, fmt.Sprintf("row %d: unknown category %q", row.line, category))
			continue
		}
		if department != "" && !known[rowDepartment][department] {
			stats.Errors = append(stats.Errors, fmt.Sprintf("row %d: unknown department %q", row.line, department))
			continue
		}

		draft := ItemDraft{
			Name:        name,
			Price:       price,
			Category:    category,
			Department:  department,
			Description: strings.TrimSpace(field(row.fields, 5)),
		}
		if _, err := s.Catalog.AddItem(draft); err != nil {
			stats.Errors = append(stats.Errors, fmt.Sprintf("row %d: %v", row.line, err))
			continue
		}
		stats.ItemsAdded++
	}

	return &ImportResult{Success: true, Stats: stats}, nil
}

func headerMatches(rec []string) bool {
	if len(rec) != len(sheetHeader) {
		return false
	}
	for i, h := range sheetHeader {
		if !strings.EqualFold(strings.TrimSpace(rec[i]), h) {
			return false
		}
	}
	return true
}

func isBlankRow(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return rec[i]
}
