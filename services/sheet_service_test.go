package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSheet(t *testing.T) (*SheetService, *CatalogService) {
	t.Helper()
	catalog := newTestCatalog(t)
	return NewSheetService(catalog), catalog
}

func TestImport(t *testing.T) {
	sheet, catalog := newTestSheet(t)

	csv := strings.Join([]string{
		"type,name,price,category,department,description",
		"category,Mains,,,,",
		"department,Kitchen,,,,",
		"item,Classic Burger,259,Mains,Kitchen,Beef patty",
		"item,Margherita Pizza,299,Mains,Kitchen,",
		"item,Fish & Chips,319,Mains,Kitchen,",
	}, "\n")

	result, err := sheet.Import(strings.NewReader(csv))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Stats.CategoriesAdded)
	assert.Equal(t, 1, result.Stats.DepartmentsAdded)
	assert.Equal(t, 3, result.Stats.ItemsAdded)
	assert.Empty(t, result.Stats.Errors)

	items, err := catalog.ListItems("All")
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestImportItemsBeforeDefinitions(t *testing.T) {
	// Item rows may appear before the category/department rows that
	// define their names; definitions are processed first regardless.
	sheet, _ := newTestSheet(t)

	csv := strings.Join([]string{
		"type,name,price,category,department,description",
		"item,Classic Burger,259,Mains,Kitchen,",
		"category,Mains,,,,",
		"department,Kitchen,,,,",
	}, "\n")

	result, err := sheet.Import(strings.NewReader(csv))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Stats.ItemsAdded)
	assert.Empty(t, result.Stats.Errors)
}

func TestImportRowErrors(t *testing.T) {
	sheet, catalog := newTestSheet(t)
	_, err := catalog.AddCategory("Mains")
	require.NoError(t, err)
	_, err = catalog.AddDepartment("Kitchen")
	require.NoError(t, err)

	csv := strings.Join([]string{
		"type,name,price,category,department,description",
		"item,,100,Mains,Kitchen,",          // blank name
		"item,Burger,abc,Mains,Kitchen,",    // bad price
		"item,Burger,-5,Mains,Kitchen,",     // negative price
		"item,Pasta,279,Unknown,Kitchen,",   // unknown category
		"item,Pasta,279,Mains,Warehouse,",   // unknown department
		"snack,Chips,50,,,",                 // unknown row type
		"item,Good Burger,259,Mains,Kitchen,ok",
	}, "\n")

	result, err := sheet.Import(strings.NewReader(csv))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Stats.ItemsAdded)
	require.Len(t, result.Stats.Errors, 6)
	// errors carry the file row and arrive in input order
	assert.Contains(t, result.Stats.Errors[0], "row 2")
	assert.Contains(t, result.Stats.Errors[3], `unknown category "Unknown"`)
	assert.Contains(t, result.Stats.Errors[4], `unknown department "Warehouse"`)
	assert.Contains(t, result.Stats.Errors[5], `unknown row type "snack"`)

	items, err := catalog.ListItems("All")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Good Burger", items[0].Name)
}

func TestImportExistingNamesSkipped(t *testing.T) {
	sheet, catalog := newTestSheet(t)
	_, err := catalog.AddCategory("Mains")
	require.NoError(t, err)

	csv := strings.Join([]string{
		"type,name,price,category,department,description",
		"category,Mains,,,,",
		"category,Salads,,,,",
	}, "\n")

	result, err := sheet.Import(strings.NewReader(csv))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Stats.CategoriesAdded, "existing names are skipped, not errors")
	assert.Empty(t, result.Stats.Errors)
}

func TestImportMalformedFile(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty file", ""},
		{"wrong header", "foo,bar\n1,2"},
		{"ragged quoting", "type,name,price,category,department,description\n\"unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, catalog := newTestSheet(t)

			result, err := sheet.Import(strings.NewReader(tt.body))
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Zero(t, result.Stats.ItemsAdded)

			items, err := catalog.ListItems("All")
			require.NoError(t, err)
			assert.Empty(t, items, "a malformed file must not mutate the catalog")
		})
	}
}

func TestExportRoundTrip(t *testing.T) {
	sheet, catalog := newTestSheet(t)
	_, err := catalog.AddCategory("Mains")
	require.NoError(t, err)
	_, err = catalog.AddDepartment("Kitchen")
	require.NoError(t, err)
	_, err = catalog.AddItem(draft("Burger", 259, "Mains", "Kitchen"))
	require.NoError(t, err)

	blob, err := sheet.Export()
	require.NoError(t, err)
	assert.Contains(t, string(blob), "category,Mains")
	assert.Contains(t, string(blob), "department,Kitchen")
	assert.Contains(t, string(blob), "item,Burger,259,Mains,Kitchen,")

	// an export imports cleanly into an empty catalog
	sheet2, catalog2 := newTestSheet(t)
	result, err := sheet2.Import(strings.NewReader(string(blob)))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Stats.Errors)
	assert.Equal(t, 1, result.Stats.ItemsAdded)

	items, err := catalog2.ListItems("All")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Burger", items[0].Name)
}

func TestTemplateHasHeader(t *testing.T) {
	sheet, _ := newTestSheet(t)

	blob, err := sheet.Template()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(blob), "type,name,price,category,department,description"))
}
