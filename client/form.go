package client

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"pos/entity"
	"pos/pkg/apperr"
	"pos/services"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission is still pending; one save per user intent.
var ErrSubmitInFlight = apperr.Validation("a save is already in progress")

// ItemForm is the add/edit dialog's state. Field values are the raw
// strings the user typed; Submit parses and validates them, saves
// through the catalog, and resets to defaults on success. On failure
// the dialog stays open with the entered values intact.
type ItemForm struct {
	catalog *Catalog

	Name        string
	Price       string
	Category    string
	Department  string
	Description string

	Open      bool
	editingID uint
	editing   bool
	inFlight  sync.Mutex
}

func NewItemForm(catalog *Catalog) *ItemForm {
	f := &ItemForm{catalog: catalog}
	f.Reset()
	return f
}

// Reset restores the default field values: first available category
// and department, blanks elsewhere.
func (f *ItemForm) Reset() {
	f.Name = ""
	f.Price = ""
	f.Description = ""
	f.Category = ""
	f.Department = ""
	if cats := f.catalog.Categories(); len(cats) > 0 {
		f.Category = cats[0].Name
	}
	if deps := f.catalog.Departments(); len(deps) > 0 {
		f.Department = deps[0].Name
	}
	f.editing = false
	f.editingID = 0
}

func (f *ItemForm) BeginAdd() {
	f.Reset()
	f.Open = true
}

func (f *ItemForm) BeginEdit(item entity.MenuItem) {
	f.Name = item.Name
	f.Price = item.Price.String()
	f.Category = item.Category
	f.Department = item.Department
	f.Description = item.Description
	f.editingID = item.ID
	f.editing = true
	f.Open = true
}

func (f *ItemForm) Editing() bool { return f.editing }

// Submit saves the form. A second call while a request is pending is
// refused outright so a double click can't issue a duplicate save.
func (f *ItemForm) Submit(ctx context.Context) error {
	if !f.inFlight.TryLock() {
		return ErrSubmitInFlight
	}
	defer f.inFlight.Unlock()

	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Price) == "" {
		return apperr.Validation("please fill in all required fields")
	}
	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil || price.IsNegative() {
		return apperr.Validation("please enter a valid price")
	}

	draft := services.ItemDraft{
		Name:        strings.TrimSpace(f.Name),
		Price:       price,
		Category:    f.Category,
		Department:  f.Department,
		Description: f.Description,
	}

	if f.editing {
		_, err = f.catalog.UpdateItem(ctx, f.editingID, draft)
	} else {
		_, err = f.catalog.AddItem(ctx, draft)
	}
	if err != nil {
		return err
	}

	f.Open = false
	f.Reset()
	return nil
}

// NameForm backs the two single-field dialogs (add department, add
// category).
type NameForm struct {
	catalog *Catalog
	kind    string // "category" or "department"

	Value    string
	Open     bool
	inFlight sync.Mutex
}

func NewCategoryForm(catalog *Catalog) *NameForm {
	return &NameForm{catalog: catalog, kind: "category"}
}

func NewDepartmentForm(catalog *Catalog) *NameForm {
	return &NameForm{catalog: catalog, kind: "department"}
}

func (f *NameForm) Submit(ctx context.Context) error {
	if !f.inFlight.TryLock() {
		return ErrSubmitInFlight
	}
	defer f.inFlight.Unlock()

	var err error
	if f.kind == "category" {
		_, err = f.catalog.AddCategory(ctx, f.Value)
	} else {
		_, err = f.catalog.AddDepartment(ctx, f.Value)
	}
	if err != nil {
		return err
	}

	f.Value = ""
	f.Open = false
	return nil
}
