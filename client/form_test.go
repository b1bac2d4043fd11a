package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/pkg/apperr"
)

func TestItemFormDefaults(t *testing.T) {
	cat := seededCatalog(t)

	form := NewItemForm(cat)
	form.BeginAdd()

	assert.True(t, form.Open)
	assert.False(t, form.Editing())
	assert.Empty(t, form.Name)
	assert.Empty(t, form.Price)
	assert.Equal(t, "Mains", form.Category, "defaults to the first category")
	assert.Equal(t, "Kitchen", form.Department, "defaults to the first department")
}

func TestItemFormValidationKeepsInput(t *testing.T) {
	cat := seededCatalog(t)
	form := NewItemForm(cat)
	form.BeginAdd()

	form.Name = "Soup"
	form.Price = "not a number"
	form.Description = "of the day"

	err := form.Submit(context.Background())
	assert.ErrorIs(t, err, apperr.ErrValidation)

	// the dialog stays open with everything the user typed
	assert.True(t, form.Open)
	assert.Equal(t, "Soup", form.Name)
	assert.Equal(t, "not a number", form.Price)
	assert.Equal(t, "of the day", form.Description)

	form.Price = ""
	err = form.Submit(context.Background())
	assert.ErrorIs(t, err, apperr.ErrValidation)

	form.Price = "-2"
	err = form.Submit(context.Background())
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestItemFormSubmitAdd(t *testing.T) {
	cat := seededCatalog(t)
	form := NewItemForm(cat)
	form.BeginAdd()

	form.Name = "Soup"
	form.Price = "4.50"

	require.NoError(t, form.Submit(context.Background()))

	assert.False(t, form.Open, "success closes the dialog")
	assert.Empty(t, form.Name, "and resets the fields")
	assert.Len(t, cat.Items(FilterAll), 4)
}

func TestItemFormSubmitEdit(t *testing.T) {
	cat := seededCatalog(t)
	form := NewItemForm(cat)

	item := cat.Items("Drinks")[0]
	form.BeginEdit(item)
	assert.True(t, form.Editing())
	assert.Equal(t, "Cola", form.Name)
	assert.Equal(t, "2.5", form.Price)

	form.Name = "Lemonade"
	require.NoError(t, form.Submit(context.Background()))
	assert.False(t, form.Editing())

	drinks := cat.Items("Drinks")
	require.Len(t, drinks, 1)
	assert.Equal(t, item.ID, drinks[0].ID)
	assert.Equal(t, "Lemonade", drinks[0].Name)
}

func TestNameFormSubmit(t *testing.T) {
	cat := seededCatalog(t)

	form := NewCategoryForm(cat)
	form.Open = true
	form.Value = "Desserts"
	require.NoError(t, form.Submit(context.Background()))
	assert.False(t, form.Open)
	assert.Empty(t, form.Value)

	names := []string{}
	for _, c := range cat.Categories() {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Desserts")

	form.Value = "   "
	err := form.Submit(context.Background())
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSubmitInFlightGuard(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ID":1,"name":"Burger","price":"9.5"}`)
	}))
	defer srv.Close()

	cat := NewCatalog(New(srv.URL))
	form := NewItemForm(cat)
	form.Name = "Burger"
	form.Price = "9.50"

	done := make(chan error, 1)
	go func() { done <- form.Submit(context.Background()) }()
	<-started

	// a second submit while the first is still on the wire is refused
	err := form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Len(t, cat.Items(FilterAll), 1)
}
