package client

import (
	"context"
	"strings"

	"pos/entity"
	"pos/pkg/apperr"
	"pos/services"
)

// FilterAll is the sentinel category filter that selects every item.
const FilterAll = "All"

// Catalog is the menu screen's session store: the in-memory copy of
// items, categories, and departments, kept in step with the server
// through the client. It lives on the single UI goroutine and is not
// safe for concurrent use.
type Catalog struct {
	client      *Client
	items       []entity.MenuItem
	categories  []entity.Category
	departments []entity.Department
}

func NewCatalog(c *Client) *Catalog {
	return &Catalog{client: c}
}

// Reload refetches the full catalog from the authoritative store.
func (s *Catalog) Reload(ctx context.Context) error {
	items, err := s.client.ListMenuItems(ctx, "")
	if err != nil {
		return err
	}
	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		return err
	}
	departments, err := s.client.ListDepartments(ctx)
	if err != nil {
		return err
	}
	s.items = items
	s.categories = categories
	s.departments = departments
	return nil
}

// Items returns the current items in insertion order. FilterAll (or
// the empty string) selects everything; any other filter is an exact,
// case-sensitive match on the category name.
func (s *Catalog) Items(filter string) []entity.MenuItem {
	if filter == "" || filter == FilterAll {
		out := make([]entity.MenuItem, len(s.items))
		copy(out, s.items)
		return out
	}
	out := []entity.MenuItem{}
	for _, item := range s.items {
		if item.Category == filter {
			out = append(out, item)
		}
	}
	return out
}

func (s *Catalog) Categories() []entity.Category {
	out := make([]entity.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Catalog) Departments() []entity.Department {
	out := make([]entity.Department, len(s.departments))
	copy(out, s.departments)
	return out
}

func validateDraft(d services.ItemDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return apperr.Validation("item name is required")
	}
	if d.Price.IsNegative() {
		return apperr.Validation("price must be non-negative")
	}
	return nil
}

// AddItem validates the draft, creates the item on the server, and
// appends it locally. The local list is untouched on any failure.
func (s *Catalog) AddItem(ctx context.Context, draft services.ItemDraft) (*entity.MenuItem, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	item, err := s.client.CreateMenuItem(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.items = append(s.items, *item)
	return item, nil
}

// UpdateItem replaces the mutable fields of an existing item; the
// identity is preserved.
func (s *Catalog) UpdateItem(ctx context.Context, id uint, draft services.ItemDraft) (*entity.MenuItem, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	idx := s.indexOfItem(id)
	if idx < 0 {
		return nil, apperr.NotFound("menu item")
	}
	item, err := s.client.UpdateMenuItem(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	s.items[idx] = *item
	return item, nil
}

// RemoveItem deletes by identity. An absent id is an explicit
// NotFound, never a silent success, and leaves the list unchanged.
func (s *Catalog) RemoveItem(ctx context.Context, id uint) error {
	idx := s.indexOfItem(id)
	if idx < 0 {
		return apperr.NotFound("menu item")
	}
	if err := s.client.DeleteMenuItem(ctx, id); err != nil {
		return err
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return nil
}

func (s *Catalog) indexOfItem(id uint) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Catalog) AddCategory(ctx context.Context, name string) (*entity.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("category name is required")
	}
	cat, err := s.client.CreateCategory(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	s.categories = append(s.categories, *cat)
	return cat, nil
}

// RemoveCategory applies the reference policy before calling out: a
// category still referenced by items is refused unless force is set,
// in which case the server reassigns those items to Unassigned and the
// local copies follow.
func (s *Catalog) RemoveCategory(ctx context.Context, id uint, force bool) error {
	idx := -1
	for i := range s.categories {
		if s.categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperr.NotFound("category")
	}
	name := s.categories[idx].Name

	if !force {
		var count int64
		for _, item := range s.items {
			if item.Category == name {
				count++
			}
		}
		if count > 0 {
			return &apperr.ReferenceInUse{Kind: "category", Name: name, Count: count}
		}
	}

	if err := s.client.DeleteCategory(ctx, id, force); err != nil {
		return err
	}
	for i := range s.items {
		if s.items[i].Category == name {
			s.items[i].Category = services.Unassigned
		}
	}
	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	return nil
}

func (s *Catalog) AddDepartment(ctx context.Context, name string) (*entity.Department, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("department name is required")
	}
	dep, err := s.client.CreateDepartment(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	s.departments = append(s.departments, *dep)
	return dep, nil
}

func (s *Catalog) RemoveDepartment(ctx context.Context, id uint, force bool) error {
	idx := -1
	for i := range s.departments {
		if s.departments[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperr.NotFound("department")
	}
	name := s.departments[idx].Name

	if !force {
		var count int64
		for _, item := range s.items {
			if item.Department == name {
				count++
			}
		}
		if count > 0 {
			return &apperr.ReferenceInUse{Kind: "department", Name: name, Count: count}
		}
	}

	if err := s.client.DeleteDepartment(ctx, id, force); err != nil {
		return err
	}
	for i := range s.items {
		if s.items[i].Department == name {
			s.items[i].Department = services.Unassigned
		}
	}
	s.departments = append(s.departments[:idx], s.departments[idx+1:]...)
	return nil
}

// CategoryStats counts the items under each category in one grouping
// pass. Recomputed on every call; the screen renders from the result.
func (s *Catalog) CategoryStats() []services.NameStat {
	counts := make(map[string]int64, len(s.categories))
	for _, item := range s.items {
		counts[item.Category]++
	}
	stats := make([]services.NameStat, 0, len(s.categories))
	for _, cat := range s.categories {
		stats = append(stats, services.NameStat{Name: cat.Name, Count: counts[cat.Name]})
	}
	return stats
}

func (s *Catalog) DepartmentStats() []services.NameStat {
	counts := make(map[string]int64, len(s.departments))
	for _, item := range s.items {
		counts[item.Department]++
	}
	stats := make([]services.NameStat, 0, len(s.departments))
	for _, dep := range s.departments {
		stats = append(stats, services.NameStat{Name: dep.Name, Count: counts[dep.Name]})
	}
	return stats
}

// Import sends the file to the import endpoint. On success the whole
// catalog is reloaded from the authoritative store rather than merged
// incrementally; on failure nothing local changes.
func (s *Catalog) Import(ctx context.Context, filename string, data []byte) (*services.ImportResult, error) {
	result, err := s.client.ImportData(ctx, filename, data)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return result, nil
	}
	if err := s.Reload(ctx); err != nil {
		return result, err
	}
	return result, nil
}
