// services/catalog_service.go
package services

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pos/entity"
	"pos/pkg/apperr"
	"pos/repository"
)

// Unassigned is the sentinel category/department given to items whose
// category or department was force-deleted.
const Unassigned = "Unassigned"

// ItemDraft carries the user-entered fields of an add/edit submission.
type ItemDraft struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Department  string          `json:"department"`
	Description string          `json:"description"`
}

type NameStat struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// CatalogService owns the menu catalog: items, categories, departments,
// and the delete policy that keeps item references from dangling.
type CatalogService struct {
	Items       *repository.MenuItemRepository
	Categories  *repository.CategoryRepository
	Departments *repository.DepartmentRepository
}

func NewCatalogService(items *repository.MenuItemRepository, cats *repository.CategoryRepository, deps *repository.DepartmentRepository) *CatalogService {
	return &CatalogService{Items: items, Categories: cats, Departments: deps}
}

func (s *CatalogService) ListItems(category string) ([]entity.MenuItem, error) {
	return s.Items.FindAll(category)
}

func validateDraft(d *ItemDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return apperr.Validation("item name is required")
	}
	if d.Price.IsNegative() {
		return apperr.Validation("price must be non-negative")
	}
	return nil
}

func (s *CatalogService) AddItem(d ItemDraft) (*entity.MenuItem, error) {
	if err := validateDraft(&d); err != nil {
		return nil, err
	}
	item := entity.MenuItem{
		Name:        d.Name,
		Price:       d.Price,
		Category:    d.Category,
		Department:  d.Department,
		Description: d.Description,
	}
	if err := s.Items.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CatalogService) UpdateItem(id uint, d ItemDraft) (*entity.MenuItem, error) {
	if err := validateDraft(&d); err != nil {
		return nil, err
	}
	item, err := s.Items.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("menu item")
	}
	if err != nil {
		return nil, err
	}
	item.Name = d.Name
	item.Price = d.Price
	item.Category = d.Category
	item.Department = d.Department
	item.Description = d.Description
	if err := s.Items.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) RemoveItem(id uint) error {
	err := s.Items.Delete(id)
	if err == gorm.ErrRecordNotFound {
		return apperr.NotFound("menu item")
	}
	return err
}

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.Categories.FindAll()
}

func (s *CatalogService) AddCategory(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("category name is required")
	}
	count, err := s.Categories.CountByName(name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validation("category already exists")
	}
	cat := entity.Category{Name: name}
	if err := s.Categories.Create(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// RemoveCategory refuses to delete a category that items still
// reference unless force is set, in which case those items are
// reassigned to Unassigned first.
func (s *CatalogService) RemoveCategory(id uint, force bool) error {
	cat, err := s.Categories.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return apperr.NotFound("category")
	}
	if err != nil {
		return err
	}

	count, err := s.Items.CountByCategory(cat.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		if !force {
			return &apperr.ReferenceInUse{Kind: "category", Name: cat.Name, Count: count}
		}
		if err := s.Items.ReassignCategory(cat.Name, Unassigned); err != nil {
			return err
		}
	}
	return s.Categories.Delete(id)
}

func (s *CatalogService) ListDepartments() ([]entity.Department, error) {
	return s.Departments.FindAll()
}

func (s *CatalogService) AddDepartment(name string) (*entity.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("department name is required")
	}
	count, err := s.Departments.CountByName(name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validation("department already exists")
	}
	dep := entity.Department{Name: name}
	if err := s.Departments.Create(&dep); err != nil {
		return nil, err
	}
	return &dep, nil
}

func (s *CatalogService) RemoveDepartment(id uint, force bool) error {
	dep, err := s.Departments.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return apperr.NotFound("department")
	}
	if err != nil {
		return err
	}

	count, err := s.Items.CountByDepartment(dep.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		if !force {
			return &apperr.ReferenceInUse{Kind: "department", Name: dep.Name, Count: count}
		}
		if err := s.Items.ReassignDepartment(dep.Name, Unassigned); err != nil {
			return err
		}
	}
	return s.Departments.Delete(id)
}

// CategoryStats counts items per category in one grouping pass.
// Categories with no items report zero.
func (s *CatalogService) CategoryStats() ([]NameStat, error) {
	cats, err := s.Categories.FindAll()
	if err != nil {
		return nil, err
	}
	counts, err := s.Items.CountGroupedBy("category")
	if err != nil {
		return nil, err
	}
	stats := make([]NameStat, 0, len(cats))
	for _, cat := range cats {
		stats = append(stats, NameStat{Name: cat.Name, Count: counts[cat.Name]})
	}
	return stats, nil
}

func (s *CatalogService) DepartmentStats() ([]NameStat, error) {
	deps, err := s.Departments.FindAll()
	if err != nil {
		return nil, err
	}
	counts, err := s.Items.CountGroupedBy("department")
	if err != nil {
		return nil, err
	}
	stats := make([]NameStat, 0, len(deps))
	for _, dep := range deps {
		stats = append(stats, NameStat{Name: dep.Name, Count: counts[dep.Name]})
	}
	return stats, nil
}
