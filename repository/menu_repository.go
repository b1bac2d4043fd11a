// repository/menu_repository.go
package repository

import (
	"gorm.io/gorm"

	"pos/entity"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// FindAll returns items in insertion order. An empty or "All" category
// returns everything; anything else is an exact match.
func (r *MenuItemRepository) FindAll(category string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	q := r.DB.Order("id asc")
	if category != "" && category != "All" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuItemRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

// Delete reports gorm.ErrRecordNotFound when the id did not exist, so
// callers can acknowledge the no-op instead of claiming success.
func (r *MenuItemRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuItemRepository) CountByCategory(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Where("category = ?", name).Count(&count).Error
	return count, err
}

func (r *MenuItemRepository) CountByDepartment(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Where("department = ?", name).Count(&count).Error
	return count, err
}

func (r *MenuItemRepository) ReassignCategory(from, to string) error {
	return r.DB.Model(&entity.MenuItem{}).
		Where("category = ?", from).
		Update("category", to).Error
}

func (r *MenuItemRepository) ReassignDepartment(from, to string) error {
	return r.DB.Model(&entity.MenuItem{}).
		Where("department = ?", from).
		Update("department", to).Error
}

// CountGroupedBy returns item counts grouped by "category" or
// "department" in a single pass.
func (r *MenuItemRepository) CountGroupedBy(column string) (map[string]int64, error) {
	type row struct {
		Name  string
		Count int64
	}
	var rows []row
	err := r.DB.Model(&entity.MenuItem{}).
		Select(column + " as name, count(*) as count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Name] = rw.Count
	}
	return counts, nil
}
