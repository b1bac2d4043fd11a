package repository

import (
	"gorm.io/gorm"

	"pos/entity"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id asc").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) CountByName(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Category{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

// Delete is a hard delete: the name carries a unique index, and a
// soft-deleted row would keep the name reserved forever.
func (r *CategoryRepository) Delete(id uint) error {
	res := r.DB.Unscoped().Delete(&entity.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
