package repository

import (
	"gorm.io/gorm"

	"pos/entity"
)

type DepartmentRepository struct {
	DB *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{DB: db}
}

func (r *DepartmentRepository) FindAll() ([]entity.Department, error) {
	var deps []entity.Department
	err := r.DB.Order("id asc").Find(&deps).Error
	return deps, err
}

func (r *DepartmentRepository) FindByID(id uint) (*entity.Department, error) {
	var dep entity.Department
	if err := r.DB.First(&dep, id).Error; err != nil {
		return nil, err
	}
	return &dep, nil
}

func (r *DepartmentRepository) CountByName(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Department{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

func (r *DepartmentRepository) Create(dep *entity.Department) error {
	return r.DB.Create(dep).Error
}

// Delete is a hard delete: the name carries a unique index, and a
// soft-deleted row would keep the name reserved forever.
func (r *DepartmentRepository) Delete(id uint) error {
	res := r.DB.Unscoped().Delete(&entity.Department{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
