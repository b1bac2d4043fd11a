package repository

import (
	"gorm.io/gorm"

	"pos/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) FindAll() ([]entity.TableOrder, error) {
	var orders []entity.TableOrder
	err := r.DB.Order("id asc").Find(&orders).Error
	return orders, err
}

// FindByTable returns nil, nil when the table has no running order.
func (r *OrderRepository) FindByTable(tableID uint) (*entity.TableOrder, error) {
	var order entity.TableOrder
	err := r.DB.Where("table_id = ?", tableID).First(&order).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Save(order *entity.TableOrder) error {
	return r.DB.Save(order).Error
}

// DeleteByTable removes the row for good. A soft delete would keep the
// old row in the unique index on table_id and block the table from
// ever being seated again.
func (r *OrderRepository) DeleteByTable(tableID uint) error {
	return r.DB.Unscoped().Where("table_id = ?", tableID).Delete(&entity.TableOrder{}).Error
}
