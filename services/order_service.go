// services/order_service.go
package services

import (
	"time"

	"pos/entity"
	"pos/pkg/apperr"
	"pos/repository"
)

// OrderService manages the running order attached to each table and
// keeps the table status in step with it.
type OrderService struct {
	Orders *repository.OrderRepository
	Tables *repository.TableRepository
}

func NewOrderService(orders *repository.OrderRepository, tables *repository.TableRepository) *OrderService {
	return &OrderService{Orders: orders, Tables: tables}
}

func (s *OrderService) GetByTable(tableID uint) (*entity.TableOrder, error) {
	return s.Orders.FindByTable(tableID)
}

// List returns every running order, for the floor overview.
func (s *OrderService) List() ([]entity.TableOrder, error) {
	return s.Orders.FindAll()
}

// AddItems merges new lines into the table's running order, creating
// the order (and marking the table occupied) when none exists. A line
// already sent to kitchen is never touched: re-ordering the same menu
// item appends a fresh line instead, so the kitchen copy stays true.
func (s *OrderService) AddItems(tableID uint, tableName string, lines []entity.OrderLine) (*entity.TableOrder, error) {
	order, err := s.Orders.FindByTable(tableID)
	if err != nil {
		return nil, err
	}

	if order == nil {
		order = &entity.TableOrder{
			TableID:   tableID,
			TableName: tableName,
			Items:     lines,
			StartTime: time.Now(),
		}
	} else {
		for _, line := range lines {
			order.Items = mergeLine(order.Items, line)
		}
	}

	if err := s.Orders.Save(order); err != nil {
		return nil, err
	}
	if err := s.Tables.UpdateStatus(tableID, entity.TableOccupied); err != nil {
		return nil, err
	}
	return order, nil
}

func mergeLine(items []entity.OrderLine, line entity.OrderLine) []entity.OrderLine {
	for i := range items {
		if items[i].MenuItemID != line.MenuItemID {
			continue
		}
		if items[i].SentToKitchen {
			return append(items, line)
		}
		items[i].Quantity += line.Quantity
		return items
	}
	return append(items, line)
}

func (s *OrderService) MarkSent(tableID uint) (*entity.TableOrder, error) {
	order, err := s.Orders.FindByTable(tableID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("table order")
	}
	for i := range order.Items {
		order.Items[i].SentToKitchen = true
	}
	if err := s.Orders.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Complete removes the order and frees the table. Completing a table
// with no order is a no-op, matching the till's behavior.
func (s *OrderService) Complete(tableID uint) error {
	if err := s.Orders.DeleteByTable(tableID); err != nil {
		return err
	}
	return s.Tables.UpdateStatus(tableID, entity.TableAvailable)
}
