package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/entity"
	"pos/repository"
)

func newTestOrders(t *testing.T) (*OrderService, *repository.TableRepository) {
	t.Helper()
	db := newTestDB(t)
	tables := repository.NewTableRepository(db)
	return NewOrderService(repository.NewOrderRepository(db), tables), tables
}

func line(menuItemID uint, name string, qty int) entity.OrderLine {
	return entity.OrderLine{
		MenuItemID: menuItemID,
		Name:       name,
		Price:      decimal.NewFromInt(100),
		Quantity:   qty,
	}
}

func TestAddItemsCreatesOrderAndOccupiesTable(t *testing.T) {
	svc, tables := newTestOrders(t)
	table := entity.Table{Name: "T1", Seats: 4, Status: entity.TableAvailable}
	require.NoError(t, tables.Create(&table))

	order, err := svc.AddItems(table.ID, "T1", []entity.OrderLine{line(1, "Burger", 2)})
	require.NoError(t, err)
	assert.Equal(t, "T1", order.TableName)
	assert.False(t, order.StartTime.IsZero())
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	got, err := tables.FindByID(table.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TableOccupied, got.Status)
}

func TestAddItemsMergesPendingLines(t *testing.T) {
	svc, tables := newTestOrders(t)
	table := entity.Table{Name: "T1", Status: entity.TableAvailable}
	require.NoError(t, tables.Create(&table))

	_, err := svc.AddItems(table.ID, "T1", []entity.OrderLine{line(1, "Burger", 1)})
	require.NoError(t, err)

	order, err := svc.AddItems(table.ID, "T1", []entity.OrderLine{line(1, "Burger", 2)})
	require.NoError(t, err)
	require.Len(t, order.Items, 1, "pending lines for the same item merge")
	assert.Equal(t, 3, order.Items[0].Quantity)
}

func TestAddItemsAppendsAfterKitchenSend(t *testing.T) {
	svc, tables := newTestOrders(t)
	table := entity.Table{Name: "T1", Status: entity.TableAvailable}
	require.NoError(t, tables.Create(&table))

	_, err := svc.AddItems(table.ID, "T1", []entity.OrderLine{line(1, "Burger", 1)})
	require.NoError(t, err)

	_, err = svc.MarkSent(table.ID)
	require.NoError(t, err)

	order, err := svc.AddItems(table.ID, "T1", []entity.OrderLine{line(1, "Burger", 2)})
	require.NoError(t, err)
	require.Len(t, order.Items, 2, "a sent line is never mutated; reorder appends")
	assert.True(t, order.Items[0].SentToKitchen)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.False(t, order.Items[1].SentToKitchen)
	assert.Equal(t, 2, order.Items[1].Quantity)
}

func TestMarkSentWithoutOrder(t *testing.T) {
	svc, _ := newTestOrders(t)

	_, err := svc.MarkSent(99)
	assert.Error(t, err)
}

func TestCompleteFreesTable(t *testing.T) {
	svc, tables := newTestOrders(t)
	table := entity.Table{Name: "T1", Status: entity.TableAvailable}
	require.NoError(t, tables.Create(&table))

	_, err := svc.AddItems(table.ID, "T1", []entity.OrderLine{line(1, "Burger", 1)})
	require.NoError(t, err)

	require.NoError(t, svc.Complete(table.ID))

	order, err := svc.GetByTable(table.ID)
	require.NoError(t, err)
	assert.Nil(t, order)

	got, err := tables.FindByID(table.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TableAvailable, got.Status)

	// completing again is a no-op
	require.NoError(t, svc.Complete(table.ID))
}

func TestCompleteThenReseat(t *testing.T) {
	svc, tables := newTestOrders(t)
	table := entity.Table{Name: "T1", Status: entity.TableAvailable}
	require.NoError(t, tables.Create(&table))

	_, err := svc.AddItems(table.ID, "T1", []entity.OrderLine{line(1, "Burger", 1)})
	require.NoError(t, err)
	require.NoError(t, svc.Complete(table.ID))

	// the freed table seats the next party
	order, err := svc.AddItems(table.ID, "T1", []entity.OrderLine{line(2, "Pasta", 1)})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Pasta", order.Items[0].Name)

	got, err := tables.FindByID(table.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TableOccupied, got.Status)
}
