package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/entity"
)

func TestLoginBadCredentials(t *testing.T) {
	c, _ := newTestStack(t)

	err := c.Login(context.Background(), testEmail, "wrong")
	require.Error(t, err)

	var failed *RequestFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, http.StatusUnauthorized, failed.Status)
	assert.Contains(t, failed.Message, "invalid credentials")
}

func TestRequestFailedCarriesServerMessage(t *testing.T) {
	c, _ := newTestStack(t)

	err := c.DeleteMenuItem(context.Background(), 9999)
	require.Error(t, err)

	var failed *RequestFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, http.StatusNotFound, failed.Status)
}

func TestNetworkErrorOnTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := New(srv.URL)
	c.SetTimeout(50 * time.Millisecond)

	_, err := c.ListMenuItems(context.Background(), "")
	require.Error(t, err)

	var nerr *NetworkError
	require.True(t, errors.As(err, &nerr))
	assert.True(t, nerr.Timeout())
}

func TestNetworkErrorOnUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1")
	c.SetTimeout(time.Second)

	_, err := c.ListMenuItems(context.Background(), "")
	require.Error(t, err)

	var nerr *NetworkError
	assert.True(t, errors.As(err, &nerr))
	assert.False(t, nerr.Timeout())
}

func TestUnauthorizedMutation(t *testing.T) {
	c, _ := newTestStack(t)
	c.SetToken("")

	_, err := c.CreateCategory(context.Background(), "Mains")
	require.Error(t, err)

	var failed *RequestFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, http.StatusUnauthorized, failed.Status)
}

func TestTableLifecycle(t *testing.T) {
	c, _ := newTestStack(t)
	ctx := context.Background()

	table, err := c.CreateTable(ctx, entity.Table{Name: "T1", Seats: 4, Category: "Indoor"})
	require.NoError(t, err)
	assert.Equal(t, entity.TableAvailable, table.Status)

	name := "Window 1"
	updated, err := c.UpdateTable(ctx, table.ID, TablePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Window 1", updated.Name)
	assert.Equal(t, 4, updated.Seats, "absent patch fields keep their value")

	tables, err := c.ListTables(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 1)

	require.NoError(t, c.DeleteTable(ctx, table.ID))
	tables, err = c.ListTables(ctx)
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestTableOrderFlow(t *testing.T) {
	c, _ := newTestStack(t)
	ctx := context.Background()

	table, err := c.CreateTable(ctx, entity.Table{Name: "T1"})
	require.NoError(t, err)

	// no order yet: the endpoint answers JSON null
	order, err := c.GetTableOrder(ctx, table.ID)
	require.NoError(t, err)
	assert.Nil(t, order)

	order, err = c.AddItemsToTable(ctx, table.ID, "T1", []entity.OrderLine{
		{MenuItemID: 1, Name: "Burger", Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)

	order, err = c.MarkItemsSent(ctx, table.ID)
	require.NoError(t, err)
	assert.True(t, order.Items[0].SentToKitchen)

	running, err := c.ListTableOrders(ctx)
	require.NoError(t, err)
	require.Len(t, running, 1)
	assert.Equal(t, table.ID, running[0].TableID)

	require.NoError(t, c.CompleteTableOrder(ctx, table.ID))

	tables, err := c.ListTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.TableAvailable, tables[0].Status)

	running, err = c.ListTableOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, running)

	// the freed table takes the next order
	order, err = c.AddItemsToTable(ctx, table.ID, "T1", []entity.OrderLine{
		{MenuItemID: 2, Name: "Pasta", Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Pasta", order.Items[0].Name)
}

func TestConfigRoundTrip(t *testing.T) {
	c, _ := newTestStack(t)
	ctx := context.Background()

	kot, err := c.GetKotConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, kot.NumberOfCopies, "defaults are created on first read")

	kot.PrintByDepartment = true
	kot.NumberOfCopies = 2
	updated, err := c.UpdateKotConfig(ctx, *kot)
	require.NoError(t, err)
	assert.True(t, updated.PrintByDepartment)
	assert.Equal(t, 2, updated.NumberOfCopies)

	bill, err := c.GetBillConfig(ctx)
	require.NoError(t, err)
	assert.False(t, bill.AutoPrintDineIn)

	bill.AutoPrintDineIn = true
	updatedBill, err := c.UpdateBillConfig(ctx, *bill)
	require.NoError(t, err)
	assert.True(t, updatedBill.AutoPrintDineIn)
}

func TestInvoices(t *testing.T) {
	c, _ := newTestStack(t)
	ctx := context.Background()

	inv, err := c.AddInvoice(ctx, entity.Invoice{
		BillNumber: "B-001",
		OrderType:  entity.OrderTypeDineIn,
		TableName:  "T1",
		Items:      []entity.OrderLine{{Name: "Burger", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.NotZero(t, inv.ID)
	assert.False(t, inv.Timestamp.IsZero())

	invoices, err := c.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "B-001", invoices[0].BillNumber)
}

func TestDownloadTemplateAndExport(t *testing.T) {
	c, _ := newTestStack(t)
	ctx := context.Background()

	template, err := c.DownloadTemplate(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, template)

	export, err := c.ExportData(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(export), "type,name,price")
}
