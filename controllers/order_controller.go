package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pos/entity"
	"pos/pkg/resp"
	"pos/services"
	"pos/ws"
)

type OrderController struct {
	Service *services.OrderService
	Hub     *ws.EventHub
}

func NewOrderController(service *services.OrderService, hub *ws.EventHub) *OrderController {
	return &OrderController{Service: service, Hub: hub}
}

// GET /api/orders
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/orders/table/:id
// Responds with JSON null when the table has no running order, which is
// what the terminal checks for.
func (ctl *OrderController) GetByTable(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("id"))

	order, err := ctl.Service.GetByTable(uint(tableID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, order)
}

// POST /api/orders/table/:id
func (ctl *OrderController) AddItems(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		TableName string             `json:"table_name"`
		Items     []entity.OrderLine `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := ctl.Service.AddItems(uint(tableID), req.TableName, req.Items)
	if err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventOrdersChanged)
	c.JSON(http.StatusOK, order)
}

// POST /api/orders/table/:id/sent
func (ctl *OrderController) MarkSent(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("id"))

	order, err := ctl.Service.MarkSent(uint(tableID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventOrdersChanged)
	c.JSON(http.StatusOK, order)
}

// POST /api/orders/table/:id/complete
func (ctl *OrderController) Complete(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Complete(uint(tableID)); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventOrdersChanged)
	c.JSON(http.StatusOK, gin.H{"message": "order completed"})
}
