package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pos/pkg/resp"
	"pos/services"
	"pos/ws"
)

type DepartmentController struct {
	Service *services.CatalogService
	Hub     *ws.EventHub
}

func NewDepartmentController(service *services.CatalogService, hub *ws.EventHub) *DepartmentController {
	return &DepartmentController{Service: service, Hub: hub}
}

// GET /api/menu/departments
func (ctl *DepartmentController) List(c *gin.Context) {
	deps, err := ctl.Service.ListDepartments()
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, deps)
}

// POST /api/menu/departments
func (ctl *DepartmentController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dep, err := ctl.Service.AddDepartment(req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventMenuChanged)
	c.JSON(http.StatusCreated, dep)
}

// DELETE /api/menu/departments/:id?force=true
func (ctl *DepartmentController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	force := c.Query("force") == "true"

	if err := ctl.Service.RemoveDepartment(uint(id), force); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventMenuChanged)
	c.JSON(http.StatusOK, gin.H{"message": "department deleted"})
}
