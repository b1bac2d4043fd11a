package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pos/pkg/resp"
	"pos/services"
	"pos/ws"
)

type SheetController struct {
	Service *services.SheetService
	Hub     *ws.EventHub
}

func NewSheetController(service *services.SheetService, hub *ws.EventHub) *SheetController {
	return &SheetController{Service: service, Hub: hub}
}

// GET /api/menu/template
func (ctl *SheetController) Template(c *gin.Context) {
	blob, err := ctl.Service.Template()
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="menu-template.csv"`)
	c.Data(http.StatusOK, "text/csv", blob)
}

// GET /api/menu/export
func (ctl *SheetController) Export(c *gin.Context) {
	blob, err := ctl.Service.Export()
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="menu-export.csv"`)
	c.Data(http.StatusOK, "text/csv", blob)
}

// POST /api/menu/import (multipart, field "file")
func (ctl *SheetController) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		resp.Error(c, err)
		return
	}
	defer file.Close()

	result, err := ctl.Service.Import(file)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if result.Success && result.Stats.CategoriesAdded+result.Stats.DepartmentsAdded+result.Stats.ItemsAdded > 0 {
		ctl.Hub.Publish(ws.EventMenuChanged)
	}
	c.JSON(http.StatusOK, result)
}
