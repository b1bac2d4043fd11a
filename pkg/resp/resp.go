package resp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pos/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps the service error taxonomy onto status codes so every
// controller surfaces failures the same way.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrReferenceInUse):
		var ref *apperr.ReferenceInUse
		if errors.As(err, &ref) {
			c.JSON(http.StatusConflict, gin.H{"error": ref.Error(), "referencedBy": ref.Count})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		ServerError(c, err)
	}
}
