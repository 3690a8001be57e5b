package resp

import (
	"net/http"

	"github.com/amalakkad93/StarcoEat/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred."})
}

// Error translates a tagged business error into the {"error": message}
// envelope. Untagged errors become a generic 500 so internal detail
// never reaches the client.
func Error(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.Validation, apperr.EmptyCart, apperr.InvalidTransition:
		BadRequest(c, err.Error())
	case apperr.NotFound:
		NotFound(c, err.Error())
	case apperr.Authorization:
		Forbidden(c, err.Error())
	default:
		ServerError(c)
	}
}
