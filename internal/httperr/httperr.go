package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromDB maps common persistence failures onto stable HTTP codes: missing
// rows become 404s, constraint violations become 409s, everything else 500.
func FromDB(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, entity+"_not_found", entity+" not found")
	case IsConstraintViolation(err):
		Conflict(c, entity+"_conflict", "operation violates a database constraint")
	default:
		Internal(c, "internal_error", "unexpected database error")
	}
}

// IsConstraintViolation detects Postgres FK/unique violations (SQLSTATE 23xxx).
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23") ||
		strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "duplicate key value")
}
