package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
)

// parseUUIDParam reads a :param path segment as a UUID, writing the 400
// itself so callers can just bail.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// dbc scopes a gorm handle to the request context so change capture sees
// the session actor.
func dbc(c *gin.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(c.Request.Context())
}
