package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

// LookupHandler serves the six name-only dropdown tables through one
// parameterized route (/api/lookups/:table).
type LookupHandler struct {
	db *gorm.DB
}

func NewLookupHandler(db *gorm.DB) *LookupHandler {
	return &LookupHandler{db: db}
}

type lookupOps struct {
	list   func(db *gorm.DB) (any, error)
	create func(db *gorm.DB, name string) (any, error)
	remove func(db *gorm.DB, id string) error
}

func lookupFor[T any](newRow func(name string) *T) lookupOps {
	return lookupOps{
		list: func(db *gorm.DB) (any, error) {
			var rows []T
			err := db.Order("name ASC").Find(&rows).Error
			return rows, err
		},
		create: func(db *gorm.DB, name string) (any, error) {
			row := newRow(name)
			err := db.Create(row).Error
			return row, err
		},
		remove: func(db *gorm.DB, id string) error {
			var row T
			if err := db.First(&row, "id = ?", id).Error; err != nil {
				return err
			}
			return db.Delete(&row).Error
		},
	}
}

var lookupTables = map[string]lookupOps{
	"venue-types": lookupFor(func(n string) *models.VenueType {
		return &models.VenueType{Name: n}
	}),
	"personnel-types": lookupFor(func(n string) *models.PersonnelType {
		return &models.PersonnelType{Name: n}
	}),
	"gig-types": lookupFor(func(n string) *models.GigType {
		return &models.GigType{Name: n}
	}),
	"payment-methods": lookupFor(func(n string) *models.PaymentMethod {
		return &models.PaymentMethod{Name: n}
	}),
	"document-types": lookupFor(func(n string) *models.DocumentType {
		return &models.DocumentType{Name: n}
	}),
	"contact-roles": lookupFor(func(n string) *models.ContactRole {
		return &models.ContactRole{Name: n}
	}),
}

func (h *LookupHandler) ops(c *gin.Context) (lookupOps, bool) {
	ops, ok := lookupTables[c.Param("table")]
	if !ok {
		httperr.NotFound(c, "unknown_lookup", "unknown lookup table")
	}
	return ops, ok
}

func (h *LookupHandler) List(c *gin.Context) {
	ops, ok := h.ops(c)
	if !ok {
		return
	}

	rows, err := ops.list(dbc(c, h.db))
	if err != nil {
		httperr.Internal(c, "failed_to_list_lookup", "could not list values")
		return
	}

	httpresp.OK(c, rows)
}

type LookupRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *LookupHandler) Create(c *gin.Context) {
	ops, ok := h.ops(c)
	if !ok {
		return
	}

	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	row, err := ops.create(dbc(c, h.db), req.Name)
	if err != nil {
		httperr.FromDB(c, err, "lookup")
		return
	}

	httpresp.Created(c, row)
}

func (h *LookupHandler) Delete(c *gin.Context) {
	ops, ok := h.ops(c)
	if !ok {
		return
	}

	if err := ops.remove(dbc(c, h.db), c.Param("id")); err != nil {
		httperr.FromDB(c, err, "lookup")
		return
	}

	httpresp.OK(c, gin.H{"deleted": c.Param("id")})
}
