package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

type ContactHandler struct {
	db *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

type ContactRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

func (h *ContactHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := dbc(c, h.db)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			like, like, like, like,
		)
	}

	var contacts []models.Contact
	if err := q.Order("last_name ASC, first_name ASC").Find(&contacts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_contacts", "could not list contacts")
		return
	}

	httpresp.List(c, contacts)
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var contact models.Contact
	if err := dbc(c, h.db).First(&contact, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "contact")
		return
	}

	httpresp.OK(c, contact)
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	contact := models.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
	}

	if err := dbc(c, h.db).Create(&contact).Error; err != nil {
		httperr.FromDB(c, err, "contact")
		return
	}

	httpresp.Created(c, contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var contact models.Contact
	if err := dbc(c, h.db).First(&contact, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "contact")
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Notes = req.Notes

	if err := dbc(c, h.db).Save(&contact).Error; err != nil {
		httperr.FromDB(c, err, "contact")
		return
	}

	httpresp.OK(c, contact)
}

// Delete cascades away any customer/venue links.
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var contact models.Contact
	if err := dbc(c, h.db).First(&contact, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "contact")
		return
	}

	if err := dbc(c, h.db).Delete(&contact).Error; err != nil {
		httperr.FromDB(c, err, "contact")
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}
