package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

type PersonnelHandler struct {
	db *gorm.DB
}

func NewPersonnelHandler(db *gorm.DB) *PersonnelHandler {
	return &PersonnelHandler{db: db}
}

type PersonnelRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	PersonnelTypeID *uuid.UUID `json:"personnel_type_id"`

	SSN         string     `json:"ssn"`
	DateOfBirth *time.Time `json:"date_of_birth"`

	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`

	HourlyRate float64 `json:"hourly_rate"`
	Active     *bool   `json:"active"`
	Notes      string  `json:"notes"`
}

func (h *PersonnelHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := dbc(c, h.db).Preload("PersonnelType")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}
	if c.Query("active") == "true" {
		q = q.Where("active = true")
	}

	var personnel []models.Personnel
	if err := q.Order("last_name ASC, first_name ASC").Find(&personnel).Error; err != nil {
		httperr.Internal(c, "failed_to_list_personnel", "could not list personnel")
		return
	}

	httpresp.List(c, personnel)
}

func (h *PersonnelHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var person models.Personnel
	if err := dbc(c, h.db).Preload("PersonnelType").First(&person, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "personnel")
		return
	}

	httpresp.OK(c, person)
}

func (h *PersonnelHandler) Create(c *gin.Context) {
	var req PersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	person := models.Personnel{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		PersonnelTypeID: req.PersonnelTypeID,
		SSN:             req.SSN,
		DateOfBirth:     req.DateOfBirth,
		AddressLine1:    req.AddressLine1,
		AddressLine2:    req.AddressLine2,
		City:            req.City,
		State:           req.State,
		PostalCode:      req.PostalCode,
		HourlyRate:      req.HourlyRate,
		Active:          true,
		Notes:           req.Notes,
	}
	if req.Active != nil {
		person.Active = *req.Active
	}

	if err := dbc(c, h.db).Create(&person).Error; err != nil {
		httperr.FromDB(c, err, "personnel")
		return
	}

	httpresp.Created(c, person)
}

func (h *PersonnelHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var person models.Personnel
	if err := dbc(c, h.db).First(&person, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "personnel")
		return
	}

	var req PersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	person.FirstName = req.FirstName
	person.LastName = req.LastName
	person.Email = req.Email
	person.Phone = req.Phone
	person.PersonnelTypeID = req.PersonnelTypeID
	person.SSN = req.SSN
	person.DateOfBirth = req.DateOfBirth
	person.AddressLine1 = req.AddressLine1
	person.AddressLine2 = req.AddressLine2
	person.City = req.City
	person.State = req.State
	person.PostalCode = req.PostalCode
	person.HourlyRate = req.HourlyRate
	person.Notes = req.Notes
	if req.Active != nil {
		person.Active = *req.Active
	}

	if err := dbc(c, h.db).Omit("PersonnelType").Save(&person).Error; err != nil {
		httperr.FromDB(c, err, "personnel")
		return
	}

	httpresp.OK(c, person)
}

func (h *PersonnelHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var person models.Personnel
	if err := dbc(c, h.db).First(&person, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "personnel")
		return
	}

	var payoutCount int64
	dbc(c, h.db).Model(&models.PersonnelPayout{}).Where("personnel_id = ?", id).Count(&payoutCount)
	if payoutCount > 0 {
		httperr.Conflict(c, "personnel_in_use", "personnel still has payouts")
		return
	}

	if err := dbc(c, h.db).Delete(&person).Error; err != nil {
		httperr.FromDB(c, err, "personnel")
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}
