package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

type VenueHandler struct {
	db *gorm.DB
}

func NewVenueHandler(db *gorm.DB) *VenueHandler {
	return &VenueHandler{db: db}
}

type VenueRequest struct {
	Name        string     `json:"name" binding:"required"`
	VenueTypeID *uuid.UUID `json:"venue_type_id"`

	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`

	Capacity int    `json:"capacity"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
}

func (h *VenueHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := dbc(c, h.db).Preload("VenueType")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ?", like, like)
	}

	var venues []models.Venue
	if err := q.Order("name ASC").Find(&venues).Error; err != nil {
		httperr.Internal(c, "failed_to_list_venues", "could not list venues")
		return
	}

	httpresp.List(c, venues)
}

func (h *VenueHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var venue models.Venue
	if err := dbc(c, h.db).
		Preload("VenueType").
		Preload("Contacts.Contact").
		Preload("Contacts.ContactRole").
		First(&venue, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "venue")
		return
	}

	httpresp.OK(c, venue)
}

func (h *VenueHandler) Create(c *gin.Context) {
	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	venue := models.Venue{
		Name:         req.Name,
		VenueTypeID:  req.VenueTypeID,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Capacity:     req.Capacity,
		Phone:        req.Phone,
		Notes:        req.Notes,
	}

	if err := dbc(c, h.db).Create(&venue).Error; err != nil {
		httperr.FromDB(c, err, "venue")
		return
	}

	httpresp.Created(c, venue)
}

func (h *VenueHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var venue models.Venue
	if err := dbc(c, h.db).First(&venue, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "venue")
		return
	}

	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	venue.Name = req.Name
	venue.VenueTypeID = req.VenueTypeID
	venue.AddressLine1 = req.AddressLine1
	venue.AddressLine2 = req.AddressLine2
	venue.City = req.City
	venue.State = req.State
	venue.PostalCode = req.PostalCode
	venue.Capacity = req.Capacity
	venue.Phone = req.Phone
	venue.Notes = req.Notes

	if err := dbc(c, h.db).Omit("VenueType", "Contacts").Save(&venue).Error; err != nil {
		httperr.FromDB(c, err, "venue")
		return
	}

	httpresp.OK(c, venue)
}

// Delete is rejected while gigs still reference the venue.
func (h *VenueHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var venue models.Venue
	if err := dbc(c, h.db).First(&venue, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "venue")
		return
	}

	var gigCount int64
	dbc(c, h.db).Model(&models.Gig{}).Where("venue_id = ?", id).Count(&gigCount)
	if gigCount > 0 {
		httperr.Conflict(c, "venue_in_use", "venue still has gigs")
		return
	}

	if err := dbc(c, h.db).Select("Contacts").Delete(&venue).Error; err != nil {
		httperr.FromDB(c, err, "venue")
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}

// --------- Contact links ---------

func (h *VenueHandler) LinkContact(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req LinkContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	dbc(c, h.db).Model(&models.VenueContact{}).
		Where("venue_id = ? AND contact_id = ?", id, req.ContactID).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "contact_already_linked", "contact is already linked to this venue")
		return
	}

	link := models.VenueContact{
		VenueID:       id,
		ContactID:     req.ContactID,
		ContactRoleID: req.ContactRoleID,
	}

	if err := dbc(c, h.db).Create(&link).Error; err != nil {
		httperr.FromDB(c, err, "venue_contact")
		return
	}

	httpresp.Created(c, link)
}

func (h *VenueHandler) UnlinkContact(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	contactID, ok := parseUUIDParam(c, "contactId")
	if !ok {
		return
	}

	var link models.VenueContact
	if err := dbc(c, h.db).
		Where("venue_id = ? AND contact_id = ?", id, contactID).
		First(&link).Error; err != nil {
		httperr.FromDB(c, err, "venue_contact")
		return
	}

	if err := dbc(c, h.db).Delete(&link).Error; err != nil {
		httperr.FromDB(c, err, "venue_contact")
		return
	}

	httpresp.OK(c, gin.H{"unlinked": contactID})
}
