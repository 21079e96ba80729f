package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/middleware"
	"github.com/SpinCityEvents/gig-manager/internal/models"
	"github.com/SpinCityEvents/gig-manager/internal/timezone"
)

// MeHandler is the personnel self-service surface: profile, gigs, check-in,
// payouts and documents scoped to the session's own staff record.
type MeHandler struct {
	db *gorm.DB
	tz string
}

func NewMeHandler(db *gorm.DB, tz string) *MeHandler {
	return &MeHandler{db: db, tz: tz}
}

func (h *MeHandler) personnelID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.ContextPersonnelID)
	if !ok {
		httperr.Forbidden(c, "no_personnel_record", "account is not linked to a personnel record")
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var user models.User
	if err := dbc(c, h.db).Preload("Personnel").First(&user, "id = ?", userID).Error; err != nil {
		httperr.FromDB(c, err, "user")
		return
	}

	httpresp.OK(c, user)
}

// --------- Profile ---------

func (h *MeHandler) GetProfile(c *gin.Context) {
	personnelID, ok := h.personnelID(c)
	if !ok {
		return
	}

	var person models.Personnel
	if err := dbc(c, h.db).Preload("PersonnelType").First(&person, "id = ?", personnelID).Error; err != nil {
		httperr.FromDB(c, err, "personnel")
		return
	}

	// Staff never see their own stored SSN through self-service.
	person.SSN = ""

	httpresp.OK(c, person)
}

type ProfileUpdateRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`

	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
}

// UpdateProfile lets staff maintain their own contact details; employment
// and sensitive fields stay owner/manager-only.
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	personnelID, ok := h.personnelID(c)
	if !ok {
		return
	}

	var person models.Personnel
	if err := dbc(c, h.db).First(&person, "id = ?", personnelID).Error; err != nil {
		httperr.FromDB(c, err, "personnel")
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	person.Email = req.Email
	person.Phone = req.Phone
	person.AddressLine1 = req.AddressLine1
	person.AddressLine2 = req.AddressLine2
	person.City = req.City
	person.State = req.State
	person.PostalCode = req.PostalCode

	if err := dbc(c, h.db).Omit("PersonnelType").Save(&person).Error; err != nil {
		httperr.FromDB(c, err, "personnel")
		return
	}

	person.SSN = ""
	httpresp.OK(c, person)
}

// --------- Gigs ---------

func (h *MeHandler) MyGigs(c *gin.Context) {
	personnelID, ok := h.personnelID(c)
	if !ok {
		return
	}

	from := timezone.NowIn(h.tz).AddDate(0, -1, 0)
	to := timezone.NowIn(h.tz).AddDate(0, 3, 0)

	var gigs []models.Gig
	if err := dbc(c, h.db).
		Preload("Customer").
		Preload("Venue").
		Joins("JOIN gig_personnels ON gig_personnels.gig_id = gigs.id").
		Where("gig_personnels.personnel_id = ?", personnelID).
		Where("gigs.start_time >= ? AND gigs.start_time < ?", from, to).
		Order("gigs.start_time ASC").
		Find(&gigs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_gigs", "could not list gigs")
		return
	}

	httpresp.List(c, gigs)
}

// --------- Check-in ---------

type CheckInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (h *MeHandler) CheckIn(c *gin.Context) {
	personnelID, ok := h.personnelID(c)
	if !ok {
		return
	}
	gigID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var assigned int64
	dbc(c, h.db).Model(&models.GigPersonnel{}).
		Where("gig_id = ? AND personnel_id = ?", gigID, personnelID).
		Count(&assigned)
	if assigned == 0 {
		httperr.Forbidden(c, "not_assigned", "you are not assigned to this gig")
		return
	}

	var open int64
	dbc(c, h.db).Model(&models.GigCheckIn{}).
		Where("gig_id = ? AND personnel_id = ? AND check_out_at IS NULL", gigID, personnelID).
		Count(&open)
	if open > 0 {
		httperr.Conflict(c, "already_checked_in", "there is already an open check-in for this gig")
		return
	}

	var req CheckInRequest
	_ = c.ShouldBindJSON(&req)

	checkIn := models.GigCheckIn{
		GigID:       gigID,
		PersonnelID: personnelID,
		CheckInAt:   timezone.NowIn(h.tz),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	if err := dbc(c, h.db).Create(&checkIn).Error; err != nil {
		httperr.FromDB(c, err, "check_in")
		return
	}

	httpresp.Created(c, checkIn)
}

func (h *MeHandler) CheckOut(c *gin.Context) {
	personnelID, ok := h.personnelID(c)
	if !ok {
		return
	}
	gigID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var checkIn models.GigCheckIn
	if err := dbc(c, h.db).
		Where("gig_id = ? AND personnel_id = ? AND check_out_at IS NULL", gigID, personnelID).
		First(&checkIn).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.BadRequest(c, "not_checked_in", "no open check-in for this gig")
			return
		}
		httperr.FromDB(c, err, "check_in")
		return
	}

	now := timezone.NowIn(h.tz)
	checkIn.CheckOutAt = &now

	if err := dbc(c, h.db).Save(&checkIn).Error; err != nil {
		httperr.FromDB(c, err, "check_in")
		return
	}

	httpresp.OK(c, checkIn)
}

// --------- Payouts / documents ---------

func (h *MeHandler) MyPayouts(c *gin.Context) {
	personnelID, ok := h.personnelID(c)
	if !ok {
		return
	}

	var payouts []models.PersonnelPayout
	if err := dbc(c, h.db).
		Preload("Gig").
		Preload("PaymentMethod").
		Where("personnel_id = ?", personnelID).
		Order("created_at DESC").
		Find(&payouts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payouts", "could not list payouts")
		return
	}

	httpresp.List(c, payouts)
}

func (h *MeHandler) MyDocuments(c *gin.Context) {
	personnelID, ok := h.personnelID(c)
	if !ok {
		return
	}

	var files []models.FileRecord
	if err := dbc(c, h.db).
		Preload("DocumentType").
		Where("personnel_id = ?", personnelID).
		Order("created_at DESC").
		Find(&files).Error; err != nil {
		httperr.Internal(c, "failed_to_list_documents", "could not list documents")
		return
	}

	httpresp.List(c, files)
}
