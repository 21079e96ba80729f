package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/models"
	ucGig "github.com/SpinCityEvents/gig-manager/internal/usecase/gig"
)

type GigHandler struct {
	db *gorm.DB

	createUC     *ucGig.CreateGig
	rescheduleUC *ucGig.RescheduleGig
	confirmUC    *ucGig.ConfirmGig
	cancelUC     *ucGig.CancelGig
	completeUC   *ucGig.CompleteGig
	listDateUC   *ucGig.ListGigsByDate
	listMonthUC  *ucGig.ListGigsByMonth
}

func NewGigHandler(
	db *gorm.DB,
	createUC *ucGig.CreateGig,
	rescheduleUC *ucGig.RescheduleGig,
	confirmUC *ucGig.ConfirmGig,
	cancelUC *ucGig.CancelGig,
	completeUC *ucGig.CompleteGig,
	listDateUC *ucGig.ListGigsByDate,
	listMonthUC *ucGig.ListGigsByMonth,
) *GigHandler {
	return &GigHandler{
		db:           db,
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		confirmUC:    confirmUC,
		cancelUC:     cancelUC,
		completeUC:   completeUC,
		listDateUC:   listDateUC,
		listMonthUC:  listMonthUC,
	}
}

// --------- Requests ---------

type CreateGigRequest struct {
	Name      string     `json:"name" binding:"required"`
	GigTypeID *uuid.UUID `json:"gig_type_id"`

	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	VenueID    uuid.UUID `json:"venue_id" binding:"required"`

	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`

	Notes string `json:"notes"`

	Recurrence *struct {
		Rule  string `json:"rule"`
		Count int    `json:"count"`
	} `json:"recurrence"`
}

type UpdateGigRequest struct {
	Name      string     `json:"name" binding:"required"`
	GigTypeID *uuid.UUID `json:"gig_type_id"`
	Notes     string     `json:"notes"`
}

type ScheduleRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func writeBusinessError(c *gin.Context, err error) {
	if code, ok := httperr.CodeOf(err); ok {
		switch code {
		case "gig_not_found", "customer_not_found", "venue_not_found":
			httperr.NotFound(c, code, code)
		default:
			httperr.BadRequest(c, code, code)
		}
		return
	}
	httperr.Internal(c, "internal_error", "unexpected error")
}

// --------- Handlers ---------

func (h *GigHandler) Create(c *gin.Context) {
	var req CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := ucGig.CreateGigInput{
		Name:       req.Name,
		GigTypeID:  req.GigTypeID,
		CustomerID: req.CustomerID,
		VenueID:    req.VenueID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	}
	if req.Recurrence != nil {
		in.Recurrence = &ucGig.RecurrenceInput{
			Rule:  req.Recurrence.Rule,
			Count: req.Recurrence.Count,
		}
	}

	gigs, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, gin.H{"gigs": gigs, "total": len(gigs)})
}

func (h *GigHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "date query parameter is required (YYYY-MM-DD)")
		return
	}

	gigs, err := h.listDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, gigs)
}

func (h *GigHandler) Calendar(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_month", "year and month query parameters are required")
		return
	}

	entries, err := h.listMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, entries)
}

func (h *GigHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var g models.Gig
	if err := dbc(c, h.db).
		Preload("Customer").
		Preload("Venue").
		Preload("GigType").
		Preload("Personnel.Personnel").
		First(&g, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "gig")
		return
	}

	httpresp.OK(c, g)
}

// Update covers the non-scheduling fields; time changes go through Schedule.
func (h *GigHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var g models.Gig
	if err := dbc(c, h.db).First(&g, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "gig")
		return
	}

	var req UpdateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	g.Name = req.Name
	g.GigTypeID = req.GigTypeID
	g.Notes = req.Notes

	if err := dbc(c, h.db).Omit("Customer", "Venue", "GigType", "Personnel").Save(&g).Error; err != nil {
		httperr.FromDB(c, err, "gig")
		return
	}

	httpresp.OK(c, g)
}

// Schedule receives the calendar drag-and-drop result.
func (h *GigHandler) Schedule(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	g, err := h.rescheduleUC.Execute(c.Request.Context(), id, req.StartTime, req.EndTime)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, g)
}

func (h *GigHandler) Confirm(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	g, err := h.confirmUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, g)
}

func (h *GigHandler) Cancel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	g, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, g)
}

func (h *GigHandler) Complete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	g, err := h.completeUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, g)
}

func (h *GigHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var g models.Gig
	if err := dbc(c, h.db).First(&g, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "gig")
		return
	}

	if err := dbc(c, h.db).Select("Personnel").Delete(&g).Error; err != nil {
		httperr.FromDB(c, err, "gig")
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}

// --------- Personnel assignment ---------

type AssignPersonnelRequest struct {
	PersonnelID  uuid.UUID `json:"personnel_id" binding:"required"`
	Role         string    `json:"role"`
	PayoutAmount float64   `json:"payout_amount"`
}

func (h *GigHandler) AssignPersonnel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req AssignPersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	dbc(c, h.db).Model(&models.GigPersonnel{}).
		Where("gig_id = ? AND personnel_id = ?", id, req.PersonnelID).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "personnel_already_assigned", "personnel is already assigned to this gig")
		return
	}

	assignment := models.GigPersonnel{
		GigID:        id,
		PersonnelID:  req.PersonnelID,
		Role:         req.Role,
		PayoutAmount: req.PayoutAmount,
	}

	if err := dbc(c, h.db).Create(&assignment).Error; err != nil {
		httperr.FromDB(c, err, "gig_personnel")
		return
	}

	httpresp.Created(c, assignment)
}

func (h *GigHandler) UnassignPersonnel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	personnelID, ok := parseUUIDParam(c, "personnelId")
	if !ok {
		return
	}

	var assignment models.GigPersonnel
	if err := dbc(c, h.db).
		Where("gig_id = ? AND personnel_id = ?", id, personnelID).
		First(&assignment).Error; err != nil {
		httperr.FromDB(c, err, "gig_personnel")
		return
	}

	if err := dbc(c, h.db).Delete(&assignment).Error; err != nil {
		httperr.FromDB(c, err, "gig_personnel")
		return
	}

	httpresp.OK(c, gin.H{"unassigned": personnelID})
}
