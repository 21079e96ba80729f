package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

type PayoutHandler struct {
	db *gorm.DB
}

func NewPayoutHandler(db *gorm.DB) *PayoutHandler {
	return &PayoutHandler{db: db}
}

type PayoutRequest struct {
	PersonnelID uuid.UUID  `json:"personnel_id" binding:"required"`
	GigID       *uuid.UUID `json:"gig_id"`

	Amount float64 `json:"amount" binding:"required,gt=0"`

	PaymentMethodID *uuid.UUID `json:"payment_method_id"`
	Notes           string     `json:"notes"`
}

func (h *PayoutHandler) List(c *gin.Context) {
	q := dbc(c, h.db).Preload("Personnel").Preload("Gig").Preload("PaymentMethod")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if personnelID := c.Query("personnel_id"); personnelID != "" {
		q = q.Where("personnel_id = ?", personnelID)
	}

	var payouts []models.PersonnelPayout
	if err := q.Order("created_at DESC").Find(&payouts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payouts", "could not list payouts")
		return
	}

	httpresp.List(c, payouts)
}

func (h *PayoutHandler) Create(c *gin.Context) {
	var req PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	payout := models.PersonnelPayout{
		PersonnelID:     req.PersonnelID,
		GigID:           req.GigID,
		Amount:          req.Amount,
		PaymentMethodID: req.PaymentMethodID,
		Status:          "pending",
		Notes:           req.Notes,
	}

	if err := dbc(c, h.db).Create(&payout).Error; err != nil {
		httperr.FromDB(c, err, "payout")
		return
	}

	httpresp.Created(c, payout)
}

func (h *PayoutHandler) MarkPaid(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var payout models.PersonnelPayout
	if err := dbc(c, h.db).First(&payout, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "payout")
		return
	}

	if payout.Status == "paid" {
		httperr.Conflict(c, "payout_already_paid", "payout is already paid")
		return
	}

	now := time.Now().UTC()
	payout.Status = "paid"
	payout.PaidAt = &now

	if err := dbc(c, h.db).Omit("Personnel", "Gig", "PaymentMethod").Save(&payout).Error; err != nil {
		httperr.FromDB(c, err, "payout")
		return
	}

	httpresp.OK(c, payout)
}

func (h *PayoutHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var payout models.PersonnelPayout
	if err := dbc(c, h.db).First(&payout, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "payout")
		return
	}

	if payout.Status == "paid" {
		httperr.Conflict(c, "payout_already_paid", "paid payouts cannot be deleted")
		return
	}

	if err := dbc(c, h.db).Delete(&payout).Error; err != nil {
		httperr.FromDB(c, err, "payout")
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}
