package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/models"
	"github.com/SpinCityEvents/gig-manager/internal/timezone"
)

// SettingsHandler manages the single company-settings row; owner-only.
type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	var settings models.CompanySettings
	err := dbc(c, h.db).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpresp.OK(c, models.CompanySettings{Timezone: timezone.DefaultTimezone})
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "could not load settings")
		return
	}

	httpresp.OK(c, settings)
}

type SettingsRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`

	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`

	Timezone       string  `json:"timezone"`
	DefaultTaxRate float64 `json:"default_tax_rate"`
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Timezone != "" && !timezone.IsValid(req.Timezone) {
		httperr.BadRequest(c, "invalid_timezone", "unknown timezone")
		return
	}

	var settings models.CompanySettings
	err := dbc(c, h.db).First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "failed_to_load_settings", "could not load settings")
		return
	}

	settings.CompanyName = req.CompanyName
	settings.Email = req.Email
	settings.Phone = req.Phone
	settings.AddressLine1 = req.AddressLine1
	settings.AddressLine2 = req.AddressLine2
	settings.City = req.City
	settings.State = req.State
	settings.PostalCode = req.PostalCode
	settings.Timezone = req.Timezone
	settings.DefaultTaxRate = req.DefaultTaxRate

	if err := dbc(c, h.db).Save(&settings).Error; err != nil {
		httperr.FromDB(c, err, "settings")
		return
	}

	httpresp.OK(c, settings)
}
