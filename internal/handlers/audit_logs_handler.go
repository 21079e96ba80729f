package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	q := dbc(c, h.db)

	if table := c.Query("table"); table != "" {
		q = q.Where("table_name = ?", table)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if actor := c.Query("actor"); actor != "" {
		q = q.Where("actor = ?", actor)
	}
	if rowID := c.Query("row_id"); rowID != "" {
		q = q.Where("row_id = ?", rowID)
	}

	limit := 100
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 500 {
		limit = v
	}

	var logs []models.AuditLog
	if err := q.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "could not list audit logs")
		return
	}

	httpresp.List(c, logs)
}
