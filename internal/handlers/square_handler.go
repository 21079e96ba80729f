package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/integrations/square"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

type SquareHandler struct {
	db   *gorm.DB
	sync *square.SyncService
}

func NewSquareHandler(db *gorm.DB, sync *square.SyncService) *SquareHandler {
	return &SquareHandler{db: db, sync: sync}
}

func (h *SquareHandler) Sync(c *gin.Context) {
	summary, err := h.sync.Sync(c.Request.Context())
	if err != nil {
		log.Println("square sync error:", err)
		httperr.Write(c, 502, "square_sync_failed", err.Error())
		return
	}

	httpresp.OK(c, summary)
}

func (h *SquareHandler) ListCustomers(c *gin.Context) {
	var rows []models.SquareCustomer
	if err := dbc(c, h.db).Order("synced_at DESC").Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_square_customers", "could not list mirrored customers")
		return
	}
	httpresp.List(c, rows)
}

func (h *SquareHandler) ListInvoices(c *gin.Context) {
	q := dbc(c, h.db)
	if customerID := c.Query("square_customer_id"); customerID != "" {
		q = q.Where("square_customer_id = ?", customerID)
	}

	var rows []models.SquareInvoice
	if err := q.Order("synced_at DESC").Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_square_invoices", "could not list mirrored invoices")
		return
	}
	httpresp.List(c, rows)
}

func (h *SquareHandler) ListPayments(c *gin.Context) {
	q := dbc(c, h.db)
	if customerID := c.Query("square_customer_id"); customerID != "" {
		q = q.Where("square_customer_id = ?", customerID)
	}

	var rows []models.SquarePayment
	if err := q.Order("synced_at DESC").Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_square_payments", "could not list mirrored payments")
		return
	}
	httpresp.List(c, rows)
}
