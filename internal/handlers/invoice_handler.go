package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

type InvoiceHandler struct {
	db *gorm.DB
}

func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{db: db}
}

type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type InvoiceRequest struct {
	CustomerID uuid.UUID  `json:"customer_id" binding:"required"`
	GigID      *uuid.UUID `json:"gig_id"`

	IssueDate time.Time `json:"issue_date"`
	DueDate   time.Time `json:"due_date"`

	PaymentMethodID *uuid.UUID `json:"payment_method_id"`

	TaxRate float64 `json:"tax_rate"`
	Notes   string  `json:"notes"`

	Items []InvoiceItemRequest `json:"items"`
}

var invoiceStatuses = map[string]bool{
	"draft": true, "sent": true, "paid": true, "void": true,
}

func (h *InvoiceHandler) List(c *gin.Context) {
	q := dbc(c, h.db).Preload("Customer").Preload("Items")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		q = q.Where("customer_id = ?", customerID)
	}

	var invoices []models.Invoice
	if err := q.Order("issue_date DESC").Find(&invoices).Error; err != nil {
		httperr.Internal(c, "failed_to_list_invoices", "could not list invoices")
		return
	}

	httpresp.List(c, invoices)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var invoice models.Invoice
	if err := dbc(c, h.db).
		Preload("Customer").
		Preload("Gig").
		Preload("PaymentMethod").
		Preload("Items").
		First(&invoice, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "invoice")
		return
	}

	httpresp.OK(c, invoice)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	invoice := models.Invoice{
		Number:          h.nextNumber(c),
		CustomerID:      req.CustomerID,
		GigID:           req.GigID,
		Status:          "draft",
		IssueDate:       req.IssueDate,
		DueDate:         req.DueDate,
		PaymentMethodID: req.PaymentMethodID,
		TaxRate:         req.TaxRate,
		Notes:           req.Notes,
	}
	for _, it := range req.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		invoice.Items = append(invoice.Items, models.InvoiceItem{
			Description: it.Description,
			Quantity:    qty,
			UnitPrice:   it.UnitPrice,
		})
	}

	ComputeInvoiceTotals(&invoice)

	if err := dbc(c, h.db).Create(&invoice).Error; err != nil {
		httperr.FromDB(c, err, "invoice")
		return
	}

	httpresp.Created(c, invoice)
}

// Update replaces items wholesale and recomputes totals.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var invoice models.Invoice
	if err := dbc(c, h.db).Preload("Items").First(&invoice, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "invoice")
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	invoice.CustomerID = req.CustomerID
	invoice.GigID = req.GigID
	invoice.IssueDate = req.IssueDate
	invoice.DueDate = req.DueDate
	invoice.PaymentMethodID = req.PaymentMethodID
	invoice.TaxRate = req.TaxRate
	invoice.Notes = req.Notes

	newItems := make([]models.InvoiceItem, 0, len(req.Items))
	for _, it := range req.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		newItems = append(newItems, models.InvoiceItem{
			InvoiceID:   invoice.ID,
			Description: it.Description,
			Quantity:    qty,
			UnitPrice:   it.UnitPrice,
		})
	}
	oldItems := invoice.Items
	invoice.Items = newItems

	ComputeInvoiceTotals(&invoice)

	// Items are replaced one row at a time; batch writes have no single
	// primary key for change capture to resolve.
	err := dbc(c, h.db).Transaction(func(tx *gorm.DB) error {
		for i := range oldItems {
			if err := tx.Delete(&oldItems[i]).Error; err != nil {
				return err
			}
		}
		for i := range invoice.Items {
			if err := tx.Create(&invoice.Items[i]).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Customer", "Gig", "PaymentMethod", "Items").Save(&invoice).Error
	})
	if err != nil {
		httperr.FromDB(c, err, "invoice")
		return
	}

	httpresp.OK(c, invoice)
}

type InvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *InvoiceHandler) SetStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req InvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if !invoiceStatuses[req.Status] {
		httperr.BadRequest(c, "invalid_status", "status must be draft, sent, paid or void")
		return
	}

	var invoice models.Invoice
	if err := dbc(c, h.db).First(&invoice, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "invoice")
		return
	}

	invoice.Status = req.Status
	if req.Status == "paid" && invoice.PaidAt == nil {
		now := time.Now().UTC()
		invoice.PaidAt = &now
	}

	if err := dbc(c, h.db).Omit("Customer", "Gig", "PaymentMethod", "Items").Save(&invoice).Error; err != nil {
		httperr.FromDB(c, err, "invoice")
		return
	}

	httpresp.OK(c, invoice)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var invoice models.Invoice
	if err := dbc(c, h.db).First(&invoice, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "invoice")
		return
	}

	if invoice.Status == "paid" {
		httperr.Conflict(c, "invoice_paid", "paid invoices cannot be deleted")
		return
	}

	if err := dbc(c, h.db).Select("Items").Delete(&invoice).Error; err != nil {
		httperr.FromDB(c, err, "invoice")
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}

// nextNumber issues INV-YYYY-NNNN sequences; a unique index on number backs
// it against races.
func (h *InvoiceHandler) nextNumber(c *gin.Context) string {
	year := time.Now().Year()

	var count int64
	dbc(c, h.db).Model(&models.Invoice{}).
		Where("number LIKE ?", fmt.Sprintf("INV-%d-%%", year)).
		Count(&count)

	return fmt.Sprintf("INV-%d-%04d", year, count+1)
}
