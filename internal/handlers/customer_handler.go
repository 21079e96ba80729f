package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/models"
	"github.com/SpinCityEvents/gig-manager/internal/validators"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

type CustomerRequest struct {
	Type         models.CustomerType `json:"type" binding:"required"`
	BusinessName string              `json:"business_name"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`

	Email string `json:"email"`
	Phone string `json:"phone"`

	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`

	Notes string `json:"notes"`

	SquareCustomerID *string `json:"square_customer_id"`
}

func (h *CustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := dbc(c, h.db)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(business_name) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			like, like, like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "could not list customers")
		return
	}

	httpresp.List(c, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := dbc(c, h.db).
		Preload("Contacts.Contact").
		Preload("Contacts.ContactRole").
		First(&customer, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "customer")
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := validators.CustomerName(req.Type, req.BusinessName, req.FirstName, req.LastName); err != nil {
		httperr.BadRequest(c, err.Error(), "customer name fields do not match the customer type")
		return
	}

	customer := models.Customer{
		Type:             req.Type,
		BusinessName:     strings.TrimSpace(req.BusinessName),
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Email:            req.Email,
		Phone:            req.Phone,
		AddressLine1:     req.AddressLine1,
		AddressLine2:     req.AddressLine2,
		City:             req.City,
		State:            req.State,
		PostalCode:       req.PostalCode,
		Notes:            req.Notes,
		SquareCustomerID: req.SquareCustomerID,
	}

	if err := dbc(c, h.db).Create(&customer).Error; err != nil {
		httperr.FromDB(c, err, "customer")
		return
	}

	httpresp.Created(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := dbc(c, h.db).First(&customer, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "customer")
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := validators.CustomerName(req.Type, req.BusinessName, req.FirstName, req.LastName); err != nil {
		httperr.BadRequest(c, err.Error(), "customer name fields do not match the customer type")
		return
	}

	customer.Type = req.Type
	customer.BusinessName = strings.TrimSpace(req.BusinessName)
	customer.FirstName = strings.TrimSpace(req.FirstName)
	customer.LastName = strings.TrimSpace(req.LastName)
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.AddressLine1 = req.AddressLine1
	customer.AddressLine2 = req.AddressLine2
	customer.City = req.City
	customer.State = req.State
	customer.PostalCode = req.PostalCode
	customer.Notes = req.Notes
	customer.SquareCustomerID = req.SquareCustomerID

	if err := dbc(c, h.db).Omit("Contacts").Save(&customer).Error; err != nil {
		httperr.FromDB(c, err, "customer")
		return
	}

	httpresp.OK(c, customer)
}

// Delete is rejected while gigs or invoices still reference the customer;
// contact links cascade away with the row.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := dbc(c, h.db).First(&customer, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "customer")
		return
	}

	var gigCount int64
	dbc(c, h.db).Model(&models.Gig{}).Where("customer_id = ?", id).Count(&gigCount)
	if gigCount > 0 {
		httperr.Conflict(c, "customer_in_use", "customer still has gigs")
		return
	}

	if err := dbc(c, h.db).Select("Contacts").Delete(&customer).Error; err != nil {
		httperr.FromDB(c, err, "customer")
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}

// --------- Contact links ---------

type LinkContactRequest struct {
	ContactID     uuid.UUID  `json:"contact_id" binding:"required"`
	ContactRoleID *uuid.UUID `json:"contact_role_id"`
}

func (h *CustomerHandler) LinkContact(c *gin.Context) {
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
	dbc(c, h.db).Model(&models.CustomerContact{}).
		Where("customer_id = ? AND contact_id = ?", id, req.ContactID).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "contact_already_linked", "contact is already linked to this customer")
		return
	}

	link := models.CustomerContact{
		CustomerID:    id,
		ContactID:     req.ContactID,
		ContactRoleID: req.ContactRoleID,
	}

	if err := dbc(c, h.db).Create(&link).Error; err != nil {
		httperr.FromDB(c, err, "customer_contact")
		return
	}

	httpresp.Created(c, link)
}

func (h *CustomerHandler) UnlinkContact(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	contactID, ok := parseUUIDParam(c, "contactId")
	if !ok {
		return
	}

	var link models.CustomerContact
	if err := dbc(c, h.db).
		Where("customer_id = ? AND contact_id = ?", id, contactID).
		First(&link).Error; err != nil {
		httperr.FromDB(c, err, "customer_contact")
		return
	}

	if err := dbc(c, h.db).Delete(&link).Error; err != nil {
		httperr.FromDB(c, err, "customer_contact")
		return
	}

	httpresp.OK(c, gin.H{"unlinked": contactID})
}
