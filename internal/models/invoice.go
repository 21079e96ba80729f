package models

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	Base

	Number string `gorm:"size:30;uniqueIndex;not null" json:"number"`

	CustomerID uuid.UUID `gorm:"type:uuid;not null" json:"customer_id"`
	Customer   Customer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"customer"`

	GigID *uuid.UUID `gorm:"type:uuid" json:"gig_id"`
	Gig   *Gig       `gorm:"constraint:OnDelete:SET NULL;" json:"gig,omitempty"`

	Status string `gorm:"size:20;default:'draft'" json:"status"`

	IssueDate time.Time  `json:"issue_date"`
	DueDate   time.Time  `json:"due_date"`
	PaidAt    *time.Time `json:"paid_at"`

	PaymentMethodID *uuid.UUID     `gorm:"type:uuid" json:"payment_method_id"`
	PaymentMethod   *PaymentMethod `gorm:"constraint:OnDelete:SET NULL;" json:"payment_method,omitempty"`

	// Always recomputed from items server-side.
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`

	TaxRate float64 `json:"tax_rate"`
	Notes   string  `gorm:"type:text" json:"notes"`

	Items []InvoiceItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`
}

type InvoiceItem struct {
	Base

	InvoiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"invoice_id"`

	Description string  `gorm:"size:255;not null" json:"description"`
	Quantity    float64 `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
	Amount      float64 `gorm:"not null" json:"amount"`
}
