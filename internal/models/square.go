package models

import "time"

// Read-only mirrors of Square records, keyed by Square's opaque IDs.
// Raw holds the full API response for fields we don't denormalize.

type SquareCustomer struct {
	Base

	SquareID    string `gorm:"size:64;uniqueIndex;not null" json:"square_id"`
	GivenName   string `gorm:"size:100" json:"given_name"`
	FamilyName  string `gorm:"size:100" json:"family_name"`
	CompanyName string `gorm:"size:150" json:"company_name"`
	Email       string `gorm:"size:150" json:"email"`
	Phone       string `gorm:"size:30" json:"phone"`

	Raw      []byte    `gorm:"type:jsonb" json:"raw"`
	SyncedAt time.Time `json:"synced_at"`
}

type SquareInvoice struct {
	Base

	SquareID         string `gorm:"size:64;uniqueIndex;not null" json:"square_id"`
	SquareCustomerID string `gorm:"size:64;index" json:"square_customer_id"`
	InvoiceNumber    string `gorm:"size:50" json:"invoice_number"`
	Status           string `gorm:"size:30" json:"status"`
	AmountCents      int64  `json:"amount_cents"`
	Currency         string `gorm:"size:3" json:"currency"`

	Raw      []byte    `gorm:"type:jsonb" json:"raw"`
	SyncedAt time.Time `json:"synced_at"`
}

type SquarePayment struct {
	Base

	SquareID         string `gorm:"size:64;uniqueIndex;not null" json:"square_id"`
	SquareCustomerID string `gorm:"size:64;index" json:"square_customer_id"`
	Status           string `gorm:"size:30" json:"status"`
	AmountCents      int64  `json:"amount_cents"`
	Currency         string `gorm:"size:3" json:"currency"`
	SourceType       string `gorm:"size:30" json:"source_type"`

	Raw      []byte    `gorm:"type:jsonb" json:"raw"`
	SyncedAt time.Time `json:"synced_at"`
}
