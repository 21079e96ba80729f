package models

// CompanySettings is a single-row table edited from the owner-only settings page.
type CompanySettings struct {
	Base

	CompanyName string `gorm:"size:150" json:"company_name"`
	Email       string `gorm:"size:150" json:"email"`
	Phone       string `gorm:"size:30" json:"phone"`

	AddressLine1 string `gorm:"size:150" json:"address_line1"`
	AddressLine2 string `gorm:"size:150" json:"address_line2"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:50" json:"state"`
	PostalCode   string `gorm:"size:20" json:"postal_code"`

	Timezone       string  `gorm:"size:64" json:"timezone"`
	DefaultTaxRate float64 `json:"default_tax_rate"`
}
