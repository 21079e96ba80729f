package models

type CustomerType string

const (
	CustomerTypeBusiness CustomerType = "business"
	CustomerTypePerson   CustomerType = "person"
)

type Customer struct {
	Base

	Type CustomerType `gorm:"size:20;not null;default:'business'" json:"type"`

	// Business customers use BusinessName; person customers use First/LastName.
	BusinessName string `gorm:"size:150" json:"business_name"`
	FirstName    string `gorm:"size:100" json:"first_name"`
	LastName     string `gorm:"size:100" json:"last_name"`

	Email string `gorm:"size:150" json:"email"`
	Phone string `gorm:"size:30" json:"phone"`

	AddressLine1 string `gorm:"size:150" json:"address_line1"`
	AddressLine2 string `gorm:"size:150" json:"address_line2"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:50" json:"state"`
	PostalCode   string `gorm:"size:20" json:"postal_code"`

	Notes string `gorm:"type:text" json:"notes"`

	// Optional manual link to the Square mirror record.
	SquareCustomerID *string `gorm:"size:64" json:"square_customer_id"`

	Contacts []CustomerContact `gorm:"constraint:OnDelete:CASCADE;" json:"contacts,omitempty"`
}

func (c *Customer) DisplayName() string {
	if c.Type == CustomerTypeBusiness {
		return c.BusinessName
	}
	return c.FirstName + " " + c.LastName
}
