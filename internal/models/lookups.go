package models

// Name-only enumeration tables backing dropdowns. Six of them, same shape.

type VenueType struct {
	Base
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

type PersonnelType struct {
	Base
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

type GigType struct {
	Base
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

type PaymentMethod struct {
	Base
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

type DocumentType struct {
	Base
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

type ContactRole struct {
	Base
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}
