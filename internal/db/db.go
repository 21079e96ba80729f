package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/config"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		// lookups first so FK targets exist
		&models.VenueType{},
		&models.PersonnelType{},
		&models.GigType{},
		&models.PaymentMethod{},
		&models.DocumentType{},
		&models.ContactRole{},

		&models.Customer{},
		&models.Venue{},
		&models.Contact{},
		&models.CustomerContact{},
		&models.VenueContact{},
		&models.Personnel{},
		&models.User{},
		&models.Gig{},
		&models.GigPersonnel{},
		&models.GigCheckIn{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.PersonnelPayout{},
		&models.FileRecord{},
		&models.CompanySettings{},

		&models.SquareCustomer{},
		&models.SquareInvoice{},
		&models.SquarePayment{},

		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedLookups(db)

	return db
}

// seedLookups inserts default dropdown values, skipping names that already exist.
func seedLookups(db *gorm.DB) {
	seed(db, []string{"Bar", "Restaurant", "Banquet Hall", "Private Residence", "Outdoor"},
		func(n string) *models.VenueType { return &models.VenueType{Name: n} })
	seed(db, []string{"DJ", "Karaoke Host", "Sound Tech", "Assistant"},
		func(n string) *models.PersonnelType { return &models.PersonnelType{Name: n} })
	seed(db, []string{"DJ", "Karaoke", "Trivia", "Wedding", "Private Party"},
		func(n string) *models.GigType { return &models.GigType{Name: n} })
	seed(db, []string{"Cash", "Check", "Card", "ACH", "Square"},
		func(n string) *models.PaymentMethod { return &models.PaymentMethod{Name: n} })
	seed(db, []string{"Contract", "W-9", "Insurance", "Invoice", "Other"},
		func(n string) *models.DocumentType { return &models.DocumentType{Name: n} })
	seed(db, []string{"Primary", "Billing", "On-Site", "Booking"},
		func(n string) *models.ContactRole { return &models.ContactRole{Name: n} })
}

func seed[T any](db *gorm.DB, names []string, build func(string) *T) {
	for _, name := range names {
		var count int64
		db.Model(new(T)).Where("name = ?", name).Count(&count)
		if count == 0 {
			db.Create(build(name))
		}
	}
}
