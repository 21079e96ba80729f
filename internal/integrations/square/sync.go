package square

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/models"
)

// SyncService refreshes the local Square mirror tables on demand. Mirror
// rows are upserted by Square's opaque ID and always carry the raw API
// payload; local data never flows back out.
type SyncService struct {
	client *Client
	db     *gorm.DB
}

func NewSyncService(client *Client, db *gorm.DB) *SyncService {
	return &SyncService{client: client, db: db}
}

type SyncSummary struct {
	Customers int       `json:"customers"`
	Invoices  int       `json:"invoices"`
	Payments  int       `json:"payments"`
	SyncedAt  time.Time `json:"synced_at"`
}

func (s *SyncService) Sync(ctx context.Context) (*SyncSummary, error) {
	now := time.Now().UTC()
	summary := &SyncSummary{SyncedAt: now}

	customers, err := s.client.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if err := s.upsertCustomer(ctx, c, now); err != nil {
			return nil, err
		}
	}
	summary.Customers = len(customers)

	invoices, err := s.client.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		if err := s.upsertInvoice(ctx, inv, now); err != nil {
			return nil, err
		}
	}
	summary.Invoices = len(invoices)

	payments, err := s.client.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if err := s.upsertPayment(ctx, p, now); err != nil {
			return nil, err
		}
	}
	summary.Payments = len(payments)

	return summary, nil
}

// Upserts go find-then-save so each mirror row change lands in the audit
// log as the operation it actually was.

func (s *SyncService) upsertCustomer(ctx context.Context, c Customer, now time.Time) error {
	var row models.SquareCustomer
	err := s.db.WithContext(ctx).Where("square_id = ?", c.ID).First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.SquareID = c.ID
	row.GivenName = c.GivenName
	row.FamilyName = c.FamilyName
	row.CompanyName = c.CompanyName
	row.Email = c.EmailAddress
	row.Phone = c.PhoneNumber
	row.Raw = c.Raw
	row.SyncedAt = now

	return s.db.WithContext(ctx).Save(&row).Error
}

func (s *SyncService) upsertInvoice(ctx context.Context, inv Invoice, now time.Time) error {
	var row models.SquareInvoice
	err := s.db.WithContext(ctx).Where("square_id = ?", inv.ID).First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.SquareID = inv.ID
	row.SquareCustomerID = inv.PrimaryRecipient.CustomerID
	row.InvoiceNumber = inv.InvoiceNumber
	row.Status = inv.Status
	row.AmountCents = inv.AmountCents()
	row.Currency = inv.Currency()
	row.Raw = inv.Raw
	row.SyncedAt = now

	return s.db.WithContext(ctx).Save(&row).Error
}

func (s *SyncService) upsertPayment(ctx context.Context, p Payment, now time.Time) error {
	var row models.SquarePayment
	err := s.db.WithContext(ctx).Where("square_id = ?", p.ID).First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.SquareID = p.ID
	row.SquareCustomerID = p.CustomerID
	row.Status = p.Status
	row.SourceType = p.SourceType
	row.AmountCents = p.AmountMoney.Amount
	row.Currency = p.AmountMoney.Currency
	row.Raw = p.Raw
	row.SyncedAt = now

	return s.db.WithContext(ctx).Save(&row).Error
}
