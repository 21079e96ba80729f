package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SpinCityEvents/gig-manager/internal/models"
)

func TestComputeInvoiceTotals(t *testing.T) {
	inv := &models.Invoice{
		TaxRate: 0.0825,
		Items: []models.InvoiceItem{
			{Description: "DJ services (4 hours)", Quantity: 4, UnitPrice: 150},
			{Description: "Lighting package", Quantity: 1, UnitPrice: 250},
		},
	}

	ComputeInvoiceTotals(inv)

	assert.Equal(t, 600.0, inv.Items[0].Amount)
	assert.Equal(t, 250.0, inv.Items[1].Amount)
	assert.Equal(t, 850.0, inv.Subtotal)
	assert.Equal(t, 70.13, inv.TaxAmount)
	assert.Equal(t, 920.13, inv.Total)
}

func TestComputeInvoiceTotalsIgnoresClientTotals(t *testing.T) {
	inv := &models.Invoice{
		Subtotal:  9999,
		TaxAmount: 9999,
		Total:     9999,
		Items: []models.InvoiceItem{
			{Description: "Karaoke night", Quantity: 1, UnitPrice: 300, Amount: 1},
		},
	}

	ComputeInvoiceTotals(inv)

	assert.Equal(t, 300.0, inv.Items[0].Amount)
	assert.Equal(t, 300.0, inv.Subtotal)
	assert.Equal(t, 0.0, inv.TaxAmount)
	assert.Equal(t, 300.0, inv.Total)
}

func TestComputeInvoiceTotalsRounding(t *testing.T) {
	inv := &models.Invoice{
		TaxRate: 0.1,
		Items: []models.InvoiceItem{
			{Quantity: 3, UnitPrice: 33.335},
		},
	}

	ComputeInvoiceTotals(inv)

	assert.Equal(t, 100.01, inv.Items[0].Amount)
	assert.Equal(t, 100.01, inv.Subtotal)
	assert.Equal(t, 10.0, inv.TaxAmount)
	assert.Equal(t, 110.01, inv.Total)
}

func TestComputeInvoiceTotalsEmpty(t *testing.T) {
	inv := &models.Invoice{TaxRate: 0.0825}

	ComputeInvoiceTotals(inv)

	assert.Equal(t, 0.0, inv.Subtotal)
	assert.Equal(t, 0.0, inv.TaxAmount)
	assert.Equal(t, 0.0, inv.Total)
}
