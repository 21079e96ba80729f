package handlers

import (
	"math"

	"github.com/SpinCityEvents/gig-manager/internal/models"
)

// ComputeInvoiceTotals fills item amounts and the invoice subtotal/tax/total
// from quantities and unit prices. Client-supplied totals are ignored.
func ComputeInvoiceTotals(inv *models.Invoice) {
	var subtotal float64
	for i := range inv.Items {
		item := &inv.Items[i]
		item.Amount = round2(item.Quantity * item.UnitPrice)
		subtotal += item.Amount
	}

	inv.Subtotal = round2(subtotal)
	inv.TaxAmount = round2(subtotal * inv.TaxRate)
	inv.Total = round2(inv.Subtotal + inv.TaxAmount)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
