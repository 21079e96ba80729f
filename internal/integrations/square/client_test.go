package square

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCustomersPaginates(t *testing.T) {
	var gotAuth, gotVersion string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/customers", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Square-Version")

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("cursor") {
		case "":
			json.NewEncoder(w).Encode(map[string]any{
				"customers": []map[string]any{
					{"id": "C1", "company_name": "Lucky Star Lounge"},
					{"id": "C2", "given_name": "Dana", "family_name": "Reyes"},
				},
				"cursor": "page2",
			})
		case "page2":
			json.NewEncoder(w).Encode(map[string]any{
				"customers": []map[string]any{
					{"id": "C3", "email_address": "c3@example.com"},
				},
			})
		default:
			t.Fatalf("unexpected cursor %q", r.URL.Query().Get("cursor"))
		}
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "sq-test-token", "")

	customers, err := c.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 3)

	assert.Equal(t, "Bearer sq-test-token", gotAuth)
	assert.Equal(t, apiVersion, gotVersion)

	assert.Equal(t, "C1", customers[0].ID)
	assert.Equal(t, "Lucky Star Lounge", customers[0].CompanyName)
	assert.Equal(t, "Dana", customers[1].GivenName)
	assert.NotEmpty(t, customers[0].Raw)
}

func TestListInvoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/invoices", r.URL.Path)
		require.Equal(t, "LOC123", r.URL.Query().Get("location_id"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"invoices": []map[string]any{
				{
					"id":                "INV1",
					"invoice_number":    "0001",
					"status":            "PAID",
					"primary_recipient": map[string]any{"customer_id": "C1"},
					"payment_requests": []map[string]any{
						{"computed_amount_money": map[string]any{"amount": 45000, "currency": "USD"}},
						{"computed_amount_money": map[string]any{"amount": 5000, "currency": "USD"}},
					},
				},
			},
		})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "tok", "LOC123")

	invoices, err := c.ListInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	inv := invoices[0]
	assert.Equal(t, "INV1", inv.ID)
	assert.Equal(t, "C1", inv.PrimaryRecipient.CustomerID)
	assert.Equal(t, int64(50000), inv.AmountCents())
	assert.Equal(t, "USD", inv.Currency())
}

func TestListInvoicesRequiresLocation(t *testing.T) {
	c := NewClientWithBaseURL("http://unused.invalid", "tok", "")

	_, err := c.ListInvoices(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SQUARE_LOCATION_ID")
}

func TestListPaymentsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{
				{"category": "AUTHENTICATION_ERROR", "code": "UNAUTHORIZED", "detail": "This request could not be authorized."},
			},
		})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "bad-token", "")

	_, err := c.ListPayments(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "UNAUTHORIZED")
}
