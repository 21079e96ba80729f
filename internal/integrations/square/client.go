package square

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/SpinCityEvents/gig-manager/internal/config"
)

const apiVersion = "2024-06-04"

// Client is a read-only wrapper around the Square REST API. Everything it
// fetches is mirrored locally; nothing is ever written back to Square.
type Client struct {
	http       *resty.Client
	locationID string
}

func NewClient(cfg *config.Config) *Client {
	base := "https://connect.squareup.com"
	if cfg.SquareEnv != "production" {
		base = "https://connect.squareupsandbox.com"
	}

	return &Client{
		http: resty.New().
			SetBaseURL(base).
			SetAuthToken(cfg.SquareAccessToken).
			SetHeader("Square-Version", apiVersion).
			SetHeader("Content-Type", "application/json"),
		locationID: cfg.SquareLocationID,
	}
}

// NewClientWithBaseURL points the client at an arbitrary server; used in tests.
func NewClientWithBaseURL(baseURL, token, locationID string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(token).
			SetHeader("Square-Version", apiVersion),
		locationID: locationID,
	}
}

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type Customer struct {
	ID           string `json:"id"`
	GivenName    string `json:"given_name"`
	FamilyName   string `json:"family_name"`
	CompanyName  string `json:"company_name"`
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number"`

	Raw json.RawMessage `json:"-"`
}

type Invoice struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	Status        string `json:"status"`

	PrimaryRecipient struct {
		CustomerID string `json:"customer_id"`
	} `json:"primary_recipient"`

	PaymentRequests []struct {
		ComputedAmountMoney Money `json:"computed_amount_money"`
	} `json:"payment_requests"`

	Raw json.RawMessage `json:"-"`
}

// AmountCents sums the invoice's payment requests.
func (i Invoice) AmountCents() int64 {
	var total int64
	for _, pr := range i.PaymentRequests {
		total += pr.ComputedAmountMoney.Amount
	}
	return total
}

func (i Invoice) Currency() string {
	for _, pr := range i.PaymentRequests {
		if pr.ComputedAmountMoney.Currency != "" {
			return pr.ComputedAmountMoney.Currency
		}
	}
	return ""
}

type Payment struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	SourceType  string `json:"source_type"`
	CustomerID  string `json:"customer_id"`
	AmountMoney Money  `json:"amount_money"`

	Raw json.RawMessage `json:"-"`
}

type apiError struct {
	Errors []struct {
		Category string `json:"category"`
		Code     string `json:"code"`
		Detail   string `json:"detail"`
	} `json:"errors"`
}

type listPage struct {
	Customers []json.RawMessage `json:"customers"`
	Invoices  []json.RawMessage `json:"invoices"`
	Payments  []json.RawMessage `json:"payments"`
	Cursor    string            `json:"cursor"`
}

func (c *Client) getPage(ctx context.Context, path string, params map[string]string) (*listPage, error) {
	var page listPage
	var apiErr apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&page).
		SetError(&apiErr).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("square request %s: %w", path, err)
	}
	if resp.IsError() {
		detail := "unknown error"
		if len(apiErr.Errors) > 0 {
			detail = apiErr.Errors[0].Code + ": " + apiErr.Errors[0].Detail
		}
		return nil, fmt.Errorf("square %s returned %d: %s", path, resp.StatusCode(), detail)
	}

	return &page, nil
}

func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var out []Customer
	cursor := ""
	for {
		params := map[string]string{}
		if cursor != "" {
			params["cursor"] = cursor
		}

		page, err := c.getPage(ctx, "/v2/customers", params)
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Customers {
			var cust Customer
			if err := json.Unmarshal(raw, &cust); err != nil {
				return nil, fmt.Errorf("square customer decode: %w", err)
			}
			cust.Raw = raw
			out = append(out, cust)
		}

		if page.Cursor == "" {
			return out, nil
		}
		cursor = page.Cursor
	}
}

func (c *Client) ListInvoices(ctx context.Context) ([]Invoice, error) {
	if c.locationID == "" {
		return nil, fmt.Errorf("square invoices require SQUARE_LOCATION_ID")
	}

	var out []Invoice
	cursor := ""
	for {
		params := map[string]string{"location_id": c.locationID}
		if cursor != "" {
			params["cursor"] = cursor
		}

		page, err := c.getPage(ctx, "/v2/invoices", params)
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Invoices {
			var inv Invoice
			if err := json.Unmarshal(raw, &inv); err != nil {
				return nil, fmt.Errorf("square invoice decode: %w", err)
			}
			inv.Raw = raw
			out = append(out, inv)
		}

		if page.Cursor == "" {
			return out, nil
		}
		cursor = page.Cursor
	}
}

func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	var out []Payment
	cursor := ""
	for {
		params := map[string]string{}
		if cursor != "" {
			params["cursor"] = cursor
		}

		page, err := c.getPage(ctx, "/v2/payments", params)
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Payments {
			var p Payment
			if err := json.Unmarshal(raw, &p); err != nil {
				return nil, fmt.Errorf("square payment decode: %w", err)
			}
			p.Raw = raw
			out = append(out, p)
		}

		if page.Cursor == "" {
			return out, nil
		}
		cursor = page.Cursor
	}
}
