package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

func TestCustomerName(t *testing.T) {
	tests := []struct {
		name string

		typ      models.CustomerType
		business string
		first    string
		last     string

		wantCode string
	}{
		{"valid business", models.CustomerTypeBusiness, "Lucky Star Lounge", "", "", ""},
		{"business missing name", models.CustomerTypeBusiness, "", "", "", "business_name_required"},
		{"business blank name", models.CustomerTypeBusiness, "   ", "", "", "business_name_required"},
		{"business with person name", models.CustomerTypeBusiness, "Lucky Star Lounge", "Dana", "", "person_name_not_allowed"},

		{"valid person", models.CustomerTypePerson, "", "Dana", "Reyes", ""},
		{"person missing first", models.CustomerTypePerson, "", "", "Reyes", "person_name_required"},
		{"person missing last", models.CustomerTypePerson, "", "Dana", "", "person_name_required"},
		{"person with business name", models.CustomerTypePerson, "Lucky Star Lounge", "Dana", "Reyes", "business_name_not_allowed"},

		{"unknown type", models.CustomerType("vendor"), "", "Dana", "Reyes", "invalid_customer_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CustomerName(tt.typ, tt.business, tt.first, tt.last)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, tt.wantCode), "want %s, got %v", tt.wantCode, err)
			}
		})
	}
}
