package validators

import (
	"strings"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

// CustomerName enforces the type-conditional name fields: business customers
// need a business name, person customers need first and last names. The two
// sets are mutually exclusive.
func CustomerName(typ models.CustomerType, businessName, firstName, lastName string) error {
	businessName = strings.TrimSpace(businessName)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	switch typ {
	case models.CustomerTypeBusiness:
		if businessName == "" {
			return httperr.ErrBusiness("business_name_required")
		}
		if firstName != "" || lastName != "" {
			return httperr.ErrBusiness("person_name_not_allowed")
		}
	case models.CustomerTypePerson:
		if firstName == "" || lastName == "" {
			return httperr.ErrBusiness("person_name_required")
		}
		if businessName != "" {
			return httperr.ErrBusiness("business_name_not_allowed")
		}
	default:
		return httperr.ErrBusiness("invalid_customer_type")
	}

	return nil
}
