package httperr

import "errors"

// BusinessError is a domain-rule violation identified by a stable code
// ("invalid_state", "customer_not_found", ...). Handlers map the code to an
// HTTP status; the code itself is what clients match on.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// CodeOf extracts the business code from an error chain, if any.
func CodeOf(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

func IsBusiness(err error, code string) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}
