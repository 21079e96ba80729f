package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address has a domain part that actually
// resolves: an MX record preferred, a plain A/AAAA record accepted as
// fallback. It does not verify the mailbox exists.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
