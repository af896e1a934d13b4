package signup

import (
	"strings"

	"github.com/justerika/signup-gateway/pkg/email"
)

// emailKeys are the payload keys checked in order before falling back to a
// positional scan. The deployed landing pages disagree on the field name.
var emailKeys = []string{"email", "Email", "emailAddress", "email_address"}

// ExtractEmail finds the subscriber email in a loosely shaped payload: known
// keys first, then the first "@"-containing value in submission order.
// Returns "" when nothing plausible is present.
func ExtractEmail(p Payload) string {
	for _, key := range emailKeys {
		if v, ok := p.Get(key); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	for _, f := range p {
		if strings.Contains(f.Value, "@") {
			return f.Value
		}
	}
	return ""
}

// NormalizeEmail canonicalizes an extracted address for storage.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidEmail reports whether s passes the signup address check.
func ValidEmail(s string) bool {
	return email.ValidAddress(s)
}
