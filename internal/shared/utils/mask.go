package utils

import "strings"

// MaskEmail masks an email address for safe logging.
// Example: "buyer@acme.example" -> "b***@acme.example"
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	if len(local) <= 1 {
		return local + "***@" + domain
	}
	return local[:1] + "***@" + domain
}
