package domain

import (
	"net/mail"
	"regexp"
	"strings"
)

var addressPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// ExtractAddress normalizes a raw "From" header to a bare email address.
// Both `Display Name <addr>` and a bare addr are accepted. Returns false
// when no address pattern is present; such messages cannot be matched to
// any entity and are excluded from downstream processing.
func ExtractAddress(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	if parsed, err := mail.ParseAddress(header); err == nil {
		return parsed.Address, true
	}

	// Headers that net/mail rejects (unquoted display names with commas,
	// stray angle brackets) often still carry a usable address
	if addr := addressPattern.FindString(header); addr != "" {
		return addr, true
	}

	return "", false
}
