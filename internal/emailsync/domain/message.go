package domain

import "time"

// Message is transient provider-side email metadata. It lives only for the
// duration of one sync pass; it is never persisted verbatim.
type Message struct {
	ProviderID string    // stable per account, used for dedup
	ThreadID   string
	Subject    string
	From       string // raw "From" header
	To         []string
	Date       time.Time
	Preview    string
}
