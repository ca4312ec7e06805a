package domain

import "context"

// Mailer sends outbound email. Delivery is best-effort: the scheduling
// engine logs failures and never rolls back a committed transition over
// them.
type Mailer interface {
	Send(to, subject, body string) error
	SendWithAttachment(to, subject, body string, file []byte, filename string) error
}

// ResumeStore fetches resume bytes from the blob store by key.
type ResumeStore interface {
	FetchBytes(ctx context.Context, key string) ([]byte, error)
}
