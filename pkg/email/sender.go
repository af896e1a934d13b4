package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Sender sends transactional email on behalf of a brand. The From address is
// per call because each brand has its own sender identity.
type Sender interface {
	// Send delivers a fully inlined message.
	Send(ctx context.Context, from string, msg Message) error

	// SendTemplate delivers a message composed by the provider from a
	// registered template and a field substitution model.
	SendTemplate(ctx context.Context, from string, msg TemplateMessage) error
}

// Message is a plain email with inlined subject and body.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
	Tag      string // optional, for provider-side analytics
}

// TemplateMessage is an email rendered by the provider from a template ID
// plus a substitution model.
type TemplateMessage struct {
	To         string
	TemplateID int64
	Model      map[string]any
	Tag        string
}

// Intentionally loose: full RFC 5322 validation produces false negatives on
// real addresses.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidAddress reports whether s looks like a deliverable email address.
func ValidAddress(s string) bool {
	return emailRegex.MatchString(s)
}

// Validate checks the message is deliverable before hitting the provider.
func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !ValidAddress(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(m.TextBody) == "" && strings.TrimSpace(m.HTMLBody) == "" {
		return fmt.Errorf("%w: TextBody or HTMLBody is required", ErrInvalidParams)
	}
	return nil
}

// Validate checks the template message before hitting the provider.
func (m TemplateMessage) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !ValidAddress(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if m.TemplateID <= 0 {
		return fmt.Errorf("%w: TemplateID is required", ErrInvalidParams)
	}
	return nil
}
