package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync/atomic"
	"time"
)

// DevSender writes messages to a local directory instead of delivering them.
// Useful for local development and manual testing of templates.
type DevSender struct {
	dir string
	seq atomic.Int64
}

// NewDevSender creates a sender that dumps emails to dir, creating it if
// needed.
func NewDevSender(dir string) (*DevSender, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: dev directory is required", ErrInvalidConfig)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create dev directory: %w", ErrInvalidConfig, err)
	}
	return &DevSender{dir: dir}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func sanitizeFilename(s string) string {
	return unsafeFilenameChars.ReplaceAllString(s, "_")
}

func (s *DevSender) filename(to, ext string) string {
	n := s.seq.Add(1)
	name := fmt.Sprintf("%s_%03d_%s.%s", time.Now().UTC().Format("20060102T150405"), n, sanitizeFilename(to), ext)
	return filepath.Join(s.dir, name)
}

func (s *DevSender) Send(_ context.Context, from string, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	body := msg.HTMLBody
	ext := "html"
	if body == "" {
		body = msg.TextBody
		ext = "txt"
	}
	content := fmt.Sprintf("From: %s\nTo: %s\nSubject: %s\nTag: %s\n\n%s", from, msg.To, msg.Subject, msg.Tag, body)
	if err := os.WriteFile(s.filename(msg.To, ext), []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSendEmail, err)
	}
	return nil
}

func (s *DevSender) SendTemplate(_ context.Context, from string, msg TemplateMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	payload, err := json.MarshalIndent(map[string]any{
		"from":        from,
		"to":          msg.To,
		"template_id": msg.TemplateID,
		"tag":         msg.Tag,
		"model":       msg.Model,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(s.filename(msg.To, "json"), payload, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSendEmail, err)
	}
	return nil
}
