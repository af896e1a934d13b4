package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client *postmark.Client
	stream string
}

// NewPostmarkSender creates a Postmark-backed sender. The server token is
// required; the account token is only needed for administrative operations
// and may be empty.
func NewPostmarkSender(cfg Config) (Sender, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: ServerToken is required", ErrInvalidConfig)
	}

	return &postmarkSender{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		stream: cfg.MessageStream,
	}, nil
}

// MustNewPostmarkSender creates a Postmark sender that panics on invalid
// config, failing fast during initialization.
func MustNewPostmarkSender(cfg Config) Sender {
	s, err := NewPostmarkSender(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *postmarkSender) Send(ctx context.Context, from string, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:          from,
		To:            msg.To,
		Subject:       msg.Subject,
		TextBody:      msg.TextBody,
		HTMLBody:      msg.HTMLBody,
		Tag:           msg.Tag,
		MessageStream: s.stream,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}

func (s *postmarkSender) SendTemplate(ctx context.Context, from string, msg TemplateMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendTemplatedEmail(ctx, postmark.TemplatedEmail{
		From:          from,
		To:            msg.To,
		TemplateID:    msg.TemplateID,
		TemplateModel: msg.Model,
		Tag:           msg.Tag,
		MessageStream: s.stream,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
