package signup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/justerika/signup-gateway/pkg/email"
	"github.com/justerika/signup-gateway/pkg/logger"
)

// SendOutcome reports what happened to one notification attempt. Failures
// are observable but never propagate to the subscriber.
type SendOutcome string

const (
	OutcomeSent    SendOutcome = "sent"
	OutcomeSkipped SendOutcome = "skipped"
	OutcomeFailed  SendOutcome = "failed"
)

// Notifier sends the post-signup emails. Both methods swallow provider
// errors; the subscription is already stored by the time they run.
type Notifier interface {
	SendWelcome(ctx context.Context, brand Brand, rec Record) SendOutcome
	NotifyOperator(ctx context.Context, brand Brand, rec Record) SendOutcome
}

// EmailNotifier delivers welcome and operator emails through a Sender.
type EmailNotifier struct {
	sender email.Sender
	log    *slog.Logger
}

func NewEmailNotifier(sender email.Sender, log *slog.Logger) *EmailNotifier {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &EmailNotifier{sender: sender, log: log}
}

// SendWelcome emails the subscriber. Uses the brand's template when one is
// configured, plain fallback copy otherwise. Skipped when the brand has no
// sender identity.
func (n *EmailNotifier) SendWelcome(ctx context.Context, brand Brand, rec Record) SendOutcome {
	if brand.SenderEmail == "" {
		n.log.DebugContext(ctx, "welcome email skipped: no sender address", logger.Brand(brand.Name))
		return OutcomeSkipped
	}

	var err error
	if brand.WelcomeTemplateID > 0 {
		err = n.sender.SendTemplate(ctx, brand.SenderEmail, email.TemplateMessage{
			To:         rec.Email,
			TemplateID: brand.WelcomeTemplateID,
			Model:      rec.TemplateModel(),
			Tag:        "welcome",
		})
	} else {
		err = n.sender.Send(ctx, brand.SenderEmail, email.Message{
			To:       rec.Email,
			Subject:  fmt.Sprintf("Welcome to %s", brand.DisplayName),
			TextBody: fmt.Sprintf("Thanks for subscribing to %s. You're on the list.", brand.DisplayName),
			Tag:      "welcome",
		})
	}
	if err != nil {
		n.log.ErrorContext(ctx, "failed to send welcome email",
			logger.Brand(brand.Name), logger.Email(rec.Email), logger.Error(err))
		return OutcomeFailed
	}
	return OutcomeSent
}

// NotifyOperator emails the brand operator about the new subscriber.
// Skipped when no sender or operator address is configured.
func (n *EmailNotifier) NotifyOperator(ctx context.Context, brand Brand, rec Record) SendOutcome {
	if brand.SenderEmail == "" || brand.OperatorEmail == "" {
		n.log.DebugContext(ctx, "operator notification skipped: no operator address", logger.Brand(brand.Name))
		return OutcomeSkipped
	}

	var err error
	if brand.NotifyTemplateID > 0 {
		err = n.sender.SendTemplate(ctx, brand.SenderEmail, email.TemplateMessage{
			To:         brand.OperatorEmail,
			TemplateID: brand.NotifyTemplateID,
			Model:      rec.TemplateModel(),
			Tag:        "operator-notify",
		})
	} else {
		err = n.sender.Send(ctx, brand.SenderEmail, email.Message{
			To:      brand.OperatorEmail,
			Subject: fmt.Sprintf("New Subscriber: %s", rec.Email),
			TextBody: fmt.Sprintf("Source: %s\nTag: %s\nEmail: %s\nIP: %s\nTime: %s",
				rec.Source, rec.Tag, rec.Email, rec.SignupIP, rec.Timestamp.UTC().Format("2006-01-02 15:04:05 MST")),
			Tag: "operator-notify",
		})
	}
	if err != nil {
		n.log.ErrorContext(ctx, "failed to notify operator",
			logger.Brand(brand.Name), logger.Email(rec.Email), logger.Error(err))
		return OutcomeFailed
	}
	return OutcomeSent
}
