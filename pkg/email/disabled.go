package email

import "context"

// DisabledSender rejects every send with ErrSendingDisabled. It stands in
// when no provider credential is configured so callers keep a non-nil Sender
// and failures surface as send errors instead of nil dereferences.
type DisabledSender struct{}

func (DisabledSender) Send(context.Context, string, Message) error {
	return ErrSendingDisabled
}

func (DisabledSender) SendTemplate(context.Context, string, TemplateMessage) error {
	return ErrSendingDisabled
}
