package email

import "errors"

var (
	ErrInvalidConfig     = errors.New("mailer: invalid config")
	ErrInvalidParams     = errors.New("mailer: invalid message params")
	ErrFailedToSendEmail = errors.New("mailer: failed to send email")
	ErrSendingDisabled   = errors.New("mailer: sending is disabled")
)
