package signup

import "errors"

var (
	// ErrInvalidEmail means no usable email address could be found in the
	// request payload.
	ErrInvalidEmail = errors.New("signup: valid email is required")

	// ErrBrandNotConfigured means the brand has no destination sheet, so
	// the subscription cannot be stored.
	ErrBrandNotConfigured = errors.New("signup: brand is not configured")

	// ErrRecordFailed means the subscription could not be appended to the
	// brand's sheet.
	ErrRecordFailed = errors.New("signup: failed to record subscription")

	// ErrMalformedPayload means the request body could not be decoded.
	ErrMalformedPayload = errors.New("signup: malformed payload")
)
