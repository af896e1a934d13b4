// Package signup implements the newsletter signup pipeline: decode a loosely
// shaped payload, extract and validate the email, append the subscription to
// the brand's Google sheet, then send welcome and operator emails. Multiple
// brands share one process; each has its own sheet, sender identity, and
// templates.
package signup
