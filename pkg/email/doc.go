// Package email provides transactional email delivery behind a small Sender
// interface with Postmark, local-file (development), and disabled backends.
package email
