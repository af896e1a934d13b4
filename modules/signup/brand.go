package signup

// Brand is one newsletter audience with its own sheet, sender identity, and
// templates. The gateway serves several brands from a single process.
type Brand struct {
	// Name is the URL slug used in /subscribe/{brand}.
	Name string

	// DisplayName appears in fallback email copy.
	DisplayName string

	// SheetID is the Google spreadsheet receiving signups. Without it the
	// brand's endpoint rejects every request.
	SheetID string

	// SenderEmail is the From address for both welcome and operator mail.
	// When empty, notifications are skipped.
	SenderEmail string

	// OperatorEmail receives the new-subscriber notification. When empty,
	// only the welcome email is attempted.
	OperatorEmail string

	// WelcomeTemplateID selects a provider template for the welcome email;
	// zero means plain fallback copy.
	WelcomeTemplateID int64

	// NotifyTemplateID selects a provider template for the operator
	// notification; zero means plain fallback copy.
	NotifyTemplateID int64

	// DefaultSource and DefaultTag fill in when the payload omits them.
	DefaultSource string
	DefaultTag    string

	// LegacyPath is the pre-rename route alias still used by deployed
	// landing pages, e.g. "/erikaAPI".
	LegacyPath string
}

// Configured reports whether the brand can store subscriptions.
func (b Brand) Configured() bool {
	return b.SheetID != ""
}
