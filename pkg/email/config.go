package email

// Config holds email provider configuration. ServerToken is the process-wide
// Postmark credential; when it is absent the gateway starts with sending
// disabled rather than refusing to boot, since recording does not depend on it.
type Config struct {
	ServerToken   string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken  string `env:"POSTMARK_ACCOUNT_TOKEN"`
	MessageStream string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound"`
	DevDir        string `env:"EMAIL_DEV_DIR"` // when set, emails are written to disk instead of sent
}
