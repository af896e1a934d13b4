package email

// New selects a Sender from config: the dev sender when DevDir is set, the
// Postmark sender when a server token is present, and the disabled sender
// otherwise. The ok result is false only in the disabled case so callers can
// log the degraded mode.
func New(cfg Config) (Sender, bool, error) {
	if cfg.DevDir != "" {
		s, err := NewDevSender(cfg.DevDir)
		return s, true, err
	}
	if cfg.ServerToken != "" {
		s, err := NewPostmarkSender(cfg)
		return s, true, err
	}
	return DisabledSender{}, false, nil
}
