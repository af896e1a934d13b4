package signup

// BrandConfig is the per-brand env block; see Config for the prefixes.
type BrandConfig struct {
	SheetID           string `env:"SHEET_ID"`
	SenderEmail       string `env:"SENDER_EMAIL"`
	OperatorEmail     string `env:"OPERATOR_EMAIL"`
	WelcomeTemplateID int64  `env:"WELCOME_TEMPLATE_ID"`
	NotifyTemplateID  int64  `env:"NOTIFY_TEMPLATE_ID"`
	DefaultSource     string `env:"DEFAULT_SOURCE" envDefault:"unknown_source"`
	DefaultTag        string `env:"DEFAULT_TAG"`
}

// Config carries the env settings for every brand the gateway serves.
type Config struct {
	Erika      BrandConfig `envPrefix:"ERIKA_"`
	StillAwake BrandConfig `envPrefix:"STILLAWAKE_"`
}

func (bc BrandConfig) brand(name, displayName, legacyPath string) Brand {
	return Brand{
		Name:              name,
		DisplayName:       displayName,
		SheetID:           bc.SheetID,
		SenderEmail:       bc.SenderEmail,
		OperatorEmail:     bc.OperatorEmail,
		WelcomeTemplateID: bc.WelcomeTemplateID,
		NotifyTemplateID:  bc.NotifyTemplateID,
		DefaultSource:     bc.DefaultSource,
		DefaultTag:        bc.DefaultTag,
		LegacyPath:        legacyPath,
	}
}

// Brands materializes the configured brand list. Order matters only for
// route registration.
func (c Config) Brands() []Brand {
	return []Brand{
		c.Erika.brand("erika", "Just Erika", "/erikaAPI"),
		c.StillAwake.brand("stillawake", "StillAwake", "/stillawakeAPI"),
	}
}
