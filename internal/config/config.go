// Package config loads runtime settings for the complaint desk.
//
// Sources are overlaid in order: defaults, then a JSON file (if given via
// -c/-config), then environment variables, then command-line flags. Later
// sources take precedence.
package config

// Config holds runtime settings for the complaint desk CLI.
//
// Fields:
//   - DatabaseDSN: path of the local SQLite file holding both collections.
//   - AdminEmail/AdminPassword: credentials of the seeded admin account,
//     created at bootstrap if absent.
//   - LogLevel: minimum slog level (debug, info, warn, error).
type Config struct {
	DatabaseDSN   string `env:"CDESK_DATABASE_DSN"`
	AdminEmail    string `env:"CDESK_ADMIN_EMAIL"`
	AdminPassword string `env:"CDESK_ADMIN_PASSWORD"`
	LogLevel      string `env:"CDESK_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "complaintdesk.db"
	c.AdminEmail = "admin@cms.local"
	c.AdminPassword = "admin123"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
