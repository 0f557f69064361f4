package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/complaintdesk/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only fields
// present in the file overlay the runtime Config.
type JsonConfig struct {
	DatabaseDSN   *string `json:"database_dsn"`
	AdminEmail    *string `json:"admin_email"`
	AdminPassword *string `json:"admin_password"`
	LogLevel      *string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (via flagx.JsonConfigFlags);
// when neither is given, nothing is loaded. Read or unmarshal errors panic,
// since a config file that was explicitly pointed at but cannot be used is an
// operator mistake, not a recoverable condition.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.AdminEmail != nil {
		cfg.AdminEmail = *jc.AdminEmail
	}
	if jc.AdminPassword != nil {
		cfg.AdminPassword = *jc.AdminPassword
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
