package config

import (
	"encoding/json"
	"os"

	"github.com/partsquest/cli/internal/flagx"
	"github.com/partsquest/cli/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be given either as a string like "15s"
// or as integer nanoseconds.
type jsonConfig struct {
	APIBaseURL  string         `json:"api_base_url"`
	HTTPTimeout timex.Duration `json:"http_timeout"`
	TokenFile   string         `json:"token_file"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent flag means no JSON is loaded. Only fields present
// in the file override defaults. Panics on read or unmarshal errors.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFilePath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
}
