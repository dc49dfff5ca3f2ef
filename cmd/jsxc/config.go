package main

import (
	"os"

	"github.com/go-json-experiment/json"
)

// ProjectConfig holds the contents of jsxc.json, the way
// gnana997/uispec's cmd/uispec/config.go reads .uispec/config.yaml — except
// this module has no YAML dependency in its stack, so the project config
// uses the same go-json-experiment/json encoder the rest of this repository
// standardizes on.
type ProjectConfig struct {
	Extension string `json:"extension"`
	Workers   int    `json:"workers"`
	SentryDSN string `json:"sentryDsn"`
	LogPath   string `json:"logPath"`
}

// loadProjectConfig reads jsxc.json from the current directory. Returns a
// zero-value ProjectConfig, no error, if the file does not exist.
func loadProjectConfig() (ProjectConfig, error) {
	var cfg ProjectConfig
	data, err := os.ReadFile("jsxc.json")
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// resolveExtension applies the fallback chain: explicit flag, then
// jsxc.json, then ".tsx".
func resolveExtension(flagValue string, cfg ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.Extension != "" {
		return cfg.Extension
	}
	return ".tsx"
}
