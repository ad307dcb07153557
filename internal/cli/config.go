package cli

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Red1144/VRChatAppi/internal/api"
)

// Config is the CLI's own configuration, separate from the durable records
// the core persists.
type Config struct {
	ServerURL string `json:"server_url"`
	DataDir   string `json:"data_dir,omitempty"`
}

// LoadConfig reads the config file at path, falling back to defaults when the
// file does not exist yet.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{ServerURL: api.DefaultBaseURL}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = api.DefaultBaseURL
	}
	return &cfg, nil
}

// SaveConfig writes cfg to path, creating the directory when needed.
func SaveConfig(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// GetConfigPath returns the default config file location.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "vrcdesk", "config.json"), nil
}
