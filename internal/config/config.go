package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	dirName   = "cloudvault"
	fileName  = "config.yaml"
	dirPerms  = 0700
	filePerms = 0600

	DefaultURL = "http://localhost:8080"

	keyServerURL = "server_url"
	keyToken     = "token"
)

// Config holds persisted CLI state. The bearer token is the only secret
// and the only thing the client persists besides the server address.
type Config struct {
	ServerURL string `mapstructure:"server_url"`
	Token     string `mapstructure:"token"`
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Load reads the config from disk, applying CLOUDVAULT_* environment
// overrides. A missing file yields a default Config, not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault(keyServerURL, DefaultURL)
	v.SetEnvPrefix("cloudvault")
	_ = v.BindEnv(keyServerURL) // CLOUDVAULT_SERVER_URL
	_ = v.BindEnv(keyToken)     // CLOUDVAULT_TOKEN

	p, err := Path()
	if err == nil {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultURL
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func Save(cfg *Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), dirPerms); err != nil {
		return err
	}

	v := viper.New()
	v.Set(keyServerURL, cfg.ServerURL)
	v.Set(keyToken, cfg.Token)
	if err := v.WriteConfigAs(p); err != nil {
		return err
	}
	// The token lives in this file; keep it private.
	return os.Chmod(p, filePerms)
}

// Clear removes the config file.
func Clear() error {
	p, err := Path()
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// HasToken reports whether a token is configured.
func (c *Config) HasToken() bool {
	return c.Token != ""
}
