package config

import (
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/activity_board/environment"

	"go.uber.org/config"
)

// directory the YAML config files are read from, relative to the working directory
var configDir = "."

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name     string         `yaml:"name"`
	Backend  BackendConfig  `yaml:"backend"`
	Board    BoardConfig    `yaml:"board"`
	Sessions SessionsConfig `yaml:"sessions"`
}

// BackendConfig stores the location of the activities API
type BackendConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// BoardConfig stores the status message timings of the activity board
type BoardConfig struct {
	// SuccessHideDelay is how long a success message stays visible before it is hidden
	// and the activities are reloaded
	SuccessHideDelay time.Duration `yaml:"success_hide_delay"`
	// SignupErrorHideDelay is how long a rejected signup message stays visible
	SignupErrorHideDelay time.Duration `yaml:"signup_error_hide_delay"`
}

// SessionsConfig stores the configuration of browser sessions
type SessionsConfig struct {
	CookieName  string        `yaml:"cookie_name"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	configFiles := []config.YAMLOption{config.File(filepath.Join(configDir, "base.yaml"))}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, config.File(filepath.Join(configDir, "production.yaml")))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.File(filepath.Join(configDir, "development.yaml")))
	}
	configProvider, err := config.NewYAML(configFiles...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load config files")
	}

	var cfg AppConfig

	err = configProvider.Get(config.Root).Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate app config")
	}

	if backendURL := env.Get(environment.BackendURL); backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}

	return &cfg, nil
}
