package config

import "errors"

func ValidateForRun(cfg *Config) error {
	if cfg.UserBackendURL == "" {
		return errors.New("USER_BACKEND_URL environment variable is required")
	}
	return nil
}
