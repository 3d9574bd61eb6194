package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The wrapped key must survive process restarts, so an in-memory keystore
// DSN is rejected alongside an empty one.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.PasswordIterations <= 0 || cfg.App.TokenIterations <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
