package config

import "time"

// Fallbacks applied by validate for settings that have a safe default.
const (
	defaultHTTPAddress    = ":8080"
	defaultTokenIssuer    = "taskblog"
	defaultTokenDuration  = time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// validate checks the merged configuration and fills in defaults for the
// fields that have one. Secrets and the database DSN have no default and
// must be provided.
func (c *StructuredConfig) validate() error {
	if c.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if c.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.App.TokenDuration <= 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}

	return nil
}
