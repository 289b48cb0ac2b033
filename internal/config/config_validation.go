package config

import "time"

// Fallbacks applied after all sources are merged, so that a bare
// `go run ./cmd/server -d <dsn> -token-sign-key <key>` works out of the box.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultDriver         = "pgx"
	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "vocab-sync"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDriver
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
