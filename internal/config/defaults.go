package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied to fields left empty by every configuration source.
const (
	DefaultDBDriver              = "postgres"
	DefaultHTTPAddress           = "localhost:8080"
	DefaultRequestTimeout        = 30 * time.Second
	DefaultSessionTTL            = 24 * time.Hour
	DefaultAppVersion            = "dev"
	DefaultMaxOpenConns          = 10
	DefaultAuthRateLimit         = 20
	DefaultAuthRateWindow        = time.Minute
	DefaultAdapterAddress        = "localhost:8080"
	DefaultAdapterRequestTimeout = 10 * time.Second
)

func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = DefaultSessionTTL
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultAppVersion
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}
	if cfg.Server.AuthRateLimit == 0 {
		cfg.Server.AuthRateLimit = DefaultAuthRateLimit
	}
	if cfg.Server.AuthRateWindow == 0 {
		cfg.Server.AuthRateWindow = DefaultAuthRateWindow
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterRequestTimeout
	}
}
