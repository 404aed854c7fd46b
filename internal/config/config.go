// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// plaidbox harness. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the credential
	// encryption secret, the session signing key, and the runtime
	// environment label.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Session holds settings for the file-backed session store.
	Session Session `envPrefix:"SESSION_"`

	// Plaid holds settings for the outbound vendor gateway.
	Plaid Plaid `envPrefix:"PLAID_"`

	// Webhooks holds settings for webhook ingestion, retention, and the
	// item registry.
	Webhooks Webhooks `envPrefix:"WEBHOOKS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security
// and versioning.
type App struct {
	// SecretKey is the secret from which the AES key for the credential
	// codec is derived (SHA-256 of this value). Must be kept confidential.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// SessionSignKey is the secret key used to sign and verify the JWT
	// session identifiers. Must be kept confidential and distinct from
	// SecretKey.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// Environment is the runtime environment label: "development" or
	// "production". In production error responses omit internal detail and
	// cookies carry the Secure attribute.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsProduction reports whether the harness runs with production hardening
// (secure cookies, generic error bodies).
func (a App) IsProduction() bool {
	return a.Environment == "production"
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds settings for the file-backed session store.
type Session struct {
	// Dir is the directory in which session files are kept, one JSON file
	// per session id.
	// Env: SESSION_DIR
	Dir string `env:"DIR"`

	// TTL is how long a session (and the matching remember cookie) remains
	// valid after creation.
	// Env: SESSION_TTL
	TTL time.Duration `env:"TTL"`

	// ReapInterval is how often the background reaper scans the session
	// directory for expired files.
	// Env: SESSION_REAP_INTERVAL
	ReapInterval time.Duration `env:"REAP_INTERVAL"`
}

// Plaid holds settings for the outbound vendor gateway.
type Plaid struct {
	// BaseURL is the vendor API host; defaults to the sandbox host.
	// Env: PLAID_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound vendor call.
	// Env: PLAID_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Webhooks holds settings for webhook ingestion, retention, and the item
// registry that routes inbound webhooks to their owning credentials.
type Webhooks struct {
	// AllowedIPs is the list of source addresses the ingestion endpoint
	// accepts webhooks from. Defaults to Plaid's published egress
	// addresses plus loopback for local testing.
	// Env: WEBHOOKS_ALLOWED_IPS (comma-separated)
	AllowedIPs []string `env:"ALLOWED_IPS" envSeparator:","`

	// TrustForwardedHeader makes source-address resolution honor the
	// X-Forwarded-For header. Enable only when a trusted reverse proxy
	// terminates inbound connections and appends the real peer address;
	// the header is client-controlled otherwise. Off by default.
	// Env: WEBHOOKS_TRUST_FORWARDED
	TrustForwardedHeader bool `env:"TRUST_FORWARDED"`

	// Retention is how long a received webhook stays in the store before
	// age-based eviction removes it.
	// Env: WEBHOOKS_RETENTION
	Retention time.Duration `env:"RETENTION"`

	// RateLimit is the maximum number of ingestion requests accepted from
	// one source address per RateWindow.
	// Env: WEBHOOKS_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`

	// RateWindow is the fixed window over which RateLimit applies.
	// Env: WEBHOOKS_RATE_WINDOW
	RateWindow time.Duration `env:"RATE_WINDOW"`

	// RegistryTTL is how long an item registration remains routable.
	// Aligned with the session TTL so webhook routing does not outlive the
	// credentials that created it.
	// Env: WEBHOOKS_REGISTRY_TTL
	RegistryTTL time.Duration `env:"REGISTRY_TTL"`

	// RegistrySweepInterval is how often the background sweeper evicts
	// expired registry entries.
	// Env: WEBHOOKS_REGISTRY_SWEEP_INTERVAL
	RegistrySweepInterval time.Duration `env:"REGISTRY_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
