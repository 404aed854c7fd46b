package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingSecretKey indicates that no credential encryption secret was
	// configured; the codec cannot derive an AES key without it.
	ErrMissingSecretKey = errors.New("missing credential encryption secret key")
	// ErrMissingSessionSignKey indicates that no session JWT signing key was
	// configured.
	ErrMissingSessionSignKey = errors.New("missing session sign key")
	// ErrInvalidWebhookConfigs indicates invalid webhook ingestion settings
	// (for example, a non-positive rate limit or an empty source allow-list).
	ErrInvalidWebhookConfigs = errors.New("invalid webhook configuration")
)
