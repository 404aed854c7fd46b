// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Secrets have no defaults, so they are the one thing a deployment cannot
// omit: the credential codec cannot run without key material and session
// identifiers cannot be signed without a signing key.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKey == "" {
		return ErrMissingSecretKey
	}

	if cfg.App.SessionSignKey == "" {
		return ErrMissingSessionSignKey
	}

	if cfg.Webhooks.RateLimit < 1 {
		return ErrInvalidWebhookConfigs
	}

	if len(cfg.Webhooks.AllowedIPs) == 0 {
		return ErrInvalidWebhookConfigs
	}

	return nil
}
