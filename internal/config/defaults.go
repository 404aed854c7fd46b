package config

import "time"

// plaidEgressIPs are the published source addresses Plaid delivers webhooks
// from. Loopback is included so local end-to-end testing works out of the
// box; override with WEBHOOKS_ALLOWED_IPS in real deployments.
var plaidEgressIPs = []string{
	"52.21.26.131",
	"52.21.47.157",
	"52.41.247.19",
	"52.88.82.239",
	"127.0.0.1",
}

// defaultConfig returns the built-in defaults for every tunable that has a
// sensible one. Secrets deliberately have no default; validation rejects a
// configuration that never sets them.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: "development",
			Version:     "dev",
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
		},
		Session: Session{
			Dir:          "./sessions",
			TTL:          24 * time.Hour,
			ReapInterval: time.Hour,
		},
		Plaid: Plaid{
			BaseURL:        "https://sandbox.plaid.com",
			RequestTimeout: 15 * time.Second,
		},
		Webhooks: Webhooks{
			AllowedIPs:            plaidEgressIPs,
			Retention:             24 * time.Hour,
			RateLimit:             30,
			RateWindow:            time.Minute,
			RegistryTTL:           24 * time.Hour,
			RegistrySweepInterval: time.Hour,
		},
	}
}
