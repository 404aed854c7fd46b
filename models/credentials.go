package models

// Environment identifies the Plaid environment a set of credentials belongs
// to. Only the sandbox environment is supported by this harness.
type Environment string

const (
	// EnvironmentSandbox is the Plaid sandbox environment. All vendor calls
	// made by the harness target sandbox hosts.
	EnvironmentSandbox Environment = "sandbox"
)

// Valid reports whether e is one of the supported environments.
func (e Environment) Valid() bool {
	return e == EnvironmentSandbox
}

// CredentialRecord holds one caller's Plaid API credentials. It is created
// after the credentials have been validated against the vendor, serialized
// to JSON, and stored only in encrypted form (see the crypto package).
// The plaintext record lives in request scope and is never persisted as-is.
type CredentialRecord struct {
	// ClientID is the Plaid API key identifier.
	ClientID string `json:"client_id"`

	// Secret is the Plaid API secret paired with ClientID.
	Secret string `json:"secret"`

	// Environment is the Plaid environment the credentials are valid for.
	Environment Environment `json:"environment"`
}

// IsZero reports whether the record carries no credentials at all.
func (c CredentialRecord) IsZero() bool {
	return c.ClientID == "" && c.Secret == ""
}
