package models

// LinkTokenRequest carries the caller-controlled parts of a link-token
// creation call. Credentials are attached by the vendor gateway, not by the
// browser.
type LinkTokenRequest struct {
	// ClientName is shown to the end user inside the Link widget.
	ClientName string `json:"client_name"`

	// Products lists the Plaid products the link token authorizes
	// (e.g. "auth", "identity", "transactions").
	Products []string `json:"products"`

	// CountryCodes restricts the institutions offered by the widget.
	CountryCodes []string `json:"country_codes"`

	// Language is the widget display language (e.g. "en").
	Language string `json:"language"`

	// ClientUserID is the caller's stable identifier for the end user.
	ClientUserID string `json:"client_user_id"`

	// Webhook is the URL Plaid will deliver item webhooks to. Optional.
	Webhook string `json:"webhook,omitempty"`

	// RedirectURI is required for OAuth institutions. Optional otherwise.
	RedirectURI string `json:"redirect_uri,omitempty"`
}

// LinkTokenResponse is the vendor's answer to a link-token creation call.
type LinkTokenResponse struct {
	// LinkToken authorizes one client-side Link widget session.
	LinkToken string `json:"link_token"`

	// Expiration is the vendor-reported expiry of the link token (RFC 3339).
	Expiration string `json:"expiration"`

	// RequestID identifies the vendor request for support purposes.
	RequestID string `json:"request_id"`
}

// ExchangeRequest carries the short-lived public token produced by a
// successful Link flow.
type ExchangeRequest struct {
	PublicToken string `json:"public_token"`
}

// ExchangeResponse is the vendor's answer to a public-token exchange. The
// access token is the long-lived server-side credential; the item id is the
// handle for the linked connection.
type ExchangeResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}
