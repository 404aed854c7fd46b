package models

// APIResponse is the generic envelope returned by management endpoints.
// Failure bodies carry Success=false and a generic error string; internal
// detail never leaves the process outside development mode.
type APIResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// WebhookListResponse is the paginated answer of the webhook list endpoint.
type WebhookListResponse struct {
	// Webhooks is the page of records, most recent first.
	Webhooks []WebhookRecord `json:"webhooks"`

	// Total is the number of records matching the filter before paging.
	Total int `json:"total"`

	// Page is the 1-based page number; zero when paging was not requested.
	Page int `json:"page,omitempty"`

	// Limit is the page size applied to the listing.
	Limit int `json:"limit,omitempty"`
}

// CredentialStatusResponse reports whether the session carries valid
// credentials, without ever echoing the secret.
type CredentialStatusResponse struct {
	Authenticated  bool        `json:"authenticated"`
	ClientID       string      `json:"client_id,omitempty"`
	Environment    Environment `json:"environment,omitempty"`
	HasAccessToken bool        `json:"has_access_token"`
}
