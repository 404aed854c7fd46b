package service

import "errors"

var (
	// ErrForbiddenSource rejects a webhook whose source address is not on
	// the vendor egress allow-list.
	ErrForbiddenSource = errors.New("webhook source not allowed")

	// ErrMalformedPayload rejects a webhook body that is not valid JSON or
	// lacks the required item_id field.
	ErrMalformedPayload = errors.New("malformed webhook payload")

	// ErrUnknownItem rejects a webhook for an item this process never
	// issued. Without the check any third party could pollute the feed.
	ErrUnknownItem = errors.New("unknown item")

	// ErrValidation is returned when a request is missing required fields
	// or carries invalid values.
	ErrValidation = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
