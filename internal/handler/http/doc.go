// Package http is the harness's HTTP boundary: the chi router, the webhook
// ingestion endpoint, the authenticated management API, and the middleware
// chain (trace ids, request logging, session auth, per-IP rate limiting).
// Service errors are translated to status codes here and nowhere else.
package http
