// Package session implements the harness's browser-session layer.
//
// Sessions are JSON files on disk, one per session id, removed by an hourly
// reaper once the session TTL elapses. The session id is a signed JWT
// carried in an httpOnly cookie. On top of the file store sits the
// credential store, which keeps the caller's encrypted credential record in
// the session and, optionally, in a long-lived "remember" cookie that can
// re-seed the session after a server-side reset.
package session
