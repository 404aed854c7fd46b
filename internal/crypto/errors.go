package crypto

import "errors"

// ErrDecryption is returned by [CredentialCodec.Decrypt] for every failure
// mode: malformed envelope, bad hex, wrong key, corrupted padding, or
// invalid JSON inside. Callers match it with [errors.Is] and treat it as
// "no credentials present", forcing re-authentication. The error must never
// reach an end user with cipher detail attached.
var ErrDecryption = errors.New("credential blob cannot be decrypted")
