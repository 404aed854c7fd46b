package crypto

import "github.com/fintest/plaidbox/models"

// CredentialCodec seals and opens credential records for at-rest storage in
// sessions and cookies. It knows nothing about HTTP, sessions, or the
// vendor; its single job is the envelope encryption of one small record.
//
// Envelope layout:
//
//	blob = hex(iv) + ":" + hex(ciphertext)
//
// where the ciphertext is the AES-256-CBC encryption of the JSON-serialized
// record under a key derived from a single configured secret.
type CredentialCodec interface {
	// Encrypt serializes record to JSON and encrypts it with a fresh random
	// IV. The IV is never reused across calls. Returns the envelope blob or
	// an error if serialization, cipher construction, or the random read
	// fails; an encryption failure is fatal to the calling request.
	Encrypt(record models.CredentialRecord) (string, error)

	// Decrypt opens an envelope blob produced by Encrypt. Every failure mode
	// (bad layout, bad hex, bad padding, invalid JSON) surfaces as
	// [ErrDecryption]; callers must treat it identically to "no credentials"
	// and must never forward cipher detail to the end user.
	Decrypt(blob string) (models.CredentialRecord, error)
}
