// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fintest/plaidbox/models"
)

// credentialCodec is the private implementation of [CredentialCodec].
type credentialCodec struct {
	// key is the AES-256 key derived once at construction time:
	// SHA-256 of the configured secret. Deterministic derivation keeps
	// blobs decryptable across restarts of the same deployment.
	key []byte
}

// NewCredentialCodec constructs a [CredentialCodec] whose AES-256 key is the
// SHA-256 digest of secret. The secret is expected to be a high-entropy
// server-side value from configuration, not a user password.
func NewCredentialCodec(secret string) CredentialCodec {
	key := sha256.Sum256([]byte(secret))
	return &credentialCodec{key: key[:]}
}

// Encrypt implements [CredentialCodec]. The record is JSON-serialized,
// PKCS#7-padded to the AES block size, and encrypted in CBC mode under a
// fresh random 16-byte IV read from the OS CSPRNG.
func (c *credentialCodec) Encrypt(record models.CredentialRecord) (string, error) {
	plaintext, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal credential record: %w", err)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext), nil
}

// Decrypt implements [CredentialCodec]. It splits the envelope on the first
// ":", hex-decodes both parts, decrypts, strips padding, and JSON-parses the
// result. Any failure collapses into [ErrDecryption]; the underlying cause
// is carried in the wrapped message for logging only.
func (c *credentialCodec) Decrypt(blob string) (models.CredentialRecord, error) {
	var record models.CredentialRecord

	ivHex, ctHex, found := strings.Cut(blob, ":")
	if !found {
		return record, fmt.Errorf("%w: missing iv separator", ErrDecryption)
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return record, fmt.Errorf("%w: decode iv: %v", ErrDecryption, err)
	}
	if len(iv) != aes.BlockSize {
		return record, fmt.Errorf("%w: iv length %d", ErrDecryption, len(iv))
	}

	ciphertext, err := hex.DecodeString(ctHex)
	if err != nil {
		return record, fmt.Errorf("%w: decode ciphertext: %v", ErrDecryption, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return record, fmt.Errorf("%w: ciphertext length %d", ErrDecryption, len(ciphertext))
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return record, fmt.Errorf("%w: create cipher: %v", ErrDecryption, err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return record, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	if err := json.Unmarshal(plaintext, &record); err != nil {
		return record, fmt.Errorf("%w: parse record: %v", ErrDecryption, err)
	}

	return record, nil
}

// pkcs7Pad appends 1..blockSize bytes, each equal to the pad length, so that
// the result is a whole number of blocks.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// pkcs7Unpad validates and strips the padding applied by pkcs7Pad.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}

	padLen := int(data[len(data)-1])
	if padLen < 1 || padLen > blockSize {
		return nil, fmt.Errorf("invalid pad length %d", padLen)
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}

	return data[:len(data)-padLen], nil
}
