// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package keypair

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/argon2"
)

const (
	// Argon2id parameters (OWASP recommended)
	argon2Time    = 1         // iterations
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4         // parallelism
	argon2KeyLen  = 32        // AES-256

	saltLen = 32
)

// encryptedEnvelope is the on-disk format for passphrase-protected keypairs.
type encryptedEnvelope struct {
	EnvelopeVersion int    `json:"envelope_version"`
	Salt            string `json:"salt"`       // base64 Argon2id salt
	Nonce           string `json:"nonce"`      // base64 AES-GCM nonce
	Ciphertext      string `json:"ciphertext"` // base64 encrypted private key
}

// SaveEncrypted writes the keypair as an argon2id + AES-256-GCM envelope.
func (k *Keypair) SaveEncrypted(path string, passphrase []byte) error {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey(passphrase, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	defer zeroBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	envelope := encryptedEnvelope{
		EnvelopeVersion: 1,
		Salt:            base64.StdEncoding.EncodeToString(salt),
		Nonce:           base64.StdEncoding.EncodeToString(nonce),
		Ciphertext:      base64.StdEncoding.EncodeToString(gcm.Seal(nil, nonce, k.priv, nil)),
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write encrypted keypair: %w", err)
	}
	return nil
}

// LoadEncrypted reads a passphrase-protected keypair envelope.
// A wrong passphrase fails GCM authentication and is reported as an error.
func LoadEncrypted(path string, passphrase []byte) (*Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read encrypted keypair: %w", err)
	}

	var envelope encryptedEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse envelope %s: %w", path, err)
	}
	if envelope.EnvelopeVersion != 1 {
		return nil, fmt.Errorf("envelope_version %d not supported (expected 1)", envelope.EnvelopeVersion)
	}

	salt, err := base64.StdEncoding.DecodeString(envelope.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(envelope.Nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to decode nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(envelope.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	key := argon2.IDKey(passphrase, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	defer zeroBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	priv, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt keypair (wrong passphrase?): %w", err)
	}
	if len(priv) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("decrypted payload is %d bytes, expected %d", len(priv), ed25519.PrivateKeySize)
	}

	return FromSeed(priv[:ed25519.SeedSize])
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
