// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package keypair

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"os"
)

// Keypair files use the common JSON byte-array format: the 64-byte ed25519
// private key (seed followed by public key) as an array of integers. This
// keeps the files importable by standard wallet CLIs.

// Save writes the keypair to path with owner-only permissions.
// json.Marshal would base64-encode a []byte, so the bytes are widened to
// ints to get the plain integer array the interchange format wants.
func (k *Keypair) Save(path string) error {
	ints := make([]int, len(k.priv))
	for i, b := range k.priv {
		ints[i] = int(b)
	}
	data, err := json.Marshal(ints)
	if err != nil {
		return fmt.Errorf("failed to marshal keypair: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write keypair file: %w", err)
	}
	return nil
}

// LoadFile reads a keypair from a JSON byte-array file.
func LoadFile(path string) (*Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keypair file: %w", err)
	}

	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return nil, fmt.Errorf("failed to parse keypair file %s: %w", path, err)
	}
	if len(ints) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("keypair file %s holds %d bytes, expected %d",
			path, len(ints), ed25519.PrivateKeySize)
	}

	priv := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	for i, v := range ints {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("keypair file %s has out-of-range byte %d at index %d", path, v, i)
		}
		priv[i] = byte(v)
	}

	rederived := ed25519.NewKeyFromSeed(priv.Seed())
	if !bytes.Equal(priv[32:], rederived[32:]) {
		return nil, fmt.Errorf("keypair file %s is inconsistent: stored public key does not match seed", path)
	}
	return &Keypair{priv: priv}, nil
}
