// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

// Package pubkey provides the 32-byte Solana public key type with
// base58 text encoding and the edwards25519 curve membership test.
package pubkey

import (
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// Size is the byte length of a public key.
const Size = 32

// PublicKey is a 32-byte account address. It may or may not correspond
// to an actual ed25519 key; program derived addresses deliberately do not.
type PublicKey [Size]byte

// Zero is the all-zero address (also the system program id).
var Zero PublicKey

// FromBytes builds a PublicKey from a byte slice of exactly Size bytes.
func FromBytes(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) != Size {
		return pk, fmt.Errorf("invalid public key length: expected %d, got %d", Size, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// FromBase58 parses a base58-encoded address string.
func FromBase58(s string) (PublicKey, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("invalid base58 address %q: %w", s, err)
	}
	return FromBytes(b)
}

// MustFromBase58 parses a base58 address and panics on failure.
// Intended for package-level constants only.
func MustFromBase58(s string) PublicKey {
	pk, err := FromBase58(s)
	if err != nil {
		panic(err)
	}
	return pk
}

// String returns the base58 encoding of the key.
func (p PublicKey) String() string {
	return base58.Encode(p[:])
}

// Bytes returns a copy of the key bytes.
func (p PublicKey) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, p[:])
	return b
}

// IsZero reports whether the key is the all-zero address.
func (p PublicKey) IsZero() bool {
	return p == Zero
}

// Short returns the address in abbreviated "ABCD..WXYZ" form for display.
func (p PublicKey) Short() string {
	s := p.String()
	if len(s) <= 12 {
		return s
	}
	return s[:4] + ".." + s[len(s)-4:]
}

// IsOnCurve reports whether the key decodes to a valid edwards25519 curve
// point, i.e. whether it could be an ed25519 public key. Program derived
// addresses must report false here.
func (p PublicKey) IsOnCurve() bool {
	return IsOnCurve(p[:])
}

// IsOnCurve reports whether the 32-byte value decodes to a valid edwards25519
// curve point. Values that do not decode cannot have an associated private key.
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
