// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package pda

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/pdakit-io/pdakit/internal/pubkey"
)

// ErrIllegalOwner is returned by CreateWithSeed when the owner address ends
// with the PDA marker bytes, which would let a with-seed address collide
// with the program derived address space.
var ErrIllegalOwner = errors.New("owner address reserved for program derived addresses")

// CreateWithSeed computes the system program's create-with-seed address:
// sha256(base || seed || owner). Unlike a PDA there is no bump search and the
// result may be a valid curve point; the seed is a UTF-8 string of at most
// MaxSeedLen bytes.
func CreateWithSeed(base pubkey.PublicKey, seed string, owner pubkey.PublicKey) (pubkey.PublicKey, error) {
	if len(seed) > MaxSeedLen {
		return pubkey.Zero, fmt.Errorf("%w: seed is %d bytes, maximum is %d", ErrInvalidSeeds, len(seed), MaxSeedLen)
	}
	if bytes.Equal(owner[pubkey.Size-len(marker):], marker) {
		return pubkey.Zero, ErrIllegalOwner
	}

	h := sha256.New()
	h.Write(base[:])
	h.Write([]byte(seed))
	h.Write(owner[:])

	var addr pubkey.PublicKey
	copy(addr[:], h.Sum(nil))
	return addr, nil
}
