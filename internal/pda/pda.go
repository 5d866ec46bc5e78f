// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

// Package pda derives and verifies program derived addresses.
//
// A PDA is the sha256 digest of the caller's seeds, a bump byte, the owning
// program id, and a fixed marker string. Derivation searches bump values from
// 255 down to 0 and returns the first digest that does NOT decode to an
// edwards25519 curve point: a PDA is valid precisely because no private key
// can exist for it. The search order is a compatibility constant shared with
// deployed programs and must not change.
package pda

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/pdakit-io/pdakit/internal/pubkey"
)

const (
	// MaxSeeds is the maximum number of caller-supplied seeds. The bump
	// byte appended during derivation does not count against this limit.
	MaxSeeds = 16

	// MaxSeedLen is the maximum length in bytes of a single seed.
	MaxSeedLen = 32
)

// marker is the domain separator appended after the program id, ensuring
// PDA digests can never collide with hashes computed for other purposes.
var marker = []byte("ProgramDerivedAddress")

var (
	// ErrInvalidSeeds is returned when the seed count or a seed length
	// exceeds the structural limits. Reported before any hashing.
	ErrInvalidSeeds = errors.New("invalid seeds")

	// ErrNotFound is returned when all 256 bump values produce valid curve
	// points. Not retryable: the caller must change the seed set.
	ErrNotFound = errors.New("no viable program derived address for seeds")

	// ErrOnCurve is returned by DeriveWithBump when the requested bump
	// yields a digest that is a valid curve point.
	ErrOnCurve = errors.New("derived address is on the ed25519 curve")
)

// CurveTest reports whether 32 bytes decode to a valid curve point for the
// target key scheme. The production test is edwards25519 point decoding.
type CurveTest func([]byte) bool

// Deriver computes program derived addresses. It is stateless and safe for
// concurrent use; every method is a pure function of its arguments.
type Deriver struct {
	onCurve CurveTest
}

// NewDeriver returns a Deriver using the given curve test, or the
// edwards25519 default when onCurve is nil.
func NewDeriver(onCurve CurveTest) *Deriver {
	if onCurve == nil {
		onCurve = pubkey.IsOnCurve
	}
	return &Deriver{onCurve: onCurve}
}

var defaultDeriver = NewDeriver(nil)

// Derive finds the program derived address for the seeds under programID,
// returning the address and the canonical bump that produced it.
//
// Bumps are tried from 255 down to 0; the first bump whose digest is not a
// curve point wins. Identical inputs always yield the identical result.
func (d *Deriver) Derive(seeds [][]byte, programID pubkey.PublicKey) (pubkey.PublicKey, uint8, error) {
	if err := validateSeeds(seeds); err != nil {
		return pubkey.Zero, 0, err
	}
	for bump := 255; bump >= 0; bump-- {
		addr := hashSeeds(seeds, byte(bump), programID)
		if !d.onCurve(addr[:]) {
			return addr, uint8(bump), nil
		}
	}
	return pubkey.Zero, 0, ErrNotFound
}

// DeriveWithBump computes the address for a known bump without searching.
// It fails with ErrOnCurve when the digest decodes to a valid curve point,
// meaning the bump is not usable for these seeds.
func (d *Deriver) DeriveWithBump(seeds [][]byte, bump uint8, programID pubkey.PublicKey) (pubkey.PublicKey, error) {
	if err := validateSeeds(seeds); err != nil {
		return pubkey.Zero, err
	}
	addr := hashSeeds(seeds, bump, programID)
	if d.onCurve(addr[:]) {
		return pubkey.Zero, ErrOnCurve
	}
	return addr, nil
}

// Verify reports whether candidate equals the address derived from the given
// seeds, bump, and program id. A mismatch is a normal false result, not an
// error; structurally invalid seeds also verify as false.
func (d *Deriver) Verify(candidate pubkey.PublicKey, seeds [][]byte, bump uint8, programID pubkey.PublicKey) bool {
	if validateSeeds(seeds) != nil {
		return false
	}
	return hashSeeds(seeds, bump, programID) == candidate
}

// Derive calls Deriver.Derive on the default edwards25519 deriver.
func Derive(seeds [][]byte, programID pubkey.PublicKey) (pubkey.PublicKey, uint8, error) {
	return defaultDeriver.Derive(seeds, programID)
}

// DeriveWithBump calls Deriver.DeriveWithBump on the default deriver.
func DeriveWithBump(seeds [][]byte, bump uint8, programID pubkey.PublicKey) (pubkey.PublicKey, error) {
	return defaultDeriver.DeriveWithBump(seeds, bump, programID)
}

// Verify calls Deriver.Verify on the default deriver.
func Verify(candidate pubkey.PublicKey, seeds [][]byte, bump uint8, programID pubkey.PublicKey) bool {
	return defaultDeriver.Verify(candidate, seeds, bump, programID)
}

func validateSeeds(seeds [][]byte) error {
	if len(seeds) > MaxSeeds {
		return fmt.Errorf("%w: %d seeds exceeds maximum of %d", ErrInvalidSeeds, len(seeds), MaxSeeds)
	}
	for i, s := range seeds {
		if len(s) > MaxSeedLen {
			return fmt.Errorf("%w: seed %d is %d bytes, maximum is %d", ErrInvalidSeeds, i, len(s), MaxSeedLen)
		}
	}
	return nil
}

func hashSeeds(seeds [][]byte, bump byte, programID pubkey.PublicKey) pubkey.PublicKey {
	h := sha256.New()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write(programID[:])
	h.Write(marker)

	var addr pubkey.PublicKey
	copy(addr[:], h.Sum(nil))
	return addr
}
