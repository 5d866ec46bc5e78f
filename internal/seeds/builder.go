// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

// Package seeds builds ordered PDA seed lists from typed values.
// Seed order is significant: derivation and later verification must supply
// the identical sequence, so callers are expected to build seeds through one
// shared helper rather than concatenating byte slices ad hoc.
package seeds

import (
	"encoding/binary"
	"fmt"

	"github.com/pdakit-io/pdakit/internal/pda"
	"github.com/pdakit-io/pdakit/internal/pubkey"
)

// Builder accumulates an ordered seed list. The zero value is usable; the
// first limit violation is remembered and reported by Build. Builder methods
// return the receiver for chaining.
type Builder struct {
	list [][]byte
	err  error
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// String appends a UTF-8 string seed.
func (b *Builder) String(s string) *Builder {
	return b.add([]byte(s))
}

// Bytes appends a raw byte seed. The slice is copied.
func (b *Builder) Bytes(p []byte) *Builder {
	return b.add(append([]byte(nil), p...))
}

// Pubkey appends a 32-byte public key seed.
func (b *Builder) Pubkey(k pubkey.PublicKey) *Builder {
	return b.add(k.Bytes())
}

// Uint64LE appends an 8-byte little-endian integer seed.
func (b *Builder) Uint64LE(v uint64) *Builder {
	p := make([]byte, 8)
	binary.LittleEndian.PutUint64(p, v)
	return b.add(p)
}

// Uint8 appends a single-byte seed.
func (b *Builder) Uint8(v uint8) *Builder {
	return b.add([]byte{v})
}

// Build returns the accumulated seed list, or the first limit violation
// encountered while appending.
func (b *Builder) Build() ([][]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.list, nil
}

func (b *Builder) add(p []byte) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.list) >= pda.MaxSeeds {
		b.err = fmt.Errorf("%w: more than %d seeds", pda.ErrInvalidSeeds, pda.MaxSeeds)
		return b
	}
	if len(p) > pda.MaxSeedLen {
		b.err = fmt.Errorf("%w: seed %d is %d bytes, maximum is %d",
			pda.ErrInvalidSeeds, len(b.list), len(p), pda.MaxSeedLen)
		return b
	}
	b.list = append(b.list, p)
	return b
}
