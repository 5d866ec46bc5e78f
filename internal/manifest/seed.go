// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package manifest

import (
	"encoding/hex"
	"fmt"

	"github.com/pdakit-io/pdakit/internal/pubkey"
	"github.com/pdakit-io/pdakit/internal/seeds"
)

// check validates that exactly one seed field is set.
func (s Seed) check() error {
	set := 0
	for _, present := range []bool{
		s.String != nil,
		s.Base58 != nil,
		s.Hex != nil,
		s.U64 != nil,
		s.U8 != nil,
	} {
		if present {
			set++
		}
	}
	switch set {
	case 0:
		return fmt.Errorf("no seed value (expected one of string, base58, hex, u64, u8)")
	case 1:
		return nil
	default:
		return fmt.Errorf("%d seed values set, expected exactly one", set)
	}
}

// bytes encodes the seed through the shared builder so limits and integer
// encodings stay identical to programmatic derivation.
func (s Seed) bytes() ([]byte, error) {
	b := seeds.New()
	switch {
	case s.String != nil:
		b.String(*s.String)
	case s.Base58 != nil:
		key, err := pubkey.FromBase58(*s.Base58)
		if err != nil {
			return nil, err
		}
		b.Pubkey(key)
	case s.Hex != nil:
		raw, err := hex.DecodeString(*s.Hex)
		if err != nil {
			return nil, fmt.Errorf("invalid hex seed: %w", err)
		}
		b.Bytes(raw)
	case s.U64 != nil:
		b.Uint64LE(*s.U64)
	case s.U8 != nil:
		b.Uint8(*s.U8)
	default:
		return nil, fmt.Errorf("no seed value")
	}

	list, err := b.Build()
	if err != nil {
		return nil, err
	}
	return list[0], nil
}
