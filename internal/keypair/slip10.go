// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package keypair

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
)

// SLIP-0010 hardened ed25519 derivation. Ed25519 only supports hardened
// child keys, so every path component gets the hardened offset applied.

const hardenedOffset = 0x80000000

var slip10MasterKey = []byte("ed25519 seed")

// deriveEd25519Path walks the hardened path from the BIP-39 seed and returns
// the 32-byte ed25519 key seed at the leaf.
func deriveEd25519Path(seed []byte, path []uint32) ([]byte, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("empty seed")
	}

	key, chain := hmacSplit(slip10MasterKey, seed)
	for _, index := range path {
		if index >= hardenedOffset {
			return nil, fmt.Errorf("path index %d already has the hardened bit set", index)
		}

		data := make([]byte, 0, 1+32+4)
		data = append(data, 0x00)
		data = append(data, key...)
		data = binary.BigEndian.AppendUint32(data, index|hardenedOffset)

		key, chain = hmacSplit(chain, data)
	}
	return key, nil
}

func hmacSplit(hmacKey, data []byte) (key, chain []byte) {
	mac := hmac.New(sha512.New, hmacKey)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}
