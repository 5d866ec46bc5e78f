// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

// Package wellknown holds the addresses of widely deployed programs and the
// standard derivations built on them.
package wellknown

import (
	"github.com/pdakit-io/pdakit/internal/pda"
	"github.com/pdakit-io/pdakit/internal/pubkey"
)

// Native and SPL program ids.
var (
	SystemProgram          = pubkey.MustFromBase58("11111111111111111111111111111111")
	StakeProgram           = pubkey.MustFromBase58("Stake11111111111111111111111111111111111111")
	TokenProgram           = pubkey.MustFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	Token2022Program       = pubkey.MustFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
	AssociatedTokenProgram = pubkey.MustFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
	MemoProgram            = pubkey.MustFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")
)

// Sysvar accounts.
var (
	SysvarRent  = pubkey.MustFromBase58("SysvarRent111111111111111111111111111111111")
	SysvarClock = pubkey.MustFromBase58("SysvarC1ock11111111111111111111111111111111")
)

// Programs returns the built-in name to address table. The returned map is
// a fresh copy each call.
func Programs() map[string]pubkey.PublicKey {
	return map[string]pubkey.PublicKey{
		"system":           SystemProgram,
		"stake":            StakeProgram,
		"token":            TokenProgram,
		"token-2022":       Token2022Program,
		"associated-token": AssociatedTokenProgram,
		"memo":             MemoProgram,
		"sysvar-rent":      SysvarRent,
		"sysvar-clock":     SysvarClock,
	}
}

// AssociatedTokenAddress derives the associated token account for a wallet
// and mint under the classic token program.
func AssociatedTokenAddress(wallet, mint pubkey.PublicKey) (pubkey.PublicKey, uint8, error) {
	return associatedTokenAddress(wallet, mint, TokenProgram)
}

// AssociatedToken2022Address derives the associated token account for a
// token-2022 mint.
func AssociatedToken2022Address(wallet, mint pubkey.PublicKey) (pubkey.PublicKey, uint8, error) {
	return associatedTokenAddress(wallet, mint, Token2022Program)
}

func associatedTokenAddress(wallet, mint, tokenProgram pubkey.PublicKey) (pubkey.PublicKey, uint8, error) {
	seeds := [][]byte{wallet[:], tokenProgram[:], mint[:]}
	return pda.Derive(seeds, AssociatedTokenProgram)
}
