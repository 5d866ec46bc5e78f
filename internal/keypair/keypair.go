// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

// Package keypair generates and stores ed25519 keypairs recovered from
// BIP-39 mnemonics, using the derivation path m/44'/501'/account'/0' so
// addresses match common wallet tooling.
package keypair

import (
	"crypto/ed25519"
	"fmt"

	"github.com/tyler-smith/go-bip39"

	"github.com/pdakit-io/pdakit/internal/pubkey"
)

// entropyBits sizes generated mnemonics at 12 words.
const entropyBits = 128

// Keypair wraps an ed25519 private key.
type Keypair struct {
	priv ed25519.PrivateKey
}

// Generate creates a fresh mnemonic and the keypair at account index 0.
// The words must be shown to the user exactly once and never logged.
func Generate() (string, *Keypair, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate entropy: %w", err)
	}
	words, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}

	kp, err := FromMnemonic(words, "", 0)
	if err != nil {
		return "", nil, err
	}
	return words, kp, nil
}

// FromMnemonic recovers the keypair at the given account index from a
// BIP-39 mnemonic and optional passphrase.
func FromMnemonic(words, passphrase string, account uint32) (*Keypair, error) {
	if !bip39.IsMnemonicValid(words) {
		return nil, fmt.Errorf("invalid mnemonic")
	}

	seed := bip39.NewSeed(words, passphrase)
	key, err := deriveEd25519Path(seed, []uint32{44, 501, account, 0})
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return &Keypair{priv: ed25519.NewKeyFromSeed(key)}, nil
}

// FromSeed builds a keypair directly from a 32-byte ed25519 seed.
func FromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid seed length: expected %d, got %d", ed25519.SeedSize, len(seed))
	}
	return &Keypair{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// Public returns the public key.
func (k *Keypair) Public() pubkey.PublicKey {
	var pk pubkey.PublicKey
	copy(pk[:], k.priv.Public().(ed25519.PublicKey))
	return pk
}

// Address returns the base58 address.
func (k *Keypair) Address() string {
	return k.Public().String()
}

// Sign signs a message with the private key.
func (k *Keypair) Sign(message []byte) []byte {
	return ed25519.Sign(k.priv, message)
}
