// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

// Package anchor computes the 8-byte discriminators the Anchor framework
// prefixes to account data, instruction data, and emitted events. The
// discriminator is the first 8 bytes of sha256("<namespace>:<name>"), where
// the namespace is "account", "global", or "event" and the name is spelled
// exactly as in the program source (CamelCase struct names, snake_case
// method names).
package anchor

import "crypto/sha256"

// DiscriminatorLen is the byte length of every Anchor discriminator.
const DiscriminatorLen = 8

// Namespaces used by Anchor's code generator.
const (
	NamespaceAccount = "account"
	NamespaceGlobal  = "global"
	NamespaceEvent   = "event"
)

// Discriminator returns the 8-byte discriminator for a namespaced name.
func Discriminator(namespace, name string) [DiscriminatorLen]byte {
	sum := sha256.Sum256([]byte(namespace + ":" + name))

	var d [DiscriminatorLen]byte
	copy(d[:], sum[:DiscriminatorLen])
	return d
}

// AccountDiscriminator returns the discriminator stored in the first 8 bytes
// of an account owned by an Anchor program. The name is the account struct
// name, e.g. "Game".
func AccountDiscriminator(name string) [DiscriminatorLen]byte {
	return Discriminator(NamespaceAccount, name)
}

// InstructionSighash returns the discriminator prefixing instruction data.
// The name is the snake_case method name, e.g. "setup_game".
func InstructionSighash(name string) [DiscriminatorLen]byte {
	return Discriminator(NamespaceGlobal, name)
}

// EventDiscriminator returns the discriminator prefixing an emitted event.
func EventDiscriminator(name string) [DiscriminatorLen]byte {
	return Discriminator(NamespaceEvent, name)
}
