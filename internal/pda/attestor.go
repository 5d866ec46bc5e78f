// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package pda

import "github.com/pdakit-io/pdakit/internal/pubkey"

// Attestor reports which program id is executing in the current context.
// The hosting runtime implements this; pdakit never decides it on its own.
// The second return is false when no program context is active.
type Attestor interface {
	CurrentProgram() (pubkey.PublicKey, bool)
}

// Authorized reports whether addr may act as a signing authority for the
// current execution context: the attestor must confirm the executing program
// is programID, and addr must verify against the seeds and bump under that
// same program. Either check failing means not authorized.
func Authorized(att Attestor, addr pubkey.PublicKey, seeds [][]byte, bump uint8, programID pubkey.PublicKey) bool {
	if att == nil {
		return false
	}
	current, ok := att.CurrentProgram()
	if !ok || current != programID {
		return false
	}
	return Verify(addr, seeds, bump, programID)
}
