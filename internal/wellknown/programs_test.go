// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package wellknown

import (
	"crypto/rand"
	"testing"

	"github.com/pdakit-io/pdakit/internal/pda"
	"github.com/pdakit-io/pdakit/internal/pubkey"
)

func TestSystemProgramIsZero(t *testing.T) {
	if !SystemProgram.IsZero() {
		t.Fatalf("system program = %s, want the all-zero address", SystemProgram)
	}
}

func TestProgramsTableDistinct(t *testing.T) {
	table := Programs()
	if len(table) == 0 {
		t.Fatal("empty program table")
	}

	seen := make(map[pubkey.PublicKey]string)
	for name, addr := range table {
		if prev, dup := seen[addr]; dup {
			t.Fatalf("programs %q and %q share address %s", prev, name, addr)
		}
		seen[addr] = name
	}
}

func TestProgramsTableIsACopy(t *testing.T) {
	Programs()["system"] = pubkey.MustFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")
	if got := Programs()["system"]; got != SystemProgram {
		t.Fatal("mutating a returned table leaked into the package")
	}
}

func TestAssociatedTokenAddress(t *testing.T) {
	var wallet, mint pubkey.PublicKey
	if _, err := rand.Read(wallet[:]); err != nil {
		t.Fatalf("rand.Read failed: %v", err)
	}
	if _, err := rand.Read(mint[:]); err != nil {
		t.Fatalf("rand.Read failed: %v", err)
	}

	ata, bump, err := AssociatedTokenAddress(wallet, mint)
	if err != nil {
		t.Fatalf("AssociatedTokenAddress failed: %v", err)
	}
	if ata.IsOnCurve() {
		t.Fatalf("ATA %s is on the curve", ata)
	}

	seeds := [][]byte{wallet[:], TokenProgram[:], mint[:]}
	if !pda.Verify(ata, seeds, bump, AssociatedTokenProgram) {
		t.Fatal("ATA does not verify against its defining seeds")
	}

	ata2022, _, err := AssociatedToken2022Address(wallet, mint)
	if err != nil {
		t.Fatalf("AssociatedToken2022Address failed: %v", err)
	}
	if ata2022 == ata {
		t.Fatal("token and token-2022 ATAs collided")
	}
}
