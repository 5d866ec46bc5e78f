// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package pda

import (
	"crypto/rand"
	"errors"
	"strings"
	"testing"

	"github.com/pdakit-io/pdakit/internal/pubkey"
)

func TestCreateWithSeedDeterministic(t *testing.T) {
	var base, owner pubkey.PublicKey
	if _, err := rand.Read(base[:]); err != nil {
		t.Fatalf("rand.Read failed: %v", err)
	}
	if _, err := rand.Read(owner[:]); err != nil {
		t.Fatalf("rand.Read failed: %v", err)
	}

	a1, err := CreateWithSeed(base, "stake:0", owner)
	if err != nil {
		t.Fatalf("CreateWithSeed failed: %v", err)
	}
	a2, err := CreateWithSeed(base, "stake:0", owner)
	if err != nil {
		t.Fatalf("CreateWithSeed (second) failed: %v", err)
	}
	if a1 != a2 {
		t.Fatalf("address mismatch: %s vs %s", a1, a2)
	}

	a3, err := CreateWithSeed(base, "stake:1", owner)
	if err != nil {
		t.Fatalf("CreateWithSeed failed: %v", err)
	}
	if a3 == a1 {
		t.Fatal("different seeds produced the same address")
	}
}

func TestCreateWithSeedTooLong(t *testing.T) {
	_, err := CreateWithSeed(pubkey.PublicKey{}, strings.Repeat("a", 33), pubkey.PublicKey{})
	if !errors.Is(err, ErrInvalidSeeds) {
		t.Fatalf("error = %v, want ErrInvalidSeeds", err)
	}

	if _, err := CreateWithSeed(pubkey.PublicKey{}, strings.Repeat("a", 32), pubkey.PublicKey{}); err != nil {
		t.Fatalf("32-byte seed rejected: %v", err)
	}
}

func TestCreateWithSeedIllegalOwner(t *testing.T) {
	var owner pubkey.PublicKey
	copy(owner[pubkey.Size-len(marker):], marker)

	_, err := CreateWithSeed(pubkey.PublicKey{}, "anything", owner)
	if !errors.Is(err, ErrIllegalOwner) {
		t.Fatalf("error = %v, want ErrIllegalOwner", err)
	}
}

type stubAttestor struct {
	program pubkey.PublicKey
	active  bool
}

func (s stubAttestor) CurrentProgram() (pubkey.PublicKey, bool) {
	return s.program, s.active
}

func TestAuthorized(t *testing.T) {
	programID := randomProgramID(t)
	other := randomProgramID(t)
	seeds := [][]byte{[]byte("authority")}

	addr, bump, err := Derive(seeds, programID)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	if !Authorized(stubAttestor{program: programID, active: true}, addr, seeds, bump, programID) {
		t.Fatal("matching program context not authorized")
	}
	if Authorized(stubAttestor{program: other, active: true}, addr, seeds, bump, programID) {
		t.Fatal("foreign program context authorized")
	}
	if Authorized(stubAttestor{program: programID, active: false}, addr, seeds, bump, programID) {
		t.Fatal("inactive context authorized")
	}
	if Authorized(nil, addr, seeds, bump, programID) {
		t.Fatal("nil attestor authorized")
	}
	if Authorized(stubAttestor{program: programID, active: true}, addr, seeds, bump+1, programID) {
		t.Fatal("wrong bump authorized")
	}
}
