// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package pda

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/pdakit-io/pdakit/internal/pubkey"
)

func randomProgramID(t *testing.T) pubkey.PublicKey {
	t.Helper()
	var pk pubkey.PublicKey
	if _, err := rand.Read(pk[:]); err != nil {
		t.Fatalf("rand.Read failed: %v", err)
	}
	return pk
}

func TestDeriveDeterministic(t *testing.T) {
	programID := randomProgramID(t)
	seeds := [][]byte{[]byte("vault"), []byte("user-42")}

	addr1, bump1, err := Derive(seeds, programID)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	addr2, bump2, err := Derive(seeds, programID)
	if err != nil {
		t.Fatalf("Derive (second) failed: %v", err)
	}

	if addr1 != addr2 {
		t.Fatalf("address mismatch: %s vs %s", addr1, addr2)
	}
	if bump1 != bump2 {
		t.Fatalf("bump mismatch: %d vs %d", bump1, bump2)
	}
}

func TestDeriveOffCurve(t *testing.T) {
	programID := randomProgramID(t)

	for i := 0; i < 100; i++ {
		seed := make([]byte, 8)
		binary.LittleEndian.PutUint64(seed, uint64(i))

		addr, _, err := Derive([][]byte{seed}, programID)
		if err != nil {
			t.Fatalf("Derive failed for seed %d: %v", i, err)
		}
		if addr.IsOnCurve() {
			t.Fatalf("derived address %s is on the curve for seed %d", addr, i)
		}
	}
}

func TestDeriveDisjointPrograms(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10k-trial disjointness sampling in short mode")
	}

	p1 := randomProgramID(t)
	p2 := randomProgramID(t)

	seen := make(map[pubkey.PublicKey]string, 20000)
	for i := 0; i < 10000; i++ {
		seed := make([]byte, 8)
		binary.LittleEndian.PutUint64(seed, uint64(i))
		seeds := [][]byte{[]byte("trial"), seed}

		a1, _, err := Derive(seeds, p1)
		if err != nil {
			t.Fatalf("Derive(p1) failed at trial %d: %v", i, err)
		}
		a2, _, err := Derive(seeds, p2)
		if err != nil {
			t.Fatalf("Derive(p2) failed at trial %d: %v", i, err)
		}

		if a1 == a2 {
			t.Fatalf("trial %d: same address %s under distinct programs", i, a1)
		}
		for addr, origin := range map[pubkey.PublicKey]string{a1: "p1", a2: "p2"} {
			if prev, dup := seen[addr]; dup {
				t.Fatalf("trial %d: address %s collides (%s vs %s)", i, addr, prev, origin)
			}
			seen[addr] = origin
		}
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	programID := randomProgramID(t)
	seeds := [][]byte{[]byte("escrow"), {0x01, 0x02, 0x03}}

	addr, bump, err := Derive(seeds, programID)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	if !Verify(addr, seeds, bump, programID) {
		t.Fatal("Verify returned false for a freshly derived address")
	}
}

func TestVerifyRejectsMutations(t *testing.T) {
	programID := randomProgramID(t)
	seeds := [][]byte{[]byte("alpha"), []byte("beta")}

	addr, bump, err := Derive(seeds, programID)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	// Flip every byte of every seed, one at a time.
	for i, seed := range seeds {
		for j := range seed {
			mutated := make([][]byte, len(seeds))
			for k, s := range seeds {
				mutated[k] = bytes.Clone(s)
			}
			mutated[i][j] ^= 0x01
			if Verify(addr, mutated, bump, programID) {
				t.Fatalf("Verify accepted seed %d with byte %d flipped", i, j)
			}
		}
	}

	// Every other bump value must fail.
	for b := 0; b <= 255; b++ {
		if uint8(b) == bump {
			continue
		}
		if Verify(addr, seeds, uint8(b), programID) {
			t.Fatalf("Verify accepted wrong bump %d (canonical %d)", b, bump)
		}
	}

	// Flip every byte of the program id, one at a time.
	for i := 0; i < pubkey.Size; i++ {
		wrongProgram := programID
		wrongProgram[i] ^= 0x01
		if Verify(addr, seeds, bump, wrongProgram) {
			t.Fatalf("Verify accepted program id with byte %d flipped", i)
		}
	}
}

func TestDeriveSeedBoundaries(t *testing.T) {
	programID := randomProgramID(t)

	tests := []struct {
		name    string
		seeds   [][]byte
		wantErr error
	}{
		{name: "no seeds", seeds: [][]byte{}},
		{name: "nil seeds", seeds: nil},
		{name: "32-byte seed", seeds: [][]byte{make([]byte, 32)}},
		{name: "33-byte seed", seeds: [][]byte{make([]byte, 33)}, wantErr: ErrInvalidSeeds},
		{name: "16 seeds", seeds: repeatSeeds(16)},
		{name: "17 seeds", seeds: repeatSeeds(17), wantErr: ErrInvalidSeeds},
		{name: "empty seed entry", seeds: [][]byte{{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Derive(tt.seeds, programID)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Derive failed: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Derive error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func repeatSeeds(n int) [][]byte {
	seeds := make([][]byte, n)
	for i := range seeds {
		seeds[i] = []byte{byte(i)}
	}
	return seeds
}

func TestDeriveExhaustion(t *testing.T) {
	attempts := 0
	d := NewDeriver(func([]byte) bool {
		attempts++
		return true // every candidate looks like a valid curve point
	})

	_, _, err := d.Derive([][]byte{[]byte("doomed")}, pubkey.PublicKey{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Derive error = %v, want ErrNotFound", err)
	}
	if attempts != 256 {
		t.Fatalf("curve test invoked %d times, want 256", attempts)
	}
}

func TestDeriveCanonicalBumpIsHighest(t *testing.T) {
	programID := randomProgramID(t)
	seeds := [][]byte{[]byte("canonical")}

	_, bump, err := Derive(seeds, programID)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	// Every bump above the canonical one must have been rejected as on-curve,
	// so DeriveWithBump must refuse it.
	for b := 255; b > int(bump); b-- {
		if _, err := DeriveWithBump(seeds, uint8(b), programID); !errors.Is(err, ErrOnCurve) {
			t.Fatalf("DeriveWithBump(%d) error = %v, want ErrOnCurve", b, err)
		}
	}
}

func TestDeriveWithBumpMatchesDerive(t *testing.T) {
	programID := randomProgramID(t)
	seeds := [][]byte{[]byte("pool"), {0xff}}

	addr, bump, err := Derive(seeds, programID)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	direct, err := DeriveWithBump(seeds, bump, programID)
	if err != nil {
		t.Fatalf("DeriveWithBump failed: %v", err)
	}
	if direct != addr {
		t.Fatalf("DeriveWithBump = %s, Derive = %s", direct, addr)
	}
}

func TestDeriveWithBumpRejectsInvalidSeeds(t *testing.T) {
	_, err := DeriveWithBump([][]byte{make([]byte, 33)}, 255, pubkey.PublicKey{})
	if !errors.Is(err, ErrInvalidSeeds) {
		t.Fatalf("DeriveWithBump error = %v, want ErrInvalidSeeds", err)
	}
}

func TestVerifyInvalidSeedsIsFalse(t *testing.T) {
	if Verify(pubkey.PublicKey{}, [][]byte{make([]byte, 33)}, 255, pubkey.PublicKey{}) {
		t.Fatal("Verify accepted a structurally invalid seed set")
	}
}

func TestDeriveConcurrent(t *testing.T) {
	programID := randomProgramID(t)
	seeds := [][]byte{[]byte("parallel")}

	want, wantBump, err := Derive(seeds, programID)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	done := make(chan error, 16)
	for i := 0; i < 16; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				addr, bump, err := Derive(seeds, programID)
				if err != nil {
					done <- err
					return
				}
				if addr != want || bump != wantBump {
					done <- errors.New("concurrent derivation diverged")
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 16; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}
