// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package registry

import (
	"testing"

	"github.com/pdakit-io/pdakit/internal/pubkey"
	"github.com/pdakit-io/pdakit/internal/wellknown"
)

func TestResolveName(t *testing.T) {
	r := Builtin()
	addr, err := r.Resolve("token")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if addr != wellknown.TokenProgram {
		t.Fatalf("Resolve(token) = %s, want %s", addr, wellknown.TokenProgram)
	}
}

func TestResolveLiteral(t *testing.T) {
	r := New()
	literal := wellknown.MemoProgram.String()
	addr, err := r.Resolve(literal)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if addr != wellknown.MemoProgram {
		t.Fatalf("Resolve(%s) = %s", literal, addr)
	}
}

func TestResolveUnknown(t *testing.T) {
	if _, err := Builtin().Resolve("no-such-program"); err == nil {
		t.Fatal("Resolve accepted an unknown reference")
	}
}

func TestRegisterNoOverwrite(t *testing.T) {
	r := New()
	if !r.Register("mine", wellknown.TokenProgram) {
		t.Fatal("Register failed on a free name")
	}
	if r.Register("mine", wellknown.MemoProgram) {
		t.Fatal("Register overwrote an existing name")
	}
	if addr, _ := r.Get("mine"); addr != wellknown.TokenProgram {
		t.Fatalf("entry changed to %s", addr)
	}

	r.Store("mine", wellknown.MemoProgram)
	if addr, _ := r.Get("mine"); addr != wellknown.MemoProgram {
		t.Fatal("Store did not overwrite")
	}
}

func TestNamesSorted(t *testing.T) {
	r := New()
	r.Store("zebra", pubkey.PublicKey{})
	r.Store("alpha", pubkey.PublicKey{})
	r.Store("mango", pubkey.PublicKey{})

	names := r.Names()
	want := []string{"alpha", "mango", "zebra"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
