// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package main

import (
	"bytes"
	"testing"
)

func TestParseSeedArgs(t *testing.T) {
	list, err := parseSeedArgs([]string{
		"string:vault",
		"base58:11111111111111111111111111111111",
		"hex:deadbeef",
		"u64:258",
		"u8:9",
	})
	if err != nil {
		t.Fatalf("parseSeedArgs failed: %v", err)
	}

	want := [][]byte{
		[]byte("vault"),
		make([]byte, 32),
		{0xde, 0xad, 0xbe, 0xef},
		{0x02, 0x01, 0, 0, 0, 0, 0, 0},
		{9},
	}
	if len(list) != len(want) {
		t.Fatalf("got %d seeds, want %d", len(list), len(want))
	}
	for i := range want {
		if !bytes.Equal(list[i], want[i]) {
			t.Fatalf("seed %d = %x, want %x", i, list[i], want[i])
		}
	}
}

func TestParseSeedArgsStringWithColon(t *testing.T) {
	list, err := parseSeedArgs([]string{"string:a:b"})
	if err != nil {
		t.Fatalf("parseSeedArgs failed: %v", err)
	}
	if string(list[0]) != "a:b" {
		t.Fatalf("seed = %q, want %q", list[0], "a:b")
	}
}

func TestParseSeedArgsRejects(t *testing.T) {
	cases := []string{
		"vault",          // no type prefix
		"int:5",          // unknown type
		"u8:256",         // out of range
		"u64:not-number", // malformed
		"hex:zz",         // bad hex
		"base58:0OIl",    // bad base58
	}
	for _, c := range cases {
		if _, err := parseSeedArgs([]string{c}); err == nil {
			t.Fatalf("parseSeedArgs(%q) succeeded", c)
		}
	}
}
