// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

// Package manifest loads and resolves yaml derivation manifests.
//
// A manifest declares named PDA derivations so a project can keep its
// addresses in one reviewed file instead of scattering seed lists through
// scripts:
//
//	derivations:
//	  - name: game
//	    program: 7Kv1Y...
//	    seeds:
//	      - string: game
//	      - base58: 9XQeV...
//	  - name: vault-authority
//	    program: token
//	    seeds:
//	      - string: vault
//	      - u64: 7
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pdakit-io/pdakit/internal/pda"
	"github.com/pdakit-io/pdakit/internal/pubkey"
	"github.com/pdakit-io/pdakit/internal/registry"
)

// Manifest is the parsed derivation file.
type Manifest struct {
	Derivations []Entry `yaml:"derivations"`
}

// Entry is one named derivation.
type Entry struct {
	Name    string `yaml:"name"`
	Program string `yaml:"program"` // registry name or base58 literal
	Seeds   []Seed `yaml:"seeds"`
}

// Seed is one typed seed value. Exactly one field must be set.
type Seed struct {
	String *string `yaml:"string,omitempty"`
	Base58 *string `yaml:"base58,omitempty"`
	Hex    *string `yaml:"hex,omitempty"`
	U64    *uint64 `yaml:"u64,omitempty"`
	U8     *uint8  `yaml:"u8,omitempty"`
}

// Resolved is the derivation result for one entry.
type Resolved struct {
	Name    string
	Program pubkey.PublicKey
	Address pubkey.PublicKey
	Bump    uint8
}

// Load reads and validates a manifest file. Unknown yaml keys are rejected
// so a typoed seed type fails loudly instead of deriving a wrong address.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Derivations) == 0 {
		return fmt.Errorf("no derivations declared")
	}

	names := make(map[string]bool, len(m.Derivations))
	for i, e := range m.Derivations {
		if e.Name == "" {
			return fmt.Errorf("derivation %d has no name", i)
		}
		if names[e.Name] {
			return fmt.Errorf("duplicate derivation name %q", e.Name)
		}
		names[e.Name] = true

		if e.Program == "" {
			return fmt.Errorf("derivation %q has no program", e.Name)
		}
		for j, s := range e.Seeds {
			if err := s.check(); err != nil {
				return fmt.Errorf("derivation %q seed %d: %w", e.Name, j, err)
			}
		}
	}
	return nil
}

// Resolve derives every entry, resolving program references through reg.
// Results are returned in manifest order.
func (m *Manifest) Resolve(reg *registry.Registry) ([]Resolved, error) {
	out := make([]Resolved, 0, len(m.Derivations))
	for _, e := range m.Derivations {
		program, err := reg.Resolve(e.Program)
		if err != nil {
			return nil, fmt.Errorf("derivation %q: %w", e.Name, err)
		}

		seedList, err := e.seedBytes()
		if err != nil {
			return nil, fmt.Errorf("derivation %q: %w", e.Name, err)
		}

		addr, bump, err := pda.Derive(seedList, program)
		if err != nil {
			return nil, fmt.Errorf("derivation %q: %w", e.Name, err)
		}

		out = append(out, Resolved{
			Name:    e.Name,
			Program: program,
			Address: addr,
			Bump:    bump,
		})
	}
	return out, nil
}

func (e Entry) seedBytes() ([][]byte, error) {
	list := make([][]byte, 0, len(e.Seeds))
	for _, s := range e.Seeds {
		b, err := s.bytes()
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, nil
}
