// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

// Package registry maps human-readable program names to addresses.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pdakit-io/pdakit/internal/pubkey"
	"github.com/pdakit-io/pdakit/internal/wellknown"
)

// Registry is a thread-safe name to program-address table.
type Registry struct {
	mu       sync.RWMutex
	programs map[string]pubkey.PublicKey
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{programs: make(map[string]pubkey.PublicKey)}
}

// Builtin returns a registry pre-populated with the well-known programs.
func Builtin() *Registry {
	r := New()
	for name, addr := range wellknown.Programs() {
		r.programs[name] = addr
	}
	return r
}

// Register stores an address under a name if the name is free.
// Returns false and leaves the registry unchanged when the name is taken;
// use Store for overwrite semantics.
func (r *Registry) Register(name string, addr pubkey.PublicKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.programs[name]; exists {
		return false
	}
	r.programs[name] = addr
	return true
}

// Store stores an address under a name, overwriting any existing entry.
func (r *Registry) Store(name string, addr pubkey.PublicKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs[name] = addr
}

// Get retrieves an address by registered name.
func (r *Registry) Get(name string) (pubkey.PublicKey, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr, ok := r.programs[name]
	return addr, ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.programs))
	for name := range r.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve turns a program reference into an address. A reference is either
// a registered name or a base58 address literal; names win over literals.
func (r *Registry) Resolve(ref string) (pubkey.PublicKey, error) {
	if addr, ok := r.Get(ref); ok {
		return addr, nil
	}
	addr, err := pubkey.FromBase58(ref)
	if err != nil {
		return pubkey.Zero, fmt.Errorf("unknown program %q (not a registered name or base58 address)", ref)
	}
	return addr, nil
}
