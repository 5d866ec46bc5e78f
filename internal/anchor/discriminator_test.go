// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package anchor

import (
	"bytes"
	"crypto/sha256"
	"testing"
)

func TestDiscriminatorIsSha256Prefix(t *testing.T) {
	d := AccountDiscriminator("Game")
	sum := sha256.Sum256([]byte("account:Game"))
	if !bytes.Equal(d[:], sum[:DiscriminatorLen]) {
		t.Fatalf("discriminator %x is not the sha256 prefix %x", d, sum[:DiscriminatorLen])
	}
}

func TestDiscriminatorNamespacesDistinct(t *testing.T) {
	account := AccountDiscriminator("Transfer")
	instruction := InstructionSighash("Transfer")
	event := EventDiscriminator("Transfer")

	if account == instruction || account == event || instruction == event {
		t.Fatalf("namespaces collided: account=%x global=%x event=%x", account, instruction, event)
	}
}

func TestDiscriminatorNamesDistinct(t *testing.T) {
	names := []string{"Game", "Pool", "RedeemableMint", "setup_game", "play", "init_pool"}
	seen := make(map[[DiscriminatorLen]byte]string)
	for _, name := range names {
		d := Discriminator(NamespaceGlobal, name)
		if prev, dup := seen[d]; dup {
			t.Fatalf("names %q and %q share discriminator %x", prev, name, d)
		}
		seen[d] = name
	}
}

func TestDiscriminatorDeterministic(t *testing.T) {
	if InstructionSighash("play") != InstructionSighash("play") {
		t.Fatal("sighash is not deterministic")
	}
}
