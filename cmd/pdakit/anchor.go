// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package main

import (
	"flag"
	"fmt"

	"github.com/pdakit-io/pdakit/internal/anchor"
	"github.com/pdakit-io/pdakit/internal/pubkey"
	"github.com/pdakit-io/pdakit/internal/util"
	"github.com/pdakit-io/pdakit/internal/wellknown"
)

func cmdDiscriminator(args []string) error {
	fs := flag.NewFlagSet("discriminator", flag.ExitOnError)
	kind := fs.String("kind", "account", "discriminator namespace: account or event")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one name, got %d", fs.NArg())
	}
	name := fs.Arg(0)

	var d [anchor.DiscriminatorLen]byte
	switch *kind {
	case "account":
		d = anchor.AccountDiscriminator(name)
	case "event":
		d = anchor.EventDiscriminator(name)
	default:
		return fmt.Errorf("unknown kind %q (use account or event)", *kind)
	}

	fmt.Printf("%x\n", d)
	return nil
}

func cmdSighash(args []string) error {
	fs := flag.NewFlagSet("sighash", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one method name, got %d", fs.NArg())
	}

	d := anchor.InstructionSighash(fs.Arg(0))
	fmt.Printf("%x\n", d)
	return nil
}

func cmdAta(args []string) error {
	fs := flag.NewFlagSet("ata", flag.ExitOnError)
	wallet := fs.String("wallet", "", "wallet address (base58)")
	mint := fs.String("mint", "", "token mint address (base58)")
	token2022 := fs.Bool("token-2022", false, "derive for the token-2022 program")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *wallet == "" || *mint == "" {
		return fmt.Errorf("-wallet and -mint are required")
	}

	walletKey, err := pubkey.FromBase58(*wallet)
	if err != nil {
		return err
	}
	mintKey, err := pubkey.FromBase58(*mint)
	if err != nil {
		return err
	}

	derive := wellknown.AssociatedTokenAddress
	if *token2022 {
		derive = wellknown.AssociatedToken2022Address
	}
	addr, bump, err := derive(walletKey, mintKey)
	if err != nil {
		return err
	}

	fmt.Printf("address: %s\n", util.Colorize(addr.String(), util.ColorGreen))
	fmt.Printf("bump:    %d\n", bump)
	return nil
}

func cmdPrograms(args []string) error {
	fs := flag.NewFlagSet("programs", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	for _, name := range reg.Names() {
		addr, _ := reg.Get(name)
		fmt.Printf("%-20s %s\n", name, addr)
	}
	return nil
}
