// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdakit-io/pdakit/internal/pda"
	"github.com/pdakit-io/pdakit/internal/pubkey"
	"github.com/pdakit-io/pdakit/internal/seeds"
	"github.com/pdakit-io/pdakit/internal/util"
)

// seedFlags collects repeated -seed flags in order.
type seedFlags []string

func (s *seedFlags) String() string {
	return strings.Join(*s, ", ")
}

func (s *seedFlags) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// parseSeedArgs turns typed seed arguments ("string:vault", "u64:7", ...)
// into the ordered seed list.
func parseSeedArgs(args []string) ([][]byte, error) {
	b := seeds.New()
	for _, arg := range args {
		kind, value, found := strings.Cut(arg, ":")
		if !found {
			return nil, fmt.Errorf("seed %q has no type prefix (expected string:, base58:, hex:, u64:, or u8:)", arg)
		}
		switch kind {
		case "string":
			b.String(value)
		case "base58":
			key, err := pubkey.FromBase58(value)
			if err != nil {
				return nil, fmt.Errorf("seed %q: %w", arg, err)
			}
			b.Pubkey(key)
		case "hex":
			raw, err := hex.DecodeString(value)
			if err != nil {
				return nil, fmt.Errorf("seed %q: invalid hex: %w", arg, err)
			}
			b.Bytes(raw)
		case "u64":
			v, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("seed %q: %w", arg, err)
			}
			b.Uint64LE(v)
		case "u8":
			v, err := strconv.ParseUint(value, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("seed %q: %w", arg, err)
			}
			b.Uint8(uint8(v))
		default:
			return nil, fmt.Errorf("seed %q has unknown type %q", arg, kind)
		}
	}
	return b.Build()
}

func cmdDerive(args []string) error {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	program := fs.String("program", "", "program reference (registry name or base58 address)")
	var seedArgs seedFlags
	fs.Var(&seedArgs, "seed", "typed seed, repeatable (string:vault, u64:7, ...)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *program == "" {
		return fmt.Errorf("-program is required")
	}

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	programID, err := reg.Resolve(*program)
	if err != nil {
		return err
	}
	seedList, err := parseSeedArgs(seedArgs)
	if err != nil {
		return err
	}

	addr, bump, err := pda.Derive(seedList, programID)
	if err != nil {
		return err
	}

	fmt.Printf("address: %s\n", util.Colorize(addr.String(), util.ColorGreen))
	fmt.Printf("bump:    %d\n", bump)
	return nil
}

func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	program := fs.String("program", "", "program reference (registry name or base58 address)")
	address := fs.String("address", "", "candidate address (base58)")
	bump := fs.Uint("bump", 0, "bump value in [0,255]")
	var seedArgs seedFlags
	fs.Var(&seedArgs, "seed", "typed seed, repeatable (string:vault, u64:7, ...)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *program == "" || *address == "" {
		return fmt.Errorf("-program and -address are required")
	}
	if *bump > 255 {
		return fmt.Errorf("bump %d out of range [0,255]", *bump)
	}

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	programID, err := reg.Resolve(*program)
	if err != nil {
		return err
	}
	candidate, err := pubkey.FromBase58(*address)
	if err != nil {
		return err
	}
	seedList, err := parseSeedArgs(seedArgs)
	if err != nil {
		return err
	}

	if pda.Verify(candidate, seedList, uint8(*bump), programID) {
		fmt.Println(util.Colorize("valid", util.ColorGreen))
		return nil
	}
	fmt.Println(util.Colorize("invalid", util.ColorYellow))
	// Mismatch is a result, not a failure of the tool itself; still exit
	// non-zero so scripts can branch on it.
	return fmt.Errorf("address does not match seeds, bump, and program")
}

func cmdWithBump(args []string) error {
	fs := flag.NewFlagSet("with-bump", flag.ExitOnError)
	program := fs.String("program", "", "program reference (registry name or base58 address)")
	bump := fs.Uint("bump", 0, "bump value in [0,255]")
	var seedArgs seedFlags
	fs.Var(&seedArgs, "seed", "typed seed, repeatable (string:vault, u64:7, ...)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *program == "" {
		return fmt.Errorf("-program is required")
	}
	if *bump > 255 {
		return fmt.Errorf("bump %d out of range [0,255]", *bump)
	}

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	programID, err := reg.Resolve(*program)
	if err != nil {
		return err
	}
	seedList, err := parseSeedArgs(seedArgs)
	if err != nil {
		return err
	}

	addr, err := pda.DeriveWithBump(seedList, uint8(*bump), programID)
	if err != nil {
		return err
	}
	fmt.Printf("address: %s\n", util.Colorize(addr.String(), util.ColorGreen))
	return nil
}
