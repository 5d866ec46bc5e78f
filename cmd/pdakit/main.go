// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

// pdakit derives and verifies Solana program derived addresses from the
// command line, manages derivation manifests, and generates keypairs.
//
// Usage:
//
//	pdakit derive -program <ref> -seed string:vault -seed u64:7
//	pdakit verify -program <ref> -address <base58> -bump <n> -seed ...
//	pdakit with-bump -program <ref> -bump <n> -seed ...
//	pdakit ata -wallet <base58> -mint <base58>
//	pdakit discriminator -kind account Game
//	pdakit sighash setup_game
//	pdakit keygen -out id.json
//	pdakit recover -out id.json
//	pdakit resolve pdas.yaml
//	pdakit watch pdas.yaml
//	pdakit programs
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pdakit-io/pdakit/internal/registry"
	"github.com/pdakit-io/pdakit/internal/util"
	"github.com/pdakit-io/pdakit/internal/version"
)

var dataDirectory string

func main() {
	// Handle --version before flag parsing
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" {
			fmt.Printf("pdakit %s\n", version.String())
			os.Exit(0)
		}
	}

	util.InitLogger()

	var dataDir string
	flag.StringVar(&dataDir, "d", "", "pdakit data directory (or set PDAKIT_DATA)")
	flag.Usage = usage
	flag.Parse()

	dataDirectory = util.GetDataDir(dataDir)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "derive":
		err = cmdDerive(args[1:])
	case "verify":
		err = cmdVerify(args[1:])
	case "with-bump":
		err = cmdWithBump(args[1:])
	case "ata":
		err = cmdAta(args[1:])
	case "discriminator":
		err = cmdDiscriminator(args[1:])
	case "sighash":
		err = cmdSighash(args[1:])
	case "keygen":
		err = cmdKeygen(args[1:])
	case "recover":
		err = cmdRecover(args[1:])
	case "resolve":
		err = cmdResolve(args[1:])
	case "watch":
		err = cmdWatch(args[1:])
	case "programs":
		err = cmdPrograms(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "pdakit — program derived address toolkit\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  pdakit derive -program <ref> -seed <typed>...   Derive a PDA and its bump\n")
	fmt.Fprintf(os.Stderr, "  pdakit verify -program <ref> -address <b58> -bump <n> -seed <typed>...\n")
	fmt.Fprintf(os.Stderr, "  pdakit with-bump -program <ref> -bump <n> -seed <typed>...\n")
	fmt.Fprintf(os.Stderr, "  pdakit ata -wallet <b58> -mint <b58>            Associated token account\n")
	fmt.Fprintf(os.Stderr, "  pdakit discriminator [-kind account|event] <Name>\n")
	fmt.Fprintf(os.Stderr, "  pdakit sighash <method_name>                    Instruction discriminator\n")
	fmt.Fprintf(os.Stderr, "  pdakit keygen [-out <file>] [-encrypt]          New mnemonic and keypair\n")
	fmt.Fprintf(os.Stderr, "  pdakit recover [-out <file>] [-account <n>]     Keypair from a mnemonic\n")
	fmt.Fprintf(os.Stderr, "  pdakit resolve <manifest.yaml>                  Derive all manifest entries\n")
	fmt.Fprintf(os.Stderr, "  pdakit watch <manifest.yaml>                    Re-resolve on file change\n")
	fmt.Fprintf(os.Stderr, "  pdakit programs                                 List registered programs\n")
	fmt.Fprintf(os.Stderr, "  pdakit --version                                Show version\n")
	fmt.Fprintf(os.Stderr, "\nSeed syntax: string:vault | base58:<addr> | hex:deadbeef | u64:42 | u8:3\n")
	fmt.Fprintf(os.Stderr, "\nFlags:\n")
	flag.PrintDefaults()
}

// loadRegistry returns the builtin registry extended with the user's
// configured programs.
func loadRegistry() (*registry.Registry, error) {
	reg := registry.Builtin()

	cfg, err := util.LoadConfig(dataDirectory)
	if err != nil {
		return nil, err
	}
	for name, ref := range cfg.Programs {
		addr, err := reg.Resolve(ref)
		if err != nil {
			return nil, fmt.Errorf("config program %q: %w", name, err)
		}
		reg.Store(name, addr)
	}
	return reg, nil
}
