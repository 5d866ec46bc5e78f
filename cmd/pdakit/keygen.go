// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/pdakit-io/pdakit/internal/keypair"
	"github.com/pdakit-io/pdakit/internal/util"
)

func cmdKeygen(args []string) error {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	out := fs.String("out", "", "write keypair to this file (default: print address only)")
	encrypt := fs.Bool("encrypt", false, "encrypt the keypair file with a passphrase")
	if err := fs.Parse(args); err != nil {
		return err
	}

	words, kp, err := keypair.Generate()
	if err != nil {
		return err
	}

	fmt.Printf("address:  %s\n", util.Colorize(kp.Address(), util.ColorGreen))
	fmt.Printf("mnemonic: %s\n", words)
	fmt.Println("\nWrite the mnemonic down; it is shown only once and never stored.")

	if *out == "" {
		return nil
	}
	return writeKeypair(kp, *out, *encrypt)
}

func cmdRecover(args []string) error {
	fs := flag.NewFlagSet("recover", flag.ExitOnError)
	out := fs.String("out", "", "write keypair to this file (default: print address only)")
	encrypt := fs.Bool("encrypt", false, "encrypt the keypair file with a passphrase")
	account := fs.Uint("account", 0, "account index in the derivation path")
	withPassphrase := fs.Bool("passphrase", false, "prompt for a BIP-39 passphrase")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Print("Enter mnemonic: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read mnemonic: %w", err)
	}
	words := strings.Join(strings.Fields(line), " ")

	bip39Pass := ""
	if *withPassphrase {
		pass, err := readSecret("Enter BIP-39 passphrase: ")
		if err != nil {
			return err
		}
		bip39Pass = string(pass)
	}

	kp, err := keypair.FromMnemonic(words, bip39Pass, uint32(*account))
	if err != nil {
		return err
	}

	fmt.Printf("address: %s\n", util.Colorize(kp.Address(), util.ColorGreen))

	if *out == "" {
		return nil
	}
	return writeKeypair(kp, *out, *encrypt)
}

func writeKeypair(kp *keypair.Keypair, path string, encrypt bool) error {
	if !encrypt {
		if err := kp.Save(path); err != nil {
			return err
		}
		fmt.Printf("keypair written to %s\n", path)
		return nil
	}

	pass, err := readSecret("Enter file passphrase: ")
	if err != nil {
		return err
	}
	confirm, err := readSecret("Confirm file passphrase: ")
	if err != nil {
		return err
	}
	if string(pass) != string(confirm) {
		return fmt.Errorf("passphrases do not match")
	}
	if len(pass) == 0 {
		return fmt.Errorf("empty passphrase")
	}

	if err := kp.SaveEncrypted(path, pass); err != nil {
		return err
	}
	fmt.Printf("encrypted keypair written to %s\n", path)
	return nil
}

// readSecret reads a passphrase without echo when stdin is a terminal, and
// falls back to a plain line read otherwise (piped input in scripts/tests).
func readSecret(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		pass, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase: %w", err)
		}
		return pass, nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
