// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pdakit-io/pdakit/internal/manifest"
	"github.com/pdakit-io/pdakit/internal/registry"
	"github.com/pdakit-io/pdakit/internal/util"
)

func cmdResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one manifest path, got %d", fs.NArg())
	}

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	return resolveAndPrint(fs.Arg(0), reg)
}

func resolveAndPrint(path string, reg *registry.Registry) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	results, err := m.Resolve(reg)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("%-24s %s  bump=%d  program=%s\n",
			r.Name, util.Colorize(r.Address.String(), util.ColorGreen), r.Bump, r.Program.Short())
	}
	return nil
}

// cmdWatch re-resolves the manifest whenever the file changes. Editors
// replace files with rename+create, so the watch is on the directory and
// events are filtered by name and debounced.
func cmdWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one manifest path, got %d", fs.NArg())
	}
	path := fs.Arg(0)

	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	if err := resolveAndPrint(path, reg); err != nil {
		// A broken manifest should not kill the watch; the next save may
		// fix it.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	util.Info("watching manifest", "path", path)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Debounce timer to avoid rapid re-resolves while an editor writes.
	var debounce *time.Timer
	const debounceDelay = 300 * time.Millisecond

	target := filepath.Clean(path)
	for {
		select {
		case <-sigCh:
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				fmt.Printf("\n--- %s changed ---\n", path)
				if err := resolveAndPrint(path, reg); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			util.Warn("watch error", "err", err)
		}
	}
}
