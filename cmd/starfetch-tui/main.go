package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/starfetch/internal/config"
	"github.com/handiism/starfetch/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Settings file (JSON or YAML)")
	assetPath := flag.String("asset-path", "", "Set the path where constellations are loaded from")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *configPath, *assetPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, assetPath string) error {
	if configPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			configPath = p
		}
	}

	settings := config.DefaultSettings()
	if configPath != "" {
		var err error
		if settings, err = config.Load(configPath); err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
	}
	if assetPath != "" {
		settings.AssetPath = assetPath
	}

	return tui.Run(ctx, settings)
}
