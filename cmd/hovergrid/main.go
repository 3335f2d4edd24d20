package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"hovergrid/internal/config"
	"hovergrid/internal/game"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the JSON config file")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	// An explicit -config is relative to the caller's directory, not the binary's.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			if abs, err := filepath.Abs(*configPath); err == nil {
				*configPath = abs
			}
		}
	})

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if err := game.New(cfg).Run(); err != nil {
		log.Fatalf("Game: %v", err)
	}
}
