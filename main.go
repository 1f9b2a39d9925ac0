package main

import (
	"fmt"
	"os"

	"github.com/shelfward/shelfward/internal/config"
	"github.com/shelfward/shelfward/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if len(os.Args) >= 2 && os.Args[1] == "version" {
		fmt.Printf("shelfward %s (%s)\n", Version, Commit)
		return
	}

	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
