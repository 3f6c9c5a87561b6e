package main

import (
	"github.com/AleXutzZu/LibraManager/internal/config"
	"github.com/AleXutzZu/LibraManager/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
