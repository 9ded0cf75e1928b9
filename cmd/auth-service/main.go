package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/campuscode/auth-service/internal"
	"github.com/campuscode/auth-service/internal/config"
	"github.com/campuscode/auth-service/internal/log"
)

var BuildVersion = "dev"

func main() {
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println(BuildVersion)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.LogError("Failed to load config: %v", err)
		os.Exit(1)
	}

	log.LogInfoWithFields("main", "Starting auth-service", map[string]any{
		"version": BuildVersion,
		"addr":    cfg.Addr(),
	})

	app, err := internal.NewAuthService(context.Background(), cfg)
	if err != nil {
		log.LogError("Failed to build auth service: %v", err)
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		log.LogError("Server error: %v", err)
		os.Exit(1)
	}
}
