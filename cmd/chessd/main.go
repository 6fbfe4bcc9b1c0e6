// Command chessd hosts the game service over HTTP. The db subcommand
// administers the optional SQLite archive.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/CASCAD1AN/basic-chess-game/cmd/chessd/cli"
	"github.com/CASCAD1AN/basic-chess-game/internal/config"
	"github.com/CASCAD1AN/basic-chess-game/internal/service"
	"github.com/CASCAD1AN/basic-chess-game/internal/storage"
	httptransport "github.com/CASCAD1AN/basic-chess-game/internal/transport/http"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "db" {
		if err := cli.Run(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	listen := flag.String("listen", "", "HTTP listen address (overrides config)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config; empty disables persistence)")
	dev := flag.Bool("dev", false, "Development mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *dbPath != "" {
		cfg.Database = *dbPath
	}
	if *dev {
		cfg.DevMode = true
	}

	var store *storage.Store
	if cfg.Database != "" {
		store, err = storage.NewStore(cfg.Database, cfg.DevMode)
		if err != nil {
			log.Fatalf("Failed to open storage: %v", err)
		}
		if err := store.InitDB(); err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		log.Printf("Persistence enabled: %s", cfg.Database)
	} else {
		log.Printf("Persistence disabled, games are in-memory only")
	}

	svc := service.New(store)
	defer svc.Close()

	app := httptransport.NewFiberApp(svc, cfg.DevMode)

	log.Printf("chessd listening on %s", cfg.Listen)
	if err := app.Listen(cfg.Listen); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
