// main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/avelark/ridelake/auditlog"
	"github.com/avelark/ridelake/config"
	"github.com/avelark/ridelake/database"
	"github.com/avelark/ridelake/services"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting ridelake pipeline...")

	configPath := flag.String("config", "", "path to config.yaml (default: search standard locations)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config path] [bronze|silver|gold|all]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	step := flag.Arg(0)
	if step == "" {
		step = "all"
	}
	switch step {
	case "bronze", "silver", "gold", "all":
	default:
		fmt.Fprintf(os.Stderr, "unknown step %q\n", step)
		flag.Usage()
		os.Exit(2)
	}

	// .env is optional; real deployments set RIDELAKE_DB_* directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. DB host: %s, source dir: %s\n",
		cfg.Database.Host, cfg.Paths.SourceDir)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	store := database.NewStore(db)
	if err := store.EnsureSchemas(); err != nil {
		log.Fatalf("Error ensuring schemas: %v", err)
	}

	audit := auditlog.New(cfg.Paths.LogDir)

	// The stages run strictly in order; a fatal error aborts whatever
	// remains of this invocation. Reconciliation always follows a gold
	// rebuild.
	if step == "bronze" || step == "all" {
		if err := services.NewBronzeService(cfg, store, audit).Run(); err != nil {
			log.Fatalf("Bronze load failed: %v", err)
		}
	}
	if step == "silver" || step == "all" {
		if err := services.NewSilverService(store, audit).Run(); err != nil {
			log.Fatalf("Silver build failed: %v", err)
		}
	}
	if step == "gold" || step == "all" {
		if err := services.NewGoldService(store, audit).Run(); err != nil {
			log.Fatalf("Gold build failed: %v", err)
		}
		if err := services.NewReconcileService(store, audit).Run(); err != nil {
			log.Fatalf("Reconciliation failed: %v", err)
		}
	}

	log.Println("Pipeline run complete.")
}
