package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/cashup/internal/config"
	"github.com/MrJamesThe3rd/cashup/internal/database"
)

func main() {
	steps := flag.Int("steps", 0, "apply n migrations (negative rolls back) instead of a full up/down")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: migrate [-steps n] up|down|version\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	mg, err := database.NewMigrator(db)
	if err != nil {
		slog.Error("failed to create migrator", "error", err)
		os.Exit(1)
	}

	if err := run(mg, flag.Arg(0), *steps); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(mg *database.Migrator, cmd string, steps int) error {
	if steps != 0 {
		return mg.Steps(steps)
	}

	switch cmd {
	case "", "up":
		return mg.Up()
	case "down":
		return mg.Down()
	case "version":
		v, dirty, err := mg.Version()
		if err != nil {
			return err
		}

		slog.Info("schema version", "version", v, "dirty", dirty)

		return nil
	}

	flag.Usage()

	return fmt.Errorf("unknown command %q", cmd)
}
