// cmd/dbtools/migrate/main.go
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tmarchal/vitrine/internal/db"
)

func main() {
	var (
		dbPath  = flag.String("db", "", "Path to SQLite database")
		command = flag.String("command", "", "Command to run (up, down, version, force)")
		version = flag.Int("version", -1, "Target version for the force command")
	)
	flag.Parse()

	if *dbPath == "" || *command == "" {
		flag.Usage()
		os.Exit(1)
	}

	sqlDB, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer sqlDB.Close()

	// Migrations are embedded in the binary; no source path needed.
	m, err := db.NewMigrator(sqlDB)
	if err != nil {
		log.Fatalf("Migration init failed: %v", err)
	}

	switch *command {
	case "up":
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("Migration up failed: %v", err)
		}
	case "down":
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("Migration down failed: %v", err)
		}
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("Get version failed: %v", err)
		}
		fmt.Printf("Version: %d, Dirty: %v\n", v, dirty)
	case "force":
		if *version < 0 {
			log.Fatal("force requires -version")
		}
		if err := m.Force(*version); err != nil {
			log.Fatalf("Force failed: %v", err)
		}
	default:
		log.Fatalf("Unknown command: %s", *command)
	}
}
