// database/connection.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/avelark/ridelake/config"
	_ "github.com/go-sql-driver/mysql" // MySQL/MariaDB driver
)

// Connect opens the shared connection pool used by every stage of a run.
// The DSN carries no default schema: all table references are qualified
// (bronze.customers, silver.trips, ...) so one pool serves all four layers.
// The handle is returned, not stored in a package global; the caller owns it
// for the duration of the run and closes it on every exit path.
func Connect(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/?parseTime=true",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// The pipeline is single-threaded; a small pool is plenty.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to the database!")
	return db, nil
}

// Store wraps the run's database handle. All layer and audit table access
// goes through it.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}
