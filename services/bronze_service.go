// services/bronze_service.go
package services

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/avelark/ridelake/auditlog"
	"github.com/avelark/ridelake/config"
	"github.com/avelark/ridelake/database"
	"github.com/avelark/ridelake/ingest"
)

// BronzeService copies the source extracts verbatim into the bronze staging
// schema, one table per entity, and records a snapshot audit entry per table.
type BronzeService struct {
	cfg   *config.Config
	store *database.Store
	audit *auditlog.Logger
}

func NewBronzeService(cfg *config.Config, store *database.Store, audit *auditlog.Logger) *BronzeService {
	return &BronzeService{cfg: cfg, store: store, audit: audit}
}

// Run loads all four extracts. A missing or unreadable source file skips that
// entity and the load continues; a storage failure aborts the run.
func (s *BronzeService) Run() error {
	log.Println("Bronze: starting load...")

	if err := loadEntity(s, "customers", s.cfg.SourceFiles.Customers,
		ingest.ParseCustomersCsv, s.store.ReplaceBronzeCustomers); err != nil {
		return err
	}
	if err := loadEntity(s, "drivers", s.cfg.SourceFiles.Drivers,
		ingest.ParseDriversCsv, s.store.ReplaceBronzeDrivers); err != nil {
		return err
	}
	if err := loadEntity(s, "trips", s.cfg.SourceFiles.Trips,
		ingest.ParseTripsCsv, s.store.ReplaceBronzeTrips); err != nil {
		return err
	}
	if err := loadEntity(s, "payments", s.cfg.SourceFiles.Payments,
		ingest.ParsePaymentsCsv, s.store.ReplaceBronzePayments); err != nil {
		return err
	}

	log.Println("Bronze: load complete.")
	return nil
}

// loadEntity handles one entity end to end: open, parse, replace staging,
// snapshot. Missing files and parse failures are warnings (the entity is
// skipped, staging keeps its previous contents); anything after parsing is a
// storage write and therefore fatal.
func loadEntity[T any](s *BronzeService, table, filename string,
	parse func(io.Reader) ([]T, error),
	replace func([]T) error,
) error {
	path := s.cfg.SourcePath(filename)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("WARN Bronze: missing CSV for %s: %s — skipping.\n", table, path)
			return nil
		}
		log.Printf("ERROR Bronze: failed to open %s for %s: %v — skipping.\n", path, table, err)
		return nil
	}
	defer f.Close()

	rows, err := parse(f)
	if err != nil {
		log.Printf("ERROR Bronze: failed to parse %s for %s: %v — skipping.\n", path, table, err)
		return nil
	}

	if err := replace(rows); err != nil {
		return fmt.Errorf("bronze load of %s failed: %w", table, err)
	}

	rec, err := s.audit.Snapshot("bronze", table, len(rows), rows)
	if err != nil {
		return fmt.Errorf("bronze snapshot of %s failed: %w", table, err)
	}
	if err := s.store.AppendSnapshot(rec); err != nil {
		return fmt.Errorf("bronze snapshot audit of %s failed: %w", table, err)
	}
	return nil
}
