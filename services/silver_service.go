// services/silver_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"github.com/avelark/ridelake/auditlog"
	"github.com/avelark/ridelake/database"
	"github.com/avelark/ridelake/models"
)

// SilverService rebuilds the silver layer from the current bronze snapshot:
// dedup, coercion, enum validation, referential filtering, data-quality
// summaries, snapshots. The rebuild is idempotent against an unchanged
// bronze snapshot.
type SilverService struct {
	store *database.Store
	audit *auditlog.Logger
}

func NewSilverService(store *database.Store, audit *auditlog.Logger) *SilverService {
	return &SilverService{store: store, audit: audit}
}

func (s *SilverService) Run() error {
	log.Println("Silver: starting build...")

	rawCustomers, err := s.store.GetBronzeCustomers()
	if err != nil {
		return fmt.Errorf("silver build failed reading bronze: %w", err)
	}
	rawDrivers, err := s.store.GetBronzeDrivers()
	if err != nil {
		return fmt.Errorf("silver build failed reading bronze: %w", err)
	}
	rawTrips, err := s.store.GetBronzeTrips()
	if err != nil {
		return fmt.Errorf("silver build failed reading bronze: %w", err)
	}
	rawPayments, err := s.store.GetBronzePayments()
	if err != nil {
		return fmt.Errorf("silver build failed reading bronze: %w", err)
	}

	result := BuildSilver(rawCustomers, rawDrivers, rawTrips, rawPayments)

	log.Printf("WARN Silver: customers missing values: %d\n", result.Quality.MissingCustomers)
	log.Printf("WARN Silver: drivers missing values: %d\n", result.Quality.MissingDrivers)
	log.Printf("WARN Silver: trips with invalid fare: %d\n", result.Quality.InvalidTripFares)
	log.Printf("WARN Silver: payments with invalid fare: %d\n", result.Quality.InvalidPaymentFares)

	if err := s.store.ReplaceSilverCustomers(result.Customers); err != nil {
		return fmt.Errorf("silver build failed: %w", err)
	}
	if err := s.store.ReplaceSilverDrivers(result.Drivers); err != nil {
		return fmt.Errorf("silver build failed: %w", err)
	}
	if err := s.store.ReplaceSilverTrips(result.Trips); err != nil {
		return fmt.Errorf("silver build failed: %w", err)
	}
	if err := s.store.ReplaceSilverPayments(result.Payments); err != nil {
		return fmt.Errorf("silver build failed: %w", err)
	}

	processedAt := time.Now()
	quality := []models.DataQualityRecord{
		{TableName: "customers", MissingValues: result.Quality.MissingCustomers, InvalidValues: 0, ProcessedAt: processedAt},
		{TableName: "drivers", MissingValues: result.Quality.MissingDrivers, InvalidValues: 0, ProcessedAt: processedAt},
		{TableName: "trips", MissingValues: 0, InvalidValues: result.Quality.InvalidTripFares, ProcessedAt: processedAt},
		{TableName: "payments", MissingValues: 0, InvalidValues: result.Quality.InvalidPaymentFares, ProcessedAt: processedAt},
	}
	for _, rec := range quality {
		if err := s.store.AppendDataQuality(rec); err != nil {
			return fmt.Errorf("silver build failed: %w", err)
		}
	}

	if err := s.snapshot("customers", len(result.Customers), result.Customers); err != nil {
		return err
	}
	if err := s.snapshot("drivers", len(result.Drivers), result.Drivers); err != nil {
		return err
	}
	if err := s.snapshot("trips", len(result.Trips), result.Trips); err != nil {
		return err
	}
	if err := s.snapshot("payments", len(result.Payments), result.Payments); err != nil {
		return err
	}

	log.Println("Silver: build complete.")
	return nil
}

func (s *SilverService) snapshot(table string, n int, rows any) error {
	rec, err := s.audit.Snapshot("silver", table, n, rows)
	if err != nil {
		return fmt.Errorf("silver snapshot of %s failed: %w", table, err)
	}
	if err := s.store.AppendSnapshot(rec); err != nil {
		return fmt.Errorf("silver snapshot audit of %s failed: %w", table, err)
	}
	return nil
}
