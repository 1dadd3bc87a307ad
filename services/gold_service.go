// services/gold_service.go
package services

import (
	"fmt"
	"log"

	"github.com/avelark/ridelake/auditlog"
	"github.com/avelark/ridelake/database"
)

// GoldService recomputes the three gold artifacts wholesale from the current
// silver layer: the per-driver rollup, the per-route rollup and the
// denormalized trip fact table.
type GoldService struct {
	store *database.Store
	audit *auditlog.Logger
}

func NewGoldService(store *database.Store, audit *auditlog.Logger) *GoldService {
	return &GoldService{store: store, audit: audit}
}

func (s *GoldService) Run() error {
	log.Println("Gold: starting build...")

	customers, err := s.store.GetSilverCustomers()
	if err != nil {
		return fmt.Errorf("gold build failed reading silver: %w", err)
	}
	drivers, err := s.store.GetSilverDrivers()
	if err != nil {
		return fmt.Errorf("gold build failed reading silver: %w", err)
	}
	trips, err := s.store.GetSilverTrips()
	if err != nil {
		return fmt.Errorf("gold build failed reading silver: %w", err)
	}
	payments, err := s.store.GetSilverPayments()
	if err != nil {
		return fmt.Errorf("gold build failed reading silver: %w", err)
	}

	driverPerf := BuildDriverPerformance(trips, drivers)
	routePerf := BuildRoutePerformance(trips)
	facts := BuildFactTrips(trips, customers, drivers, payments)

	if err := s.store.ReplaceDriverPerformance(driverPerf); err != nil {
		return fmt.Errorf("gold build failed: %w", err)
	}
	if err := s.store.ReplaceRoutePerformance(routePerf); err != nil {
		return fmt.Errorf("gold build failed: %w", err)
	}
	if err := s.store.ReplaceFactTrips(facts); err != nil {
		return fmt.Errorf("gold build failed: %w", err)
	}

	if err := s.snapshot("driver_performance", len(driverPerf), driverPerf); err != nil {
		return err
	}
	if err := s.snapshot("route_performance", len(routePerf), routePerf); err != nil {
		return err
	}
	if err := s.snapshot("fact_trips_dashboard", len(facts), facts); err != nil {
		return err
	}

	log.Println("Gold: built driver_performance, route_performance, fact_trips_dashboard.")
	return nil
}

func (s *GoldService) snapshot(table string, n int, rows any) error {
	rec, err := s.audit.Snapshot("gold", table, n, rows)
	if err != nil {
		return fmt.Errorf("gold snapshot of %s failed: %w", table, err)
	}
	if err := s.store.AppendSnapshot(rec); err != nil {
		return fmt.Errorf("gold snapshot audit of %s failed: %w", table, err)
	}
	return nil
}
