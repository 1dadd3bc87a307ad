// database/gold_store.go
package database

import (
	"fmt"

	"github.com/avelark/ridelake/models"
)

// Gold artifacts keep their schema across runs; only the contents are
// replaced, with the same clear-and-load transaction as the other layers.

func (s *Store) ReplaceDriverPerformance(rows []models.DriverPerformance) error {
	return s.clearAndLoad("gold.driver_performance",
		`INSERT INTO gold.driver_performance (driver_id, driver_name, vehicle_type, trips_count, total_fare, avg_fare)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{r.DriverID, r.DriverName, r.VehicleType, r.TripsCount, nullFloat(r.TotalFare), nullFloat(r.AvgFare)}
		})
}

func (s *Store) ReplaceRoutePerformance(rows []models.RoutePerformance) error {
	return s.clearAndLoad("gold.route_performance",
		`INSERT INTO gold.route_performance (pickup_location, drop_location, trips_count, total_fare, avg_fare)
		 VALUES (?, ?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{r.PickupLocation, r.DropLocation, r.TripsCount, nullFloat(r.TotalFare), nullFloat(r.AvgFare)}
		})
}

func (s *Store) ReplaceFactTrips(rows []models.FactTrip) error {
	return s.clearAndLoad("gold.fact_trips_dashboard",
		`INSERT INTO gold.fact_trips_dashboard (
			trip_id, customer_id, customer_name, signup_date, signup_month,
			driver_id, driver_name, vehicle_type, pickup_location, drop_location,
			trip_fare, paid_fare, mode_of_payment, fare_matches
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{
				r.TripID, r.CustomerID, r.CustomerName, nullTime(r.SignupDate), nullTime(r.SignupMonth),
				r.DriverID, r.DriverName, r.VehicleType, r.PickupLocation, r.DropLocation,
				nullFloat(r.TripFare), nullFloat(r.PaidFare), r.ModeOfPayment, nullBool(r.FareMatches),
			}
		})
}

// ReconciliationAggregates pulls the six scalars compared after a gold
// rebuild. COALESCE keeps empty layers at zero instead of NULL.
func (s *Store) ReconciliationAggregates() (models.ReconciliationAggregates, error) {
	var agg models.ReconciliationAggregates

	sums := []struct {
		query string
		dest  *float64
	}{
		{"SELECT COALESCE(SUM(trip_fare), 0) FROM silver.trips", &agg.SilverTripsSum},
		{"SELECT COALESCE(SUM(trip_fare), 0) FROM silver.payments", &agg.SilverPaymentsSum},
		{"SELECT COALESCE(SUM(trip_fare), 0) FROM gold.fact_trips_dashboard", &agg.GoldFactSum},
	}
	for _, q := range sums {
		if err := s.db.QueryRow(q.query).Scan(q.dest); err != nil {
			return agg, fmt.Errorf("failed reconciliation sum query: %w", err)
		}
	}

	counts := []struct {
		query string
		dest  *int64
	}{
		{"SELECT COUNT(*) FROM silver.trips", &agg.SilverTripsCount},
		{"SELECT COUNT(*) FROM silver.payments", &agg.SilverPaysCount},
		{"SELECT COUNT(*) FROM gold.fact_trips_dashboard", &agg.GoldFactCount},
	}
	for _, q := range counts {
		if err := s.db.QueryRow(q.query).Scan(q.dest); err != nil {
			return agg, fmt.Errorf("failed reconciliation count query: %w", err)
		}
	}

	return agg, nil
}

func nullBool(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}
