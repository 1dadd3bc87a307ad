// database/silver_store.go
package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/avelark/ridelake/models"
)

// Silver replace methods follow the same clear-and-load shape as bronze.
// Nullable fields travel as sql.NullTime / sql.NullFloat64 so coercion
// failures land in the database as real NULLs.

func (s *Store) ReplaceSilverCustomers(rows []models.Customer) error {
	return s.clearAndLoad("silver.customers",
		`INSERT INTO silver.customers (row_seq, customer_id, customer_name, signup_date)
		 VALUES (?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{i, r.CustomerID, r.CustomerName, nullTime(r.SignupDate)}
		})
}

func (s *Store) ReplaceSilverDrivers(rows []models.Driver) error {
	return s.clearAndLoad("silver.drivers",
		`INSERT INTO silver.drivers (row_seq, driver_id, driver_name, vehicle_type)
		 VALUES (?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{i, r.DriverID, r.DriverName, r.VehicleType}
		})
}

func (s *Store) ReplaceSilverTrips(rows []models.Trip) error {
	return s.clearAndLoad("silver.trips",
		`INSERT INTO silver.trips (row_seq, trip_id, customer_id, driver_id, pickup_location, drop_location, trip_fare)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{i, r.TripID, r.CustomerID, r.DriverID, r.PickupLocation, r.DropLocation, nullFloat(r.TripFare)}
		})
}

func (s *Store) ReplaceSilverPayments(rows []models.Payment) error {
	return s.clearAndLoad("silver.payments",
		`INSERT INTO silver.payments (row_seq, payment_id, trip_id, trip_fare, mode_of_payment)
		 VALUES (?, ?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{i, r.PaymentID, r.TripID, nullFloat(r.TripFare), r.ModeOfPayment}
		})
}

func (s *Store) GetSilverCustomers() ([]models.Customer, error) {
	rows, err := s.db.Query(
		"SELECT customer_id, customer_name, signup_date FROM silver.customers ORDER BY row_seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query silver.customers: %w", err)
	}
	defer rows.Close()

	var out []models.Customer
	for rows.Next() {
		var r models.Customer
		var signup sql.NullTime
		if err := rows.Scan(&r.CustomerID, &r.CustomerName, &signup); err != nil {
			return nil, fmt.Errorf("failed to scan silver.customers row: %w", err)
		}
		if signup.Valid {
			t := signup.Time
			r.SignupDate = &t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetSilverDrivers() ([]models.Driver, error) {
	rows, err := s.db.Query(
		"SELECT driver_id, driver_name, vehicle_type FROM silver.drivers ORDER BY row_seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query silver.drivers: %w", err)
	}
	defer rows.Close()

	var out []models.Driver
	for rows.Next() {
		var r models.Driver
		if err := rows.Scan(&r.DriverID, &r.DriverName, &r.VehicleType); err != nil {
			return nil, fmt.Errorf("failed to scan silver.drivers row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetSilverTrips() ([]models.Trip, error) {
	rows, err := s.db.Query(
		"SELECT trip_id, customer_id, driver_id, pickup_location, drop_location, trip_fare FROM silver.trips ORDER BY row_seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query silver.trips: %w", err)
	}
	defer rows.Close()

	var out []models.Trip
	for rows.Next() {
		var r models.Trip
		var fare sql.NullFloat64
		if err := rows.Scan(&r.TripID, &r.CustomerID, &r.DriverID, &r.PickupLocation, &r.DropLocation, &fare); err != nil {
			return nil, fmt.Errorf("failed to scan silver.trips row: %w", err)
		}
		if fare.Valid {
			f := fare.Float64
			r.TripFare = &f
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetSilverPayments() ([]models.Payment, error) {
	rows, err := s.db.Query(
		"SELECT payment_id, trip_id, trip_fare, mode_of_payment FROM silver.payments ORDER BY row_seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query silver.payments: %w", err)
	}
	defer rows.Close()

	var out []models.Payment
	for rows.Next() {
		var r models.Payment
		var fare sql.NullFloat64
		if err := rows.Scan(&r.PaymentID, &r.TripID, &fare, &r.ModeOfPayment); err != nil {
			return nil, fmt.Errorf("failed to scan silver.payments row: %w", err)
		}
		if fare.Valid {
			f := fare.Float64
			r.TripFare = &f
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
