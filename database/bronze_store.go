// database/bronze_store.go
package database

import (
	"fmt"
	"log"

	"github.com/avelark/ridelake/models"
)

// clearAndLoad replaces a table's contents inside one transaction: delete
// everything, then insert the new rows through a prepared statement. The old
// contents are never visible alongside the new ones. argsFn returns the
// insert arguments for row i; n is the number of rows.
func (s *Store) clearAndLoad(table, insertQuery string, n int, argsFn func(i int) []any) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", table, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	stmt, err := tx.Prepare(insertQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.Exec(argsFn(i)...); err != nil {
			return fmt.Errorf("failed to insert row %d into %s: %w", i, table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit replace of %s: %w", table, err)
	}

	log.Printf("Replaced %s with %d rows.\n", table, n)
	return nil
}

// ReplaceBronzeCustomers loads the customers extract verbatim into staging.
func (s *Store) ReplaceBronzeCustomers(rows []models.RawCustomer) error {
	return s.clearAndLoad("bronze.customers",
		`INSERT INTO bronze.customers (row_seq, customer_id, customer_name, signup_date)
		 VALUES (?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{i, r.CustomerID, r.CustomerName, r.SignupDate}
		})
}

func (s *Store) ReplaceBronzeDrivers(rows []models.RawDriver) error {
	return s.clearAndLoad("bronze.drivers",
		`INSERT INTO bronze.drivers (row_seq, driver_id, driver_name, vehicle_type)
		 VALUES (?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{i, r.DriverID, r.DriverName, r.VehicleType}
		})
}

func (s *Store) ReplaceBronzeTrips(rows []models.RawTrip) error {
	return s.clearAndLoad("bronze.trips",
		`INSERT INTO bronze.trips (row_seq, trip_id, customer_id, driver_id, pickup_location, drop_location, trip_fare)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{i, r.TripID, r.CustomerID, r.DriverID, r.PickupLocation, r.DropLocation, r.TripFare}
		})
}

func (s *Store) ReplaceBronzePayments(rows []models.RawPayment) error {
	return s.clearAndLoad("bronze.payments",
		`INSERT INTO bronze.payments (row_seq, payment_id, trip_id, trip_fare, mode_of_payment)
		 VALUES (?, ?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{i, r.PaymentID, r.TripID, r.TripFare, r.ModeOfPayment}
		})
}

// GetBronzeCustomers reads staging back in source row order.
func (s *Store) GetBronzeCustomers() ([]models.RawCustomer, error) {
	rows, err := s.db.Query(
		"SELECT customer_id, customer_name, signup_date FROM bronze.customers ORDER BY row_seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query bronze.customers: %w", err)
	}
	defer rows.Close()

	var out []models.RawCustomer
	for rows.Next() {
		var r models.RawCustomer
		if err := rows.Scan(&r.CustomerID, &r.CustomerName, &r.SignupDate); err != nil {
			return nil, fmt.Errorf("failed to scan bronze.customers row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetBronzeDrivers() ([]models.RawDriver, error) {
	rows, err := s.db.Query(
		"SELECT driver_id, driver_name, vehicle_type FROM bronze.drivers ORDER BY row_seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query bronze.drivers: %w", err)
	}
	defer rows.Close()

	var out []models.RawDriver
	for rows.Next() {
		var r models.RawDriver
		if err := rows.Scan(&r.DriverID, &r.DriverName, &r.VehicleType); err != nil {
			return nil, fmt.Errorf("failed to scan bronze.drivers row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetBronzeTrips() ([]models.RawTrip, error) {
	rows, err := s.db.Query(
		"SELECT trip_id, customer_id, driver_id, pickup_location, drop_location, trip_fare FROM bronze.trips ORDER BY row_seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query bronze.trips: %w", err)
	}
	defer rows.Close()

	var out []models.RawTrip
	for rows.Next() {
		var r models.RawTrip
		if err := rows.Scan(&r.TripID, &r.CustomerID, &r.DriverID, &r.PickupLocation, &r.DropLocation, &r.TripFare); err != nil {
			return nil, fmt.Errorf("failed to scan bronze.trips row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetBronzePayments() ([]models.RawPayment, error) {
	rows, err := s.db.Query(
		"SELECT payment_id, trip_id, trip_fare, mode_of_payment FROM bronze.payments ORDER BY row_seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query bronze.payments: %w", err)
	}
	defer rows.Close()

	var out []models.RawPayment
	for rows.Next() {
		var r models.RawPayment
		if err := rows.Scan(&r.PaymentID, &r.TripID, &r.TripFare, &r.ModeOfPayment); err != nil {
			return nil, fmt.Errorf("failed to scan bronze.payments row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
