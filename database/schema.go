// database/schema.go
package database

import (
	"fmt"
	"log"
)

// schemaStatements is everything EnsureSchemas runs, in order. MySQL has no
// cross-statement DDL transaction, so each statement is idempotent on its own
// (IF NOT EXISTS throughout). Bronze columns are TEXT on purpose: staging
// holds the extracts verbatim and typing happens in the silver build.
// row_seq preserves source row order across the round trip through the
// database; dedup's first-wins rule and snapshot checksums depend on it.
var schemaStatements = []string{
	"CREATE DATABASE IF NOT EXISTS bronze",
	"CREATE DATABASE IF NOT EXISTS silver",
	"CREATE DATABASE IF NOT EXISTS gold",
	"CREATE DATABASE IF NOT EXISTS audit",

	`CREATE TABLE IF NOT EXISTS bronze.customers (
		row_seq BIGINT NOT NULL,
		customer_id TEXT,
		customer_name TEXT,
		signup_date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS bronze.drivers (
		row_seq BIGINT NOT NULL,
		driver_id TEXT,
		driver_name TEXT,
		vehicle_type TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS bronze.trips (
		row_seq BIGINT NOT NULL,
		trip_id TEXT,
		customer_id TEXT,
		driver_id TEXT,
		pickup_location TEXT,
		drop_location TEXT,
		trip_fare TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS bronze.payments (
		row_seq BIGINT NOT NULL,
		payment_id TEXT,
		trip_id TEXT,
		trip_fare TEXT,
		mode_of_payment TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS silver.customers (
		row_seq BIGINT NOT NULL,
		customer_id VARCHAR(64) NOT NULL,
		customer_name TEXT,
		signup_date DATE NULL
	)`,
	`CREATE TABLE IF NOT EXISTS silver.drivers (
		row_seq BIGINT NOT NULL,
		driver_id VARCHAR(64) NOT NULL,
		driver_name TEXT,
		vehicle_type VARCHAR(32)
	)`,
	`CREATE TABLE IF NOT EXISTS silver.trips (
		row_seq BIGINT NOT NULL,
		trip_id VARCHAR(64) NOT NULL,
		customer_id VARCHAR(64),
		driver_id VARCHAR(64),
		pickup_location TEXT,
		drop_location TEXT,
		trip_fare DOUBLE NULL
	)`,
	`CREATE TABLE IF NOT EXISTS silver.payments (
		row_seq BIGINT NOT NULL,
		payment_id VARCHAR(64) NOT NULL,
		trip_id VARCHAR(64),
		trip_fare DOUBLE NULL,
		mode_of_payment TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS gold.driver_performance (
		driver_id VARCHAR(64),
		driver_name TEXT,
		vehicle_type VARCHAR(32),
		trips_count BIGINT,
		total_fare DOUBLE NULL,
		avg_fare DOUBLE NULL
	)`,
	`CREATE TABLE IF NOT EXISTS gold.route_performance (
		pickup_location VARCHAR(255),
		drop_location VARCHAR(255),
		trips_count BIGINT,
		total_fare DOUBLE NULL,
		avg_fare DOUBLE NULL
	)`,
	`CREATE TABLE IF NOT EXISTS gold.fact_trips_dashboard (
		trip_id VARCHAR(64),
		customer_id VARCHAR(64),
		customer_name TEXT,
		signup_date DATE NULL,
		signup_month DATE NULL,
		driver_id VARCHAR(64),
		driver_name TEXT,
		vehicle_type VARCHAR(32),
		pickup_location TEXT,
		drop_location TEXT,
		trip_fare DOUBLE NULL,
		paid_fare DOUBLE NULL,
		mode_of_payment VARCHAR(64),
		fare_matches BOOLEAN NULL
	)`,

	`CREATE TABLE IF NOT EXISTS audit.data_quality_log (
		table_name VARCHAR(64),
		missing_values BIGINT,
		invalid_values BIGINT,
		processed_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS audit.reconciliation_log (
		silver_trips_sum DOUBLE,
		silver_payments_sum DOUBLE,
		gold_fact_sum DOUBLE,
		trips_count_silver BIGINT,
		payments_count_silver BIGINT,
		fact_trips_count_gold BIGINT,
		fare_diff_silver DOUBLE,
		silver_vs_gold_sum_diff DOUBLE,
		trips_count_diff BIGINT,
		checked_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS audit.snapshot_log (
		layer VARCHAR(16),
		table_name VARCHAR(64),
		row_count BIGINT,
		checksum CHAR(32),
		logged_at TIMESTAMP
	)`,
}

// EnsureSchemas creates the four layer schemas and every table the pipeline
// writes to. Safe to call at the start of every run.
func (s *Store) EnsureSchemas() error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to ensure schemas: %w", err)
		}
	}
	log.Println("Schemas bronze, silver, gold and audit are in place.")
	return nil
}
