// models/audit.go
package models

import "time"

// DataQualityRecord is one append-only row of audit.data_quality_log,
// produced per entity by the silver build. Customers and drivers report
// missing-cell totals; trips and payments report invalid (unparseable) fares.
type DataQualityRecord struct {
	TableName     string    `csv:"table_name" db:"table_name"`
	MissingValues int64     `csv:"missing_values" db:"missing_values"`
	InvalidValues int64     `csv:"invalid_values" db:"invalid_values"`
	ProcessedAt   time.Time `csv:"processed_at" db:"processed_at"`
}

// SnapshotRecord is one append-only row of audit.snapshot_log: the row count
// and MD5 content checksum of a materialized table export.
type SnapshotRecord struct {
	Layer     string    `csv:"layer" db:"layer"`
	TableName string    `csv:"table_name" db:"table_name"`
	RowCount  int64     `csv:"row_count" db:"row_count"`
	Checksum  string    `csv:"checksum" db:"checksum"`
	LoggedAt  time.Time `csv:"logged_at" db:"logged_at"`
}

// ReconciliationAggregates are the six scalars pulled from silver and gold
// after a gold rebuild.
type ReconciliationAggregates struct {
	SilverTripsSum    float64
	SilverPaymentsSum float64
	GoldFactSum       float64
	SilverTripsCount  int64
	SilverPaysCount   int64
	GoldFactCount     int64
}

// ReconciliationRecord is one append-only row of audit.reconciliation_log
// (and of log/gold/reconciliation.csv): the six aggregates, the three derived
// differences, and when the check ran. Differences are observational only.
type ReconciliationRecord struct {
	SilverTripsSum      float64   `csv:"silver_trips_sum" db:"silver_trips_sum"`
	SilverPaymentsSum   float64   `csv:"silver_payments_sum" db:"silver_payments_sum"`
	GoldFactSum         float64   `csv:"gold_fact_sum" db:"gold_fact_sum"`
	TripsCountSilver    int64     `csv:"trips_count_silver" db:"trips_count_silver"`
	PaymentsCountSilver int64     `csv:"payments_count_silver" db:"payments_count_silver"`
	FactTripsCountGold  int64     `csv:"fact_trips_count_gold" db:"fact_trips_count_gold"`
	FareDiffSilver      float64   `csv:"fare_diff_silver" db:"fare_diff_silver"`
	SilverVsGoldSumDiff float64   `csv:"silver_vs_gold_sum_diff" db:"silver_vs_gold_sum_diff"`
	TripsCountDiff      int64     `csv:"trips_count_diff" db:"trips_count_diff"`
	CheckedAt           time.Time `csv:"checked_at" db:"checked_at"`
}
