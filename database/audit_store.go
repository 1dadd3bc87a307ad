// database/audit_store.go
package database

import (
	"fmt"

	"github.com/avelark/ridelake/models"
)

// The audit tables are the only cross-run history in the system: strictly
// append-only, never cleared by the pipeline.

// AppendDataQuality records one entity's silver data-quality summary.
func (s *Store) AppendDataQuality(rec models.DataQualityRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO audit.data_quality_log (table_name, missing_values, invalid_values, processed_at)
		 VALUES (?, ?, ?, ?)`,
		rec.TableName, rec.MissingValues, rec.InvalidValues, rec.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append data quality record for %s: %w", rec.TableName, err)
	}
	return nil
}

// AppendSnapshot records a table export's row count and checksum.
func (s *Store) AppendSnapshot(rec models.SnapshotRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO audit.snapshot_log (layer, table_name, row_count, checksum, logged_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Layer, rec.TableName, rec.RowCount, rec.Checksum, rec.LoggedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append snapshot record for %s.%s: %w", rec.Layer, rec.TableName, err)
	}
	return nil
}

// AppendReconciliation records one reconciliation check.
func (s *Store) AppendReconciliation(rec models.ReconciliationRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO audit.reconciliation_log (
			silver_trips_sum, silver_payments_sum, gold_fact_sum,
			trips_count_silver, payments_count_silver, fact_trips_count_gold,
			fare_diff_silver, silver_vs_gold_sum_diff, trips_count_diff, checked_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SilverTripsSum, rec.SilverPaymentsSum, rec.GoldFactSum,
		rec.TripsCountSilver, rec.PaymentsCountSilver, rec.FactTripsCountGold,
		rec.FareDiffSilver, rec.SilverVsGoldSumDiff, rec.TripsCountDiff, rec.CheckedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append reconciliation record: %w", err)
	}
	return nil
}
