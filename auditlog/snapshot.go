// auditlog/snapshot.go
package auditlog

import (
	"crypto/md5"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/avelark/ridelake/models"
	"github.com/jszwec/csvutil"
)

// Logger writes the flat, human-inspectable half of the audit trail: one CSV
// export per layer/table under Dir (log/<layer>/<table>.csv, overwritten each
// run) and the cumulative reconciliation log (append-only).
type Logger struct {
	Dir string
}

func New(dir string) *Logger {
	return &Logger{Dir: dir}
}

// Snapshot exports rows to <dir>/<layer>/<table>.csv and returns the audit
// record for it: row count plus MD5 checksum of the written file. rows must
// be a slice of csv-tagged structs; encoding is deterministic for identical
// input, so a rebuild from an unchanged upstream reproduces the checksum.
func (l *Logger) Snapshot(layer, table string, rowCount int, rows any) (models.SnapshotRecord, error) {
	var rec models.SnapshotRecord

	dir := filepath.Join(l.Dir, layer)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return rec, fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		return rec, fmt.Errorf("failed to encode %s.%s snapshot: %w", layer, table, err)
	}

	outPath := filepath.Join(dir, table+".csv")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return rec, fmt.Errorf("failed to write snapshot %s: %w", outPath, err)
	}

	sum, err := Checksum(outPath)
	if err != nil {
		return rec, err
	}

	rec = models.SnapshotRecord{
		Layer:     layer,
		TableName: table,
		RowCount:  int64(rowCount),
		Checksum:  sum,
		LoggedAt:  time.Now(),
	}
	log.Printf("%s.%s: rows=%d checksum=%s\n", layer, table, rowCount, sum)
	return rec, nil
}

// Checksum returns the MD5 hex digest of a file's contents.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for checksum: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to checksum %s: %w", path, err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// AppendReconciliation appends one check to <dir>/gold/reconciliation.csv,
// writing the header only when the file is new.
func (l *Logger) AppendReconciliation(rec models.ReconciliationRecord) error {
	dir := filepath.Join(l.Dir, "gold")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create reconciliation log directory %s: %w", dir, err)
	}

	outPath := filepath.Join(dir, "reconciliation.csv")
	info, statErr := os.Stat(outPath)
	needHeader := statErr != nil || info.Size() == 0

	data, err := csvutil.Marshal([]models.ReconciliationRecord{rec})
	if err != nil {
		return fmt.Errorf("failed to encode reconciliation record: %w", err)
	}
	if !needHeader {
		// Drop the header line csvutil always emits; the file already has one.
		for i, b := range data {
			if b == '\n' {
				data = data[i+1:]
				break
			}
		}
	}

	f, err := os.OpenFile(outPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open reconciliation log %s: %w", outPath, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to append to reconciliation log %s: %w", outPath, err)
	}
	return nil
}
