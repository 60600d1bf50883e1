// Package store keeps a history of device reports in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ilexum-group/ohos-deviceinfo/pkg/models"
)

// ErrNotFound is returned when the history holds no report.
var ErrNotFound = errors.New("no report stored")

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id              TEXT PRIMARY KEY,
	collected_at    INTEGER NOT NULL,
	agent_version   TEXT NOT NULL,
	device_type     TEXT NOT NULL,
	os_full_name    TEXT NOT NULL,
	sdk_api_version INTEGER NOT NULL,
	fingerprint     TEXT NOT NULL,
	payload         TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS reports_collected_at ON reports (collected_at);
`

// Store is a SQLite backed report history.
type Store struct {
	db *sql.DB
}

// Record is one stored report with its summary columns.
type Record struct {
	ID            string
	CollectedAt   time.Time
	AgentVersion  string
	DeviceType    string
	OSFullName    string
	SDKAPIVersion uint32
	Fingerprint   string
	Report        *models.DeviceReport
}

// Open opens or creates the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}
	// modernc sqlite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save appends a sealed report to the history. It reports whether the
// fingerprint differs from the latest stored report, which is always the case
// for an empty history.
func (s *Store) Save(ctx context.Context, report *models.DeviceReport) (bool, error) {
	if report.Fingerprint == "" {
		return false, errors.New("report is not sealed")
	}

	changed := true
	latest, err := s.Latest(ctx)
	switch {
	case err == nil:
		changed = latest.Fingerprint != report.Fingerprint
	case !errors.Is(err, ErrNotFound):
		return false, err
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return false, fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, collected_at, agent_version, device_type, os_full_name, sdk_api_version, fingerprint, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ID,
		report.CollectedAt.UnixNano(),
		report.AgentVersion,
		report.Device.DeviceType,
		report.Device.OSFullName,
		int64(report.Device.SDKAPIVersion),
		report.Fingerprint,
		string(payload),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert report %s: %w", report.ID, err)
	}
	return changed, nil
}

const selectColumns = `SELECT id, collected_at, agent_version, device_type, os_full_name, sdk_api_version, fingerprint, payload FROM reports`

// Latest returns the most recently collected report.
func (s *Store) Latest(ctx context.Context) (*Record, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` ORDER BY collected_at DESC, rowid DESC LIMIT 1`)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

// List returns up to limit reports, newest first. A limit of zero or less
// returns the whole history.
func (s *Store) List(ctx context.Context, limit int) ([]*Record, error) {
	query := selectColumns + ` ORDER BY collected_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]*Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*Record, error) {
	var (
		rec         Record
		collectedAt int64
		sdkVersion  int64
		payload     string
	)
	err := sc.Scan(&rec.ID, &collectedAt, &rec.AgentVersion, &rec.DeviceType,
		&rec.OSFullName, &sdkVersion, &rec.Fingerprint, &payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan report: %w", err)
	}
	rec.CollectedAt = time.Unix(0, collectedAt).UTC()
	rec.SDKAPIVersion = uint32(sdkVersion)

	var report models.DeviceReport
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", rec.ID, err)
	}
	rec.Report = &report
	return &rec, nil
}
