// Package database persists simulation run history in a local SQLite file.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// ErrRunNotFound is returned when no run exists for the requested ID.
var ErrRunNotFound = errors.New("simulation run not found")

// Run kinds stored in the run history.
const (
	RunKindMultiDay = "multiday"
	RunKindDiurnal  = "diurnal"
)

// Run is one persisted simulation run. Series holds the full per-step
// result sequence encoded as MessagePack; the summary columns are
// duplicated out of the blob so listings never need to decode it.
type Run struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	FuelKey      string    `json:"fuel_key,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	FinalOneHour float64   `json:"final_one_hour_pct"`
	PeakROS      float64   `json:"peak_ros_chains_per_hour,omitempty"`
	Series       []byte    `json:"-"`
}

// Store wraps the SQLite run-history database.
type Store struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewStore opens (creating if necessary) the run-history database at dbPath
// and ensures the schema exists.
func NewStore(dbPath string, logger *zap.SugaredLogger) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS simulation_runs (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			fuel_key TEXT,
			created_at TIMESTAMP NOT NULL,
			final_one_hour REAL NOT NULL,
			peak_ros REAL,
			series BLOB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON simulation_runs(created_at DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create run history schema: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun assigns the run a UUID and timestamp, encodes the series payload,
// and inserts it into the history. The assigned ID is returned.
func (s *Store) SaveRun(ctx context.Context, kind, fuelKey string, finalOneHour, peakROS float64, series any) (string, error) {
	blob, err := msgpack.Marshal(series)
	if err != nil {
		return "", fmt.Errorf("failed to encode run series: %w", err)
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO simulation_runs (id, kind, fuel_key, created_at, final_one_hour, peak_ros, series)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, kind, fuelKey, createdAt, finalOneHour, peakROS, blob)
	if err != nil {
		return "", fmt.Errorf("failed to insert simulation run: %w", err)
	}

	s.logger.Debugw("saved simulation run", "id", id, "kind", kind, "fuel", fuelKey)
	return id, nil
}

// GetRun fetches one run by ID, including its encoded series.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, COALESCE(fuel_key, ''), created_at, final_one_hour, COALESCE(peak_ros, 0), series
		FROM simulation_runs WHERE id = ?`, id)

	var run Run
	err := row.Scan(&run.ID, &run.Kind, &run.FuelKey, &run.CreatedAt, &run.FinalOneHour, &run.PeakROS, &run.Series)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query simulation run: %w", err)
	}

	return &run, nil
}

// ListRuns returns up to limit runs, newest first, without series payloads.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, COALESCE(fuel_key, ''), created_at, final_one_hour, COALESCE(peak_ros, 0)
		FROM simulation_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulation runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Kind, &run.FuelKey, &run.CreatedAt, &run.FinalOneHour, &run.PeakROS); err != nil {
			return nil, fmt.Errorf("failed to scan simulation run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// DecodeSeries decodes a run's MessagePack series payload into out.
func DecodeSeries(run *Run, out any) error {
	if err := msgpack.Unmarshal(run.Series, out); err != nil {
		return fmt.Errorf("failed to decode run series: %w", err)
	}
	return nil
}
