// SPDX-License-Identifier: MIT

package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// MaxList is the largest number of rows List returns.
const MaxList = 50

var (
	// ErrNotFound is returned by Get and Delete for an unknown id.
	ErrNotFound = errors.New("history: record not found")

	// ErrInvalidRecord is returned by Insert for an empty problem text or type.
	ErrInvalidRecord = errors.New("history: invalid record")
)

const schema = `
CREATE TABLE IF NOT EXISTS problem_history (
	id            TEXT PRIMARY KEY,
	problem_text  TEXT NOT NULL,
	problem_type  TEXT NOT NULL,
	solution_data TEXT NOT NULL,
	created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_problem_history_created ON problem_history(created_at);
`

// Record is one stored problem.
type Record struct {
	ID           string          `json:"id"`
	ProblemText  string          `json:"problem_text"`
	ProblemType  string          `json:"problem_type"`
	SolutionData json.RawMessage `json:"solution_data"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for created_at stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger attaches a logger. A nil logger panics.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("history: WithLogger(nil)")
	}

	return func(s *Store) { s.log = log }
}

// Store is the SQLite-backed history. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
	log  *zap.Logger
}

// Open creates or opens the database at path and applies the schema.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path, now: time.Now, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	s.log.Debug("history store opened", zap.String("path", path))

	return s, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Insert stores one problem; solution is encoded as JSON.
func (s *Store) Insert(ctx context.Context, problemText, problemType string, solution any) (Record, error) {
	if strings.TrimSpace(problemText) == "" || problemType == "" {
		return Record{}, ErrInvalidRecord
	}
	data, err := json.Marshal(solution)
	if err != nil {
		return Record{}, fmt.Errorf("encode solution: %w", err)
	}

	rec := Record{
		ID:           uuid.NewString(),
		ProblemText:  problemText,
		ProblemType:  problemType,
		SolutionData: data,
		CreatedAt:    s.now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO problem_history (id, problem_text, problem_type, solution_data, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.ProblemText, rec.ProblemType, string(rec.SolutionData), rec.CreatedAt.UnixNano())
	if err != nil {
		return Record{}, fmt.Errorf("insert history: %w", err)
	}
	s.log.Debug("history inserted", zap.String("id", rec.ID), zap.String("type", problemType))

	return rec, nil
}

// List returns up to limit records, newest first. limit ≤ 0 or above
// MaxList is clamped to MaxList.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 || limit > MaxList {
		limit = MaxList
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, problem_text, problem_type, solution_data, created_at
		 FROM problem_history ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	out := make([]Record, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return out, nil
}

// Get returns the record with id.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, problem_text, problem_type, solution_data, created_at
		 FROM problem_history WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	return rec, err
}

// Delete removes the record with id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM problem_history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	s.log.Debug("history deleted", zap.String("id", id))

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec   Record
		data  string
		nanos int64
	)
	if err := sc.Scan(&rec.ID, &rec.ProblemText, &rec.ProblemType, &data, &nanos); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}

		return Record{}, fmt.Errorf("scan history: %w", err)
	}
	rec.SolutionData = json.RawMessage(data)
	rec.CreatedAt = time.Unix(0, nanos).UTC()

	return rec, nil
}
