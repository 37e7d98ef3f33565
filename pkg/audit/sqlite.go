package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteStore persists audit records in a SQLite database. It is suitable
// for single-instance deployments that need the trail to survive restarts.
// The database runs in WAL mode for better concurrent read performance.
type SQLiteStore struct {
	db *sql.DB

	saveStmt  *sql.Stmt
	getStmt   *sql.Stmt
	listStmt  *sql.Stmt
	pruneStmt *sql.Stmt
}

// NewSQLiteStore opens (or creates) the audit database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		dbPath, (5 * time.Second).Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS compilations (
		id           TEXT PRIMARY KEY,
		source_hash  TEXT NOT NULL,
		tree_nodes   INTEGER NOT NULL,
		static_gamma INTEGER NOT NULL,
		charges      INTEGER NOT NULL,
		diagnostics  INTEGER NOT NULL,
		duration_ns  INTEGER NOT NULL,
		created_at   INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_compilations_created_at
		ON compilations(created_at);
	CREATE INDEX IF NOT EXISTS idx_compilations_source_hash
		ON compilations(source_hash);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.saveStmt, err = s.db.Prepare(`
		INSERT OR REPLACE INTO compilations
		(id, source_hash, tree_nodes, static_gamma, charges, diagnostics, duration_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}

	s.getStmt, err = s.db.Prepare(`
		SELECT id, source_hash, tree_nodes, static_gamma, charges, diagnostics, duration_ns, created_at
		FROM compilations WHERE id = ?`)
	if err != nil {
		return err
	}

	s.listStmt, err = s.db.Prepare(`
		SELECT id, source_hash, tree_nodes, static_gamma, charges, diagnostics, duration_ns, created_at
		FROM compilations ORDER BY created_at DESC LIMIT ?`)
	if err != nil {
		return err
	}

	s.pruneStmt, err = s.db.Prepare(`DELETE FROM compilations WHERE created_at < ?`)
	return err
}

// Save implements Store.
func (s *SQLiteStore) Save(ctx context.Context, rec *Record) error {
	_, err := s.saveStmt.ExecContext(ctx,
		rec.ID,
		rec.SourceHash,
		rec.TreeNodes,
		int64(rec.StaticGamma),
		rec.Charges,
		rec.Diagnostics,
		rec.Duration.Nanoseconds(),
		rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save audit record %s: %w", rec.ID, err)
	}
	return nil
}

// Get implements Store.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Record, error) {
	rec, err := scanRecord(s.getStmt.QueryRowContext(ctx, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load audit record %s: %w", id, err)
	}
	return rec, nil
}

// List implements Store.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.listStmt.QueryContext(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// PruneBefore implements Store.
func (s *SQLiteStore) PruneBefore(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.pruneStmt.ExecContext(ctx, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to prune audit records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	for _, stmt := range []*sql.Stmt{s.saveStmt, s.getStmt, s.listStmt, s.pruneStmt} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var rec Record
	var durationNS, createdNS int64
	var gamma int64

	err := row.Scan(
		&rec.ID,
		&rec.SourceHash,
		&rec.TreeNodes,
		&gamma,
		&rec.Charges,
		&rec.Diagnostics,
		&durationNS,
		&createdNS,
	)
	if err != nil {
		return nil, err
	}

	rec.StaticGamma = uint64(gamma)
	rec.Duration = time.Duration(durationNS)
	rec.CreatedAt = time.Unix(0, createdNS)
	return &rec, nil
}
