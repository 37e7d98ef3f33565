package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

// ErrNotFound is returned when no record exists for the requested ID.
var ErrNotFound = errors.New("audit record not found")

// Record is the audit trail entry for one instrumented contract: what was
// compiled, how big it was, and what static gamma schedule it carries.
type Record struct {
	// ID is the compilation job ID.
	ID string

	// SourceHash is the hex-encoded SHA-256 of the contract input.
	SourceHash string

	// TreeNodes is the node count of the input tree.
	TreeNodes int

	// StaticGamma is the sum of every metering charge inserted.
	StaticGamma uint64

	// Charges is the number of metering calls inserted.
	Charges int

	// Diagnostics is the number of soft cost-evaluation fallbacks.
	Diagnostics int

	// Duration is the compilation wall time.
	Duration time.Duration

	// CreatedAt is when the compilation finished.
	CreatedAt time.Time
}

// Store persists audit records. Implementations must be safe for concurrent
// use.
type Store interface {
	// Save persists a record.
	Save(ctx context.Context, rec *Record) error

	// Get returns the record with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]*Record, error)

	// PruneBefore deletes records created before the cutoff and reports how
	// many were removed.
	PruneBefore(ctx context.Context, cutoff time.Time) (int, error)

	// Close releases the store's resources.
	Close() error
}

// HashSource returns the hex-encoded SHA-256 of contract input bytes.
func HashSource(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}
