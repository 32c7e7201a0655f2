package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for database operations.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// GetAllPrefixes retrieves every stored guild prefix.
	GetAllPrefixes(ctx context.Context) ([]Prefix, error)

	// UpsertPrefix inserts or updates the prefix for a guild.
	UpsertPrefix(ctx context.Context, guildID, prefix string) error

	// GetAllStatuses retrieves the full presence rotation pool.
	GetAllStatuses(ctx context.Context) ([]Status, error)

	// AddStatus inserts a new status into the rotation pool.
	AddStatus(ctx context.Context, status *Status) error

	// RemoveStatus deletes a status by ID. Returns ErrNotFound if no row matched.
	RemoveStatus(ctx context.Context, id int64) error

	// SaveErrorReport inserts a new error report record.
	SaveErrorReport(ctx context.Context, report *ErrorReport) error

	// RunMaintenance performs database maintenance tasks like VACUUM.
	RunMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) GetAllPrefixes(ctx context.Context) ([]Prefix, error) {
	var prefixes []Prefix
	query := `SELECT guild_id, prefix, created_at, updated_at FROM prefixes;`

	if err := s.db.SelectContext(ctx, &prefixes, query); err != nil {
		s.logger.ErrorContext(ctx, "Error fetching prefixes", "error", err)
		return nil, fmt.Errorf("failed to get prefixes: %w", err)
	}

	s.logger.DebugContext(ctx, "Fetched prefixes", "count", len(prefixes))
	return prefixes, nil
}

func (s *sqlxStore) UpsertPrefix(ctx context.Context, guildID, prefix string) error {
	if guildID == "" {
		return fmt.Errorf("guild_id cannot be empty")
	}
	if prefix == "" {
		return fmt.Errorf("prefix cannot be empty")
	}

	now := time.Now().UTC()
	query := `
        INSERT INTO prefixes (guild_id, prefix, created_at, updated_at)
        VALUES (?, ?, ?, ?)
        ON CONFLICT (guild_id) DO UPDATE SET prefix = excluded.prefix, updated_at = excluded.updated_at;
    `

	if _, err := s.db.ExecContext(ctx, query, guildID, prefix, now, now); err != nil {
		s.logger.ErrorContext(ctx, "Error upserting prefix", "guild_id", guildID, "error", err)
		return fmt.Errorf("failed to upsert prefix for guild %s: %w", guildID, err)
	}

	s.logger.DebugContext(ctx, "Prefix saved", "guild_id", guildID, "prefix", prefix)
	return nil
}

func (s *sqlxStore) GetAllStatuses(ctx context.Context) ([]Status, error) {
	var statuses []Status
	query := `SELECT id, type, text, created_at FROM statuses ORDER BY id;`

	if err := s.db.SelectContext(ctx, &statuses, query); err != nil {
		s.logger.ErrorContext(ctx, "Error fetching statuses", "error", err)
		return nil, fmt.Errorf("failed to get statuses: %w", err)
	}

	s.logger.DebugContext(ctx, "Fetched statuses", "count", len(statuses))
	return statuses, nil
}

func (s *sqlxStore) AddStatus(ctx context.Context, status *Status) error {
	if status == nil {
		return fmt.Errorf("cannot save nil status")
	}
	if status.Text == "" {
		return fmt.Errorf("status must have non-empty text")
	}
	if !ValidStatusType(status.Type) {
		return fmt.Errorf("unknown status type %q", status.Type)
	}

	status.CreatedAt = time.Now().UTC()
	query := `INSERT INTO statuses (type, text, created_at) VALUES (?, ?, ?);`

	result, err := s.db.ExecContext(ctx, query, status.Type, status.Text, status.CreatedAt)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error saving status", "type", status.Type, "error", err)
		return fmt.Errorf("failed to save status: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		status.ID = id
	} else {
		s.logger.WarnContext(ctx, "Could not retrieve last insert ID after saving status", "error", err)
	}

	s.logger.DebugContext(ctx, "Status saved", "id", status.ID, "type", status.Type, "text", status.Text)
	return nil
}

func (s *sqlxStore) RemoveStatus(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM statuses WHERE id = ?;`, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error removing status", "id", id, "error", err)
		return fmt.Errorf("failed to remove status %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("status %d: %w", id, ErrNotFound)
	}

	s.logger.DebugContext(ctx, "Status removed", "id", id)
	return nil
}

func (s *sqlxStore) SaveErrorReport(ctx context.Context, report *ErrorReport) error {
	if report == nil {
		return fmt.Errorf("cannot save nil error report")
	}
	if report.ID == "" {
		return fmt.Errorf("error report must have an ID")
	}

	report.CreatedAt = time.Now().UTC()
	query := `
        INSERT INTO error_reports (id, guild_id, channel_id, user_id, command, error, created_at)
        VALUES (:id, :guild_id, :channel_id, :user_id, :command, :error, :created_at);
    `

	if _, err := s.db.NamedExecContext(ctx, query, report); err != nil {
		s.logger.ErrorContext(ctx, "Error saving error report", "id", report.ID, "error", err)
		return fmt.Errorf("failed to save error report %s: %w", report.ID, err)
	}

	s.logger.DebugContext(ctx, "Error report saved", "id", report.ID)
	return nil
}

// RunMaintenance executes a VACUUM command on the SQLite database.
// VACUUM must run outside a transaction, so a busy timeout is set first.
func (s *sqlxStore) RunMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)")

	if _, err := s.db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		s.logger.WarnContext(ctx, "Failed to set busy timeout", "error", err)
	}

	startTime := time.Now()
	if _, err := s.db.ExecContext(ctx, "VACUUM;"); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return err
		}
		s.logger.ErrorContext(ctx, "VACUUM failed", "error", err)
		return fmt.Errorf("vacuum failed: %w", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance completed", "duration", time.Since(startTime))
	return nil
}

var _ Store = (*sqlxStore)(nil)
