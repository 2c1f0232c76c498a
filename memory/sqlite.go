package memory

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/aschepis/chainkit/llm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Store persists conversation messages in SQLite, keyed by session ID.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the SQLite database at path and applies any
// pending migrations. Use ":memory:" for an ephemeral store.
func OpenStore(path string, logger zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open message store: %w", err)
	}
	if err := runMigrations(db, logger); err != nil {
		db.Close()
		return nil, err
	}
	return NewStore(db), nil
}

// NewStore wraps an existing database handle. The schema must already be in
// place; OpenStore handles that for the common case.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// History returns a History view over one session.
func (s *Store) History(sessionID string) History {
	return &sessionHistory{store: s, sessionID: sessionID}
}

// Sessions lists the distinct session IDs with recorded messages.
func (s *Store) Sessions(ctx context.Context) ([]string, error) {
	queryStr, args, err := sq.Select("DISTINCT session_id").
		From("messages").
		OrderBy("session_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, queryStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		sessions = append(sessions, id)
	}
	return sessions, rows.Err()
}

func (s *Store) appendMessage(ctx context.Context, sessionID string, msg llm.Message) error {
	queryStr, args, err := sq.Insert("messages").
		Columns("session_id", "role", "content", "created_at").
		Values(sessionID, string(msg.Role), msg.Text, time.Now().Unix()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = s.db.ExecContext(ctx, queryStr, args...)
	return err
}

func (s *Store) messages(ctx context.Context, sessionID string) ([]llm.Message, error) {
	queryStr, args, err := sq.Select("role", "content").
		From("messages").
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, queryStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []llm.Message
	for rows.Next() {
		var role, content string
		if err := rows.Scan(&role, &content); err != nil {
			return nil, err
		}
		messages = append(messages, llm.Message{Role: llm.Role(role), Text: content})
	}
	return messages, rows.Err()
}

func (s *Store) clear(ctx context.Context, sessionID string) error {
	queryStr, args, err := sq.Delete("messages").
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = s.db.ExecContext(ctx, queryStr, args...)
	return err
}

// sessionHistory adapts one session of a Store to the History interface.
type sessionHistory struct {
	store     *Store
	sessionID string
}

func (h *sessionHistory) Messages(ctx context.Context) ([]llm.Message, error) {
	return h.store.messages(ctx, h.sessionID)
}

func (h *sessionHistory) Add(ctx context.Context, msg llm.Message) error {
	return h.store.appendMessage(ctx, h.sessionID, msg)
}

func (h *sessionHistory) Clear(ctx context.Context) error {
	return h.store.clear(ctx, h.sessionID)
}

var _ History = (*sessionHistory)(nil)

// runMigrations applies the embedded schema migrations.
func runMigrations(db *sql.DB, logger zerolog.Logger) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite3 driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("initialize migrations: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debug().Msg("Message store schema is up to date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	logger.Debug().Msg("Message store migrations applied")
	return nil
}
