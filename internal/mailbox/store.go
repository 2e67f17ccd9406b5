package mailbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id          TEXT PRIMARY KEY,
	sender      TEXT NOT NULL,
	subject     TEXT NOT NULL,
	preview     TEXT NOT NULL DEFAULT '',
	received_at INTEGER NOT NULL,
	unread      INTEGER NOT NULL DEFAULT 1,
	flagged     INTEGER NOT NULL DEFAULT 0,
	archived    INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_messages_received ON messages(received_at DESC);
`

// SQLiteStore is a Store backed by a SQLite file
type SQLiteStore struct {
	conn *sql.DB
}

// OpenStore opens or creates the database at path. ":memory:" keeps it in memory.
func OpenStore(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection keeps :memory: databases alive and serializes writes
	conn.SetMaxOpenConns(1)

	if path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{conn: conn}, nil
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

const selectColumns = `SELECT id, sender, subject, preview, received_at, unread, flagged, archived FROM messages`

func (s *SQLiteStore) List(ctx context.Context, includeArchived bool) ([]Message, error) {
	query := selectColumns
	if !includeArchived {
		query += ` WHERE archived = 0`
	}
	query += ` ORDER BY received_at DESC, id`

	rows, err := s.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("list messages: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (Message, error) {
	row := s.conn.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	msg, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Message{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Message{}, fmt.Errorf("get message %s: %w", id, err)
	}
	return msg, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, msg Message) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO messages (id, sender, subject, preview, received_at, unread, flagged, archived)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.Sender, msg.Subject, msg.Preview, msg.ReceivedAt.UnixMilli(),
		msg.Unread, msg.Flagged, msg.Archived)
	if err != nil {
		return fmt.Errorf("insert message %s: %w", msg.ID, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	return s.exec(ctx, "delete", id, `DELETE FROM messages WHERE id = ?`, id)
}

func (s *SQLiteStore) SetUnread(ctx context.Context, id string, unread bool) error {
	return s.exec(ctx, "mark", id, `UPDATE messages SET unread = ? WHERE id = ?`, unread, id)
}

func (s *SQLiteStore) SetFlagged(ctx context.Context, id string, flagged bool) error {
	return s.exec(ctx, "flag", id, `UPDATE messages SET flagged = ? WHERE id = ?`, flagged, id)
}

func (s *SQLiteStore) SetArchived(ctx context.Context, id string, archived bool) error {
	return s.exec(ctx, "archive", id, `UPDATE messages SET archived = ? WHERE id = ?`, archived, id)
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return n, nil
}

// exec runs a single-row statement and maps "no row affected" to ErrNotFound
func (s *SQLiteStore) exec(ctx context.Context, op, id, query string, args ...any) error {
	res, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s message %s: %w", op, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s message %s: %w", op, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(row scanner) (Message, error) {
	var (
		msg      Message
		received int64
	)
	err := row.Scan(&msg.ID, &msg.Sender, &msg.Subject, &msg.Preview, &received,
		&msg.Unread, &msg.Flagged, &msg.Archived)
	if err != nil {
		return Message{}, err
	}
	msg.ReceivedAt = time.UnixMilli(received)
	return msg, nil
}
