// Package history persists chat sessions to SQLite.
//
// The calculators and the agent loop are stateless between processes;
// this store is the optional layer that lets a user resume a session
// after a restart. Enabled via the history section of config.yaml.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/isaque468/finagent/pkg/llm"
	_ "github.com/mattn/go-sqlite3"
)

// Store is a SQLite-backed session store.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id    TEXT NOT NULL,
	role          TEXT NOT NULL,
	content       TEXT NOT NULL DEFAULT '',
	tool_calls    TEXT NOT NULL DEFAULT '',
	tool_call_id  TEXT NOT NULL DEFAULT '',
	tool_name     TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, id);
`

// Open opens (or creates) the database at path and bootstraps the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveMessage appends one message to a session transcript.
func (s *Store) SaveMessage(ctx context.Context, sessionID string, msg llm.Message) error {
	if sessionID == "" {
		return fmt.Errorf("session id cannot be empty")
	}

	toolCalls := ""
	if len(msg.ToolCalls) > 0 {
		data, err := json.Marshal(msg.ToolCalls)
		if err != nil {
			return fmt.Errorf("failed to marshal tool calls: %w", err)
		}
		toolCalls = string(data)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (session_id, role, content, tool_calls, tool_call_id, tool_name, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, string(msg.Role), msg.Content, toolCalls, msg.ToolCallID, msg.ToolName, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

// LoadSession returns the transcript of a session in insertion order.
// A session that was never written returns an empty slice, not an error.
func (s *Store) LoadSession(ctx context.Context, sessionID string) ([]llm.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT role, content, tool_calls, tool_call_id, tool_name
		 FROM messages WHERE session_id = ? ORDER BY id`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	defer rows.Close()

	var messages []llm.Message
	for rows.Next() {
		var msg llm.Message
		var role, toolCalls string
		if err := rows.Scan(&role, &msg.Content, &toolCalls, &msg.ToolCallID, &msg.ToolName); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msg.Role = llm.Role(role)
		if toolCalls != "" {
			if err := json.Unmarshal([]byte(toolCalls), &msg.ToolCalls); err != nil {
				return nil, fmt.Errorf("failed to unmarshal tool calls: %w", err)
			}
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// Sessions lists the known session ids, most recent first.
func (s *Store) Sessions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id FROM messages GROUP BY session_id ORDER BY MAX(id) DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteSession removes a session transcript.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
