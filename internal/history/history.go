// Package history provides session management for persistent chat history.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
)

// Session represents a chat session with its history.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Messages  []Message `json:"messages"`
}

// Manager handles session lifecycle and persistence.
type Manager struct {
	sessionsDir string
	current     *Session
	now         func() time.Time
}

// DefaultSessionsDir returns the default directory for storing sessions.
func DefaultSessionsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cohere4go", "sessions"), nil
}

// NewManager creates a new session manager with the specified sessions directory.
// If sessionsDir is empty, it uses the default directory (~/.cohere4go/sessions/).
func NewManager(sessionsDir string) (*Manager, error) {
	if sessionsDir == "" {
		var err error
		sessionsDir, err = DefaultSessionsDir()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(sessionsDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create sessions directory: %w", err)
	}

	return &Manager{
		sessionsDir: sessionsDir,
		now:         time.Now,
	}, nil
}

// NewSession creates a new session with a generated ID and makes it current.
func (m *Manager) NewSession() *Session {
	now := m.now()
	session := &Session{
		ID:        uuid.New().String(),
		Name:      "", // Will be set from first message
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  []Message{},
	}
	m.current = session
	return session
}

// Current returns the currently active session.
func (m *Manager) Current() *Session {
	return m.current
}

// SetCurrent sets the current session.
func (m *Manager) SetCurrent(session *Session) {
	m.current = session
}

// ListSessions returns all available sessions sorted by last updated (most recent first).
func (m *Manager) ListSessions() ([]*Session, error) {
	entries, err := os.ReadDir(m.sessionsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*Session{}, nil
		}
		return nil, fmt.Errorf("failed to read sessions directory: %w", err)
	}

	var sessions []*Session
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		session, err := loadSession(filepath.Join(m.sessionsDir, entry.Name()))
		if err != nil {
			// Skip corrupted session files
			continue
		}
		sessions = append(sessions, session)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
	})

	return sessions, nil
}

// LoadSessionByID loads a session by its ID and makes it current.
func (m *Manager) LoadSessionByID(id string) (*Session, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", id, err)
	}
	session, err := loadSession(m.sessionPath(id))
	if err != nil {
		return nil, err
	}
	m.current = session
	return session, nil
}

// SaveCurrent saves the current session to disk.
func (m *Manager) SaveCurrent() error {
	if m.current == nil {
		return errors.New("no current session to save")
	}
	return m.Save(m.current)
}

// Save saves a session to disk.
func (m *Manager) Save(session *Session) error {
	session.UpdatedAt = m.now()
	return saveSession(m.sessionPath(session.ID), session)
}

// DeleteSession deletes a session by its ID.
func (m *Manager) DeleteSession(id string) error {
	if err := os.Remove(m.sessionPath(id)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if m.current != nil && m.current.ID == id {
		m.current = nil
	}

	return nil
}

// AddMessage appends a message to the current session and saves it.
func (m *Manager) AddMessage(msg Message) error {
	if m.current == nil {
		return errors.New("no current session")
	}

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = m.now()
	}
	m.current.Messages = append(m.current.Messages, msg)

	// Name the session after its first user message
	if m.current.Name == "" && msg.Role == RoleUser {
		m.current.Name = generateSessionName(msg.Content)
	}

	return m.SaveCurrent()
}

// SessionsDir returns the sessions directory path.
func (m *Manager) SessionsDir() string {
	return m.sessionsDir
}

func (m *Manager) sessionPath(id string) string {
	return filepath.Join(m.sessionsDir, id+".json")
}

// generateSessionName creates a session name from the first user message,
// truncated to 50 runes with an ellipsis.
func generateSessionName(content string) string {
	const maxLength = 50

	name := strings.TrimSpace(content)
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", "")

	if utf8.RuneCountInString(name) > maxLength {
		runes := []rune(name)
		name = string(runes[:maxLength-3]) + "..."
	}

	return name
}

// ConvertSessionMessages converts session messages to chat API messages,
// optionally preceded by a system preamble.
func ConvertSessionMessages(session *Session, preamble string) []cohere.ChatMessageV2 {
	var messages []cohere.ChatMessageV2
	if preamble != "" {
		messages = append(messages, cohere.SystemMessage(preamble))
	}
	if session == nil {
		return messages
	}
	return append(messages, MessagesToCohere(session.Messages)...)
}
