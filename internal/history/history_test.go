package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/quick"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(filepath.Join(t.TempDir(), "sessions"))
	require.NoError(t, err)
	return m
}

func TestAddMessagePersistsSession(t *testing.T) {
	m := newTestManager(t)
	session := m.NewSession()

	require.NoError(t, m.AddMessage(Message{Role: RoleUser, Content: "What is\nreranking?"}))
	require.NoError(t, m.AddMessage(Message{Role: RoleAssistant, Content: "Ordering documents by relevance."}))

	assert.Equal(t, "What is reranking?", session.Name)

	info, err := os.Stat(filepath.Join(m.SessionsDir(), session.ID+".json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := m.LoadSessionByID(session.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Messages, 2)
	assert.Equal(t, RoleAssistant, loaded.Messages[1].Role)
	assert.False(t, loaded.Messages[0].CreatedAt.IsZero())
}

func TestAddMessageWithoutSession(t *testing.T) {
	m := newTestManager(t)
	assert.Error(t, m.AddMessage(Message{Role: RoleUser, Content: "hi"}))
	assert.Error(t, m.SaveCurrent())
}

func TestListSessionsOrderAndCorruptFiles(t *testing.T) {
	m := newTestManager(t)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tick := base
	m.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}

	first := m.NewSession()
	require.NoError(t, m.AddMessage(Message{Role: RoleUser, Content: "first"}))
	second := m.NewSession()
	require.NoError(t, m.AddMessage(Message{Role: RoleUser, Content: "second"}))

	require.NoError(t, os.WriteFile(filepath.Join(m.SessionsDir(), "broken.json"), []byte("{"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(m.SessionsDir(), "notes.txt"), []byte("x"), 0o600))

	sessions, err := m.ListSessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second.ID, sessions[0].ID)
	assert.Equal(t, first.ID, sessions[1].ID)
}

func TestDeleteSession(t *testing.T) {
	m := newTestManager(t)
	session := m.NewSession()
	require.NoError(t, m.AddMessage(Message{Role: RoleUser, Content: "bye"}))

	require.NoError(t, m.DeleteSession(session.ID))
	assert.Nil(t, m.Current())

	_, err := m.LoadSessionByID(session.ID)
	assert.Error(t, err)
	assert.Error(t, m.DeleteSession(session.ID))
}

func TestLoadSessionByIDRejectsPaths(t *testing.T) {
	m := newTestManager(t)
	_, err := m.LoadSessionByID("../../etc/passwd")
	assert.ErrorContains(t, err, "invalid session id")
}

func TestConvertSessionMessages(t *testing.T) {
	session := &Session{Messages: []Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	}}

	msgs := ConvertSessionMessages(session, "Be brief.")
	require.Len(t, msgs, 3)

	role, text, err := cohere.MessageText(msgs[0])
	require.NoError(t, err)
	assert.Equal(t, cohere.RoleSystem, role)
	assert.Equal(t, "Be brief.", text)

	assert.Len(t, ConvertSessionMessages(session, ""), 2)
	assert.Empty(t, ConvertSessionMessages(nil, ""))
}

// TestGenerateSessionNameBounds verifies names are single-line and at most 50 runes.
func TestGenerateSessionNameBounds(t *testing.T) {
	property := func(content string) bool {
		name := generateSessionName(content)
		return utf8.RuneCountInString(name) <= 50 && !strings.ContainsAny(name, "\r\n")
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
