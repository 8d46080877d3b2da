package history

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PAIR-Systems-Inc/cohere4go/internal/printer"
)

func newConsole(input string, out *bytes.Buffer) Console {
	return Console{
		Scanner: bufio.NewScanner(strings.NewReader(input)),
		Out:     out,
		Printer: printer.New(out, false),
	}
}

func TestSelectSessionEmptyStartsNew(t *testing.T) {
	m := newTestManager(t)
	var out bytes.Buffer

	require.NoError(t, SelectSession(m, newConsole("", &out)))
	assert.NotNil(t, m.Current())
	assert.Contains(t, out.String(), "Starting a new session")
}

func TestSelectSessionContinuesExisting(t *testing.T) {
	m := newTestManager(t)
	session := m.NewSession()
	require.NoError(t, m.AddMessage(Message{Role: RoleUser, Content: "a rather long question"}))
	m.SetCurrent(nil)

	var out bytes.Buffer
	con := newConsole("abc\n7\n1\n", &out)
	con.TruncateDisplay = 8
	require.NoError(t, SelectSession(m, con))

	require.NotNil(t, m.Current())
	assert.Equal(t, session.ID, m.Current().ID)
	assert.Contains(t, out.String(), "Please enter a valid number.")
	assert.Contains(t, out.String(), "between 0 and 1")
	assert.Contains(t, out.String(), "user: a rather...")
}

func TestHandleCommand(t *testing.T) {
	m := newTestManager(t)
	m.NewSession()
	require.NoError(t, m.AddMessage(Message{Role: RoleUser, Content: "hello"}))

	var out bytes.Buffer

	res := HandleCommand("/rename  Greetings ", m, newConsole("", &out))
	assert.Equal(t, CommandResult{Handled: true}, res)
	assert.Equal(t, "Greetings", m.Current().Name)

	out.Reset()
	res = HandleCommand("/INFO", m, newConsole("", &out))
	assert.True(t, res.Handled)
	assert.Contains(t, out.String(), "Messages: 1")

	out.Reset()
	res = HandleCommand("/list", m, newConsole("", &out))
	assert.True(t, res.Handled)
	assert.Contains(t, out.String(), "Greetings (current)")

	res = HandleCommand("/delete", m, newConsole("no\n", &out))
	assert.False(t, res.SessionChanged)

	id := m.Current().ID
	res = HandleCommand("/delete", m, newConsole("yes\n", &out))
	assert.True(t, res.SessionChanged)
	assert.NotEqual(t, id, m.Current().ID)

	assert.False(t, HandleCommand("hello there", m, newConsole("", &out)).Handled)
}

func TestHandleCommandSwitch(t *testing.T) {
	m := newTestManager(t)
	first := m.NewSession()
	require.NoError(t, m.AddMessage(Message{Role: RoleUser, Content: "one"}))
	m.NewSession()

	var out bytes.Buffer
	res := HandleCommand("/switch", m, newConsole("1\n", &out))
	assert.True(t, res.SessionChanged)
	assert.Equal(t, first.ID, m.Current().ID)

	res = HandleCommand("/switch", m, newConsole("9\n", &out))
	assert.False(t, res.SessionChanged)
	assert.Contains(t, out.String(), "Invalid selection.")
}
