package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PAIR-Systems-Inc/cohere4go/internal/printer"
)

// Console bundles the terminal endpoints used by the interactive session commands.
type Console struct {
	Scanner *bufio.Scanner
	Out     io.Writer
	Printer *printer.Printer
	// TruncateDisplay limits replayed messages to this many runes; 0 disables truncation.
	TruncateDisplay int
}

// SelectSession displays available sessions and lets the user choose one or create a new one.
func SelectSession(manager *Manager, con Console) error {
	sessions, err := manager.ListSessions()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(con.Out, "No existing sessions found. Starting a new session.")
		manager.NewSession()
		return nil
	}

	fmt.Fprintln(con.Out, "\n=== Available Sessions ===")
	fmt.Fprintln(con.Out, "  0. Start a new session")
	for i, session := range sessions {
		updated := session.UpdatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(con.Out, "  %d. %s (%d messages, last updated: %s)\n", i+1, displayName(session), len(session.Messages), updated)
	}
	fmt.Fprintln(con.Out)

	for {
		fmt.Fprint(con.Out, "Select a session (0 for new, or number): ")
		if !con.Scanner.Scan() {
			return errors.New("failed to read input")
		}

		input := strings.TrimSpace(con.Scanner.Text())
		if input == "" {
			continue
		}

		num, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(con.Out, "Please enter a valid number.")
			continue
		}

		if num == 0 {
			fmt.Fprintln(con.Out, "Starting a new session.")
			manager.NewSession()
			return nil
		}

		if num < 1 || num > len(sessions) {
			fmt.Fprintf(con.Out, "Please enter a number between 0 and %d.\n", len(sessions))
			continue
		}

		selected := sessions[num-1]
		manager.SetCurrent(selected)
		fmt.Fprintf(con.Out, "Continuing session: %s\n", displayName(selected))
		replay(selected, con)
		return nil
	}
}

// replay prints the messages of a loaded session in dim colors.
func replay(session *Session, con Console) {
	if len(session.Messages) == 0 {
		return
	}
	fmt.Fprintln(con.Out)
	for _, msg := range session.Messages {
		content := msg.Content
		if content == "" && msg.ToolPlan != "" {
			content = msg.ToolPlan
		}
		if msg.IsSummary() {
			content = fmt.Sprintf("[%s summary of %d messages] %s", msg.SummaryLevel, msg.MessageCount, content)
		}
		con.Printer.PrintMessage(string(msg.Role), truncateRunes(content, con.TruncateDisplay), true)
	}
	fmt.Fprintln(con.Out)
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}

func displayName(s *Session) string {
	if s.Name == "" {
		return "(unnamed)"
	}
	return s.Name
}

// CommandResult represents the result of handling a command.
type CommandResult struct {
	Handled        bool
	SessionChanged bool
}

// HandleCommand processes session management commands.
// Returns a CommandResult indicating if the command was handled and if the session changed.
func HandleCommand(input string, manager *Manager, con Console) CommandResult {
	parts := strings.SplitN(strings.TrimSpace(input), " ", 2)
	cmd := strings.ToLower(parts[0])

	switch cmd {
	case "/help":
		printHelp(con.Out)
		return CommandResult{Handled: true}

	case "/new":
		manager.NewSession()
		fmt.Fprintln(con.Out, "Started a new session.")
		return CommandResult{Handled: true, SessionChanged: true}

	case "/list":
		sessions, err := manager.ListSessions()
		if err != nil {
			fmt.Fprintf(con.Out, "Error listing sessions: %v\n", err)
			return CommandResult{Handled: true}
		}
		if len(sessions) == 0 {
			fmt.Fprintln(con.Out, "No sessions found.")
			return CommandResult{Handled: true}
		}
		currentID := ""
		if manager.Current() != nil {
			currentID = manager.Current().ID
		}
		fmt.Fprintln(con.Out, "\n=== Sessions ===")
		for i, session := range sessions {
			marker := ""
			if session.ID == currentID {
				marker = " (current)"
			}
			fmt.Fprintf(con.Out, "  %d. %s%s\n", i+1, displayName(session), marker)
		}
		fmt.Fprintln(con.Out)
		return CommandResult{Handled: true}

	case "/switch":
		sessions, err := manager.ListSessions()
		if err != nil {
			fmt.Fprintf(con.Out, "Error listing sessions: %v\n", err)
			return CommandResult{Handled: true}
		}
		if len(sessions) == 0 {
			fmt.Fprintln(con.Out, "No sessions to switch to.")
			return CommandResult{Handled: true}
		}

		fmt.Fprintln(con.Out, "\n=== Sessions ===")
		for i, session := range sessions {
			fmt.Fprintf(con.Out, "  %d. %s\n", i+1, displayName(session))
		}
		fmt.Fprint(con.Out, "Select session number: ")
		if !con.Scanner.Scan() {
			return CommandResult{Handled: true}
		}
		num, err := strconv.Atoi(strings.TrimSpace(con.Scanner.Text()))
		if err != nil || num < 1 || num > len(sessions) {
			fmt.Fprintln(con.Out, "Invalid selection.")
			return CommandResult{Handled: true}
		}
		selected := sessions[num-1]
		manager.SetCurrent(selected)
		fmt.Fprintf(con.Out, "Switched to session: %s\n", displayName(selected))
		replay(selected, con)
		return CommandResult{Handled: true, SessionChanged: true}

	case "/rename":
		if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
			fmt.Fprintln(con.Out, "Usage: /rename <new name>")
			return CommandResult{Handled: true}
		}
		newName := strings.TrimSpace(parts[1])
		if manager.Current() == nil {
			fmt.Fprintln(con.Out, "No current session.")
			return CommandResult{Handled: true}
		}
		manager.Current().Name = newName
		if err := manager.SaveCurrent(); err != nil {
			fmt.Fprintf(con.Out, "Error saving session: %v\n", err)
			return CommandResult{Handled: true}
		}
		fmt.Fprintf(con.Out, "Session renamed to: %s\n", newName)
		return CommandResult{Handled: true}

	case "/delete":
		current := manager.Current()
		if current == nil {
			fmt.Fprintln(con.Out, "No current session to delete.")
			return CommandResult{Handled: true}
		}
		fmt.Fprintf(con.Out, "Delete session '%s'? (yes/no): ", displayName(current))
		if !con.Scanner.Scan() {
			return CommandResult{Handled: true}
		}
		confirm := strings.ToLower(strings.TrimSpace(con.Scanner.Text()))
		if confirm != "yes" && confirm != "y" {
			fmt.Fprintln(con.Out, "Deletion cancelled.")
			return CommandResult{Handled: true}
		}
		if len(current.Messages) == 0 {
			// Never saved.
			manager.NewSession()
			fmt.Fprintln(con.Out, "Session deleted. Starting a new session.")
			return CommandResult{Handled: true, SessionChanged: true}
		}
		if err := manager.DeleteSession(current.ID); err != nil {
			fmt.Fprintf(con.Out, "Error deleting session: %v\n", err)
			return CommandResult{Handled: true}
		}
		fmt.Fprintln(con.Out, "Session deleted. Starting a new session.")
		manager.NewSession()
		return CommandResult{Handled: true, SessionChanged: true}

	case "/info":
		session := manager.Current()
		if session == nil {
			fmt.Fprintln(con.Out, "No current session.")
			return CommandResult{Handled: true}
		}
		fmt.Fprintf(con.Out, "\n=== Session Info ===\n")
		fmt.Fprintf(con.Out, "ID: %s\n", session.ID)
		fmt.Fprintf(con.Out, "Name: %s\n", displayName(session))
		if session.Model != "" {
			fmt.Fprintf(con.Out, "Model: %s\n", session.Model)
		}
		fmt.Fprintf(con.Out, "Created: %s\n", session.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(con.Out, "Updated: %s\n", session.UpdatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(con.Out, "Messages: %d\n\n", len(session.Messages))
		return CommandResult{Handled: true}

	default:
		return CommandResult{}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, `
=== Commands ===
  /help       - Show this help message
  /new        - Start a new session
  /list       - List all sessions
  /switch     - Switch to a different session
  /rename     - Rename current session (/rename <name>)
  /delete     - Delete current session
  /info       - Show current session info
  /summarize  - Summarize older messages to shrink the history
  /stats      - Show summarization statistics
  quit        - Exit the application
  exit        - Exit the application`)
}
