package history

import (
	"fmt"
	"time"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
)

// Role represents the role of a message author.
type Role string

const (
	RoleUser      = Role(cohere.RoleUser)
	RoleAssistant = Role(cohere.RoleAssistant)
	RoleSystem    = Role(cohere.RoleSystem)
	RoleTool      = Role(cohere.RoleTool)
)

// MessageType distinguishes regular messages from summaries.
type MessageType string

const (
	TypeMessage MessageType = "message"
	TypeSummary MessageType = "summary"
)

// SummaryLevel indicates how aggressively a summary compresses its messages.
type SummaryLevel string

const (
	LevelCondensed  SummaryLevel = "condensed"
	LevelCompressed SummaryLevel = "compressed"
)

// summaryHeader introduces a summary when it is sent to the model.
const summaryHeader = "Summary of the earlier conversation:\n"

// ToolCall represents a tool call made by the assistant.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Message represents a persisted chat message or summary.
type Message struct {
	Role         Role         `json:"role"`
	Content      string       `json:"content"`
	Type         MessageType  `json:"type,omitempty"`          // empty means TypeMessage
	SummaryLevel SummaryLevel `json:"summary_level,omitempty"` // summaries only
	MessageCount int          `json:"message_count,omitempty"` // messages folded into a summary
	CreatedAt    time.Time    `json:"created_at,omitzero"`

	// Tool-related fields
	ToolPlan   string     `json:"tool_plan,omitempty"`    // for assistant messages with tool calls
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`   // for assistant messages with tool calls
	ToolCallID string     `json:"tool_call_id,omitempty"` // for tool result messages
}

// IsSummary reports whether m is a summary.
func (m Message) IsSummary() bool {
	return m.Type == TypeSummary
}

// IsMessage reports whether m is a regular message.
func (m Message) IsMessage() bool {
	return m.Type == "" || m.Type == TypeMessage
}

// ToCohere converts a Message to the chat API message union.
// Summaries become system messages.
func (m Message) ToCohere() cohere.ChatMessageV2 {
	if m.IsSummary() {
		return cohere.SystemMessage(summaryHeader + m.Content)
	}
	switch m.Role {
	case RoleSystem:
		return cohere.SystemMessage(m.Content)
	case RoleTool:
		return cohere.ToolMessage(m.ToolCallID, m.Content)
	case RoleAssistant:
		if len(m.ToolCalls) == 0 {
			return cohere.AssistantMessage(m.Content)
		}
		return assistantWithTools(m)
	default:
		return cohere.UserMessage(m.Content)
	}
}

func assistantWithTools(m Message) cohere.ChatMessageV2 {
	calls := make([]cohere.ToolCallV2, len(m.ToolCalls))
	for i, tc := range m.ToolCalls {
		kind := cohere.ToolCallV2TypeFunction
		calls[i] = cohere.ToolCallV2{
			Id:       &tc.ID,
			Type:     &kind,
			Function: &cohere.ToolCallV2Function{Name: &tc.Name, Arguments: &tc.Arguments},
		}
	}

	return cohere.AssistantToolCallMessage(m.Content, m.ToolPlan, calls)
}

// MessageFromCohere creates a Message from a chat API message.
func MessageFromCohere(msg cohere.ChatMessageV2) (Message, error) {
	role, text, err := cohere.MessageText(msg)
	if err != nil {
		return Message{}, err
	}

	m := Message{Role: Role(role), Content: text}

	switch Role(role) {
	case RoleAssistant:
		am, err := msg.AsAssistantMessageV2()
		if err != nil {
			return Message{}, fmt.Errorf("failed to decode assistant message: %w", err)
		}
		if am.ToolPlan != nil {
			m.ToolPlan = *am.ToolPlan
			if am.Content == nil {
				m.Content = ""
			}
		}
		if am.ToolCalls != nil {
			for _, tc := range *am.ToolCalls {
				call := ToolCall{ID: deref(tc.Id)}
				if tc.Function != nil {
					call.Name = deref(tc.Function.Name)
					call.Arguments = deref(tc.Function.Arguments)
				}
				m.ToolCalls = append(m.ToolCalls, call)
			}
		}
	case RoleTool:
		tm, err := msg.AsToolMessageV2()
		if err != nil {
			return Message{}, fmt.Errorf("failed to decode tool message: %w", err)
		}
		m.ToolCallID = tm.ToolCallId
	}

	return m, nil
}

// MessagesToCohere converts a slice of Messages to chat API messages.
func MessagesToCohere(messages []Message) []cohere.ChatMessageV2 {
	result := make([]cohere.ChatMessageV2, len(messages))
	for i, m := range messages {
		result[i] = m.ToCohere()
	}
	return result
}

// MessagesFromCohere converts chat API messages to Messages.
func MessagesFromCohere(messages []cohere.ChatMessageV2) ([]Message, error) {
	result := make([]Message, len(messages))
	for i, m := range messages {
		msg, err := MessageFromCohere(m)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		result[i] = msg
	}
	return result, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
