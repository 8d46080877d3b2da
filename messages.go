package cohere

import (
	"fmt"
	"strings"
)

// Roles of ChatMessageV2 values, as reported by MessageText.
const (
	RoleUser      = string(UserMessageV2RoleUser)
	RoleSystem    = string(SystemMessageV2RoleSystem)
	RoleAssistant = string(AssistantMessageV2RoleAssistant)
	RoleTool      = string(ToolMessageV2RoleTool)
)

// UserMessage returns a user message with plain text content.
func UserMessage(text string) ChatMessageV2 {
	var content UserMessageV2Content
	must(content.FromUserMessageV2Content0(text))
	var m ChatMessageV2
	must(m.FromUserMessageV2(UserMessageV2{Content: content}))
	return m
}

// SystemMessage returns a system message with plain text content.
func SystemMessage(text string) ChatMessageV2 {
	var content SystemMessageV2Content
	must(content.FromSystemMessageV2Content0(text))
	var m ChatMessageV2
	must(m.FromSystemMessageV2(SystemMessageV2{Content: content}))
	return m
}

// AssistantMessage returns an assistant message with plain text content.
func AssistantMessage(text string) ChatMessageV2 {
	var content AssistantMessageV2Content
	must(content.FromAssistantMessageV2Content0(text))
	var m ChatMessageV2
	must(m.FromAssistantMessageV2(AssistantMessageV2{Content: &content}))
	return m
}

// AssistantToolCallMessage returns an assistant turn that requested tool calls.
// Empty text or plan is left out of the message.
func AssistantToolCallMessage(text, plan string, calls []ToolCallV2) ChatMessageV2 {
	am := AssistantMessageV2{ToolCalls: &calls}
	if plan != "" {
		am.ToolPlan = &plan
	}
	if text != "" {
		var content AssistantMessageV2Content
		must(content.FromAssistantMessageV2Content0(text))
		am.Content = &content
	}
	var m ChatMessageV2
	must(m.FromAssistantMessageV2(am))
	return m
}

// ToolMessage returns the result of the tool call callID.
func ToolMessage(callID, content string) ChatMessageV2 {
	var c ToolMessageV2Content
	must(c.FromToolMessageV2Content0(content))
	var m ChatMessageV2
	must(m.FromToolMessageV2(ToolMessageV2{Content: c, ToolCallId: callID}))
	return m
}

// must panics on marshal errors, which cannot happen for the plain
// strings and structs the constructors above encode.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// MessageText returns the role of m and its content flattened to text.
// Image blocks are skipped.
func MessageText(m ChatMessageV2) (role string, text string, err error) {
	v, err := m.ValueByDiscriminator()
	if err != nil {
		return "", "", fmt.Errorf("failed to decode message: %w", err)
	}

	switch msg := v.(type) {
	case UserMessageV2:
		text, err = userContentText(msg.Content)
		return RoleUser, text, err
	case SystemMessageV2:
		if s, err := msg.Content.AsSystemMessageV2Content0(); err == nil {
			return RoleSystem, s, nil
		}
		blocks, err := msg.Content.AsSystemMessageV2Content1()
		return RoleSystem, joinTextContent(blocks), err
	case AssistantMessageV2:
		if msg.Content == nil {
			return RoleAssistant, derefString(msg.ToolPlan), nil
		}
		if s, err := msg.Content.AsAssistantMessageV2Content0(); err == nil {
			return RoleAssistant, s, nil
		}
		blocks, err := msg.Content.AsAssistantMessageV2Content1()
		return RoleAssistant, joinTextContent(blocks), err
	case ToolMessageV2:
		if s, err := msg.Content.AsToolMessageV2Content0(); err == nil {
			return RoleTool, s, nil
		}
		blocks, err := msg.Content.AsToolMessageV2Content1()
		return RoleTool, joinTextContent(blocks), err
	default:
		return "", "", fmt.Errorf("unexpected message type %T", v)
	}
}

func userContentText(c UserMessageV2Content) (string, error) {
	if s, err := c.AsUserMessageV2Content0(); err == nil {
		return s, nil
	}
	blocks, err := c.AsUserMessageV2Content1()
	if err != nil {
		return "", err
	}

	var parts []string
	for _, b := range blocks {
		kind, err := b.Discriminator()
		if err != nil {
			return "", err
		}
		if kind != string(TextContentTypeText) {
			continue
		}
		tc, err := b.AsTextContent()
		if err != nil {
			return "", err
		}
		parts = append(parts, tc.Text)
	}
	return strings.Join(parts, "\n"), nil
}

func joinTextContent(blocks []TextContent) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, b.Text)
	}
	return strings.Join(parts, "\n")
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
