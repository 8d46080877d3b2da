// Package summarize folds older chat history into tiered summaries.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/config"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/history"
)

// Chatter sends a message list and returns the reply text.
// *cohere.CohereClient satisfies it.
type Chatter interface {
	ChatX(ctx context.Context, messages []cohere.ChatMessageV2) (string, error)
}

// Summarizer handles chat history summarization.
type Summarizer struct {
	client Chatter
	config config.SummarizationConfig
	now    func() time.Time
}

// New creates a Summarizer with the given client and configuration.
func New(client Chatter, cfg config.SummarizationConfig) *Summarizer {
	return &Summarizer{
		client: client,
		config: cfg,
		now:    time.Now,
	}
}

// Enabled reports whether summarization is turned on.
func (s *Summarizer) Enabled() bool {
	return s.config.Enabled
}

// TierClassification holds messages classified by tier.
type TierClassification struct {
	Recent     []history.Message // kept verbatim
	ToCondense []history.Message
	ToCompress []history.Message
	Existing   []history.Message // summaries already in the session
}

// ClassifyTiers splits messages, ordered oldest first, into tiers.
func (s *Summarizer) ClassifyTiers(messages []history.Message) TierClassification {
	var result TierClassification

	var regular []history.Message
	for _, msg := range messages {
		if msg.IsSummary() {
			result.Existing = append(result.Existing, msg)
		} else {
			regular = append(regular, msg)
		}
	}
	if len(regular) == 0 {
		return result
	}

	recentStart := max(len(regular)-s.config.RecentCount, 0)
	condensedStart := max(recentStart-s.config.CondensedCount, 0)

	for i, msg := range regular {
		switch {
		case i >= recentStart:
			result.Recent = append(result.Recent, msg)
		case i >= condensedStart:
			result.ToCondense = append(result.ToCondense, msg)
		default:
			result.ToCompress = append(result.ToCompress, msg)
		}
	}

	return result
}

// NeedsSummarization reports whether any message falls outside the recent tier.
func (s *Summarizer) NeedsSummarization(messages []history.Message) bool {
	tiers := s.ClassifyTiers(messages)
	return len(tiers.ToCondense) > 0 || len(tiers.ToCompress) > 0
}

// ShouldAutoSummarize reports whether the regular message count passed the
// configured threshold.
func (s *Summarizer) ShouldAutoSummarize(messages []history.Message) bool {
	if !s.config.Enabled || !s.config.AutoSummarize {
		return false
	}

	count := 0
	for _, msg := range messages {
		if msg.IsMessage() {
			count++
		}
	}
	return count > s.config.AutoThreshold
}

// SummarizeMessages asks the model for one summary of messages.
func (s *Summarizer) SummarizeMessages(ctx context.Context, messages []history.Message, level history.SummaryLevel) (history.Message, error) {
	if len(messages) == 0 {
		return history.Message{}, errors.New("no messages to summarize")
	}

	var conversation strings.Builder
	count := 0
	for _, msg := range messages {
		if msg.IsSummary() {
			fmt.Fprintf(&conversation, "[earlier summary]: %s\n\n", msg.Content)
			count += msg.MessageCount
			continue
		}
		fmt.Fprintf(&conversation, "%s: %s\n\n", msg.Role, msg.Content)
		count++
	}

	prompt := s.config.CondensedPrompt
	if level == history.LevelCompressed {
		prompt = s.config.CompressedPrompt
	}

	content, err := s.client.ChatX(ctx, []cohere.ChatMessageV2{
		cohere.SystemMessage(prompt),
		cohere.UserMessage(conversation.String()),
	})
	if err != nil {
		return history.Message{}, fmt.Errorf("failed to generate summary: %w", err)
	}

	return history.Message{
		Role:         history.RoleSystem,
		Content:      content,
		Type:         history.TypeSummary,
		SummaryLevel: level,
		MessageCount: count,
		CreatedAt:    s.now(),
	}, nil
}

// ProcessSession returns the session's messages with older tiers replaced
// by summaries: one compressed, one condensed, then the recent messages.
// The session itself is not modified.
func (s *Summarizer) ProcessSession(ctx context.Context, session *history.Session) ([]history.Message, error) {
	if !s.config.Enabled {
		return session.Messages, nil
	}

	tiers := s.ClassifyTiers(session.Messages)
	existing := func(level history.SummaryLevel) []history.Message {
		var out []history.Message
		for _, msg := range tiers.Existing {
			if msg.SummaryLevel == level {
				out = append(out, msg)
			}
		}
		return out
	}

	var result []history.Message

	priorCompressed := existing(history.LevelCompressed)
	priorCondensed := existing(history.LevelCondensed)

	// A new condensed summary replaces the old one, so the old one ages into
	// the compressed tier together with the oldest messages.
	if len(tiers.ToCompress) > 0 || (len(tiers.ToCondense) > 0 && len(priorCondensed) > 0) {
		toCompress := append(priorCompressed, priorCondensed...)
		toCompress = append(toCompress, tiers.ToCompress...)
		summary, err := s.SummarizeMessages(ctx, toCompress, history.LevelCompressed)
		if err != nil {
			return nil, fmt.Errorf("failed to create compressed summary: %w", err)
		}
		result = append(result, summary)
	} else {
		result = append(result, priorCompressed...)
		result = append(result, priorCondensed...)
	}

	if len(tiers.ToCondense) > 0 {
		summary, err := s.SummarizeMessages(ctx, tiers.ToCondense, history.LevelCondensed)
		if err != nil {
			return nil, fmt.Errorf("failed to create condensed summary: %w", err)
		}
		result = append(result, summary)
	}

	return append(result, tiers.Recent...), nil
}

// Stats describes how a message list would be classified.
type Stats struct {
	TotalMessages     int
	RecentMessages    int
	CondensedMessages int
	CompressedCount   int
	ExistingSummaries int
}

// GetStats returns statistics about how messages would be classified.
func (s *Summarizer) GetStats(messages []history.Message) Stats {
	tiers := s.ClassifyTiers(messages)
	return Stats{
		TotalMessages:     len(messages),
		RecentMessages:    len(tiers.Recent),
		CondensedMessages: len(tiers.ToCondense),
		CompressedCount:   len(tiers.ToCompress),
		ExistingSummaries: len(tiers.Existing),
	}
}
