package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PAIR-Systems-Inc/cohere4go/internal/config"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/history"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/spinner"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/summarize"
)

// handleSummaryCommand runs /summarize and /stats. It reports false for any
// other input.
func handleSummaryCommand(ctx context.Context, input string, s *summarize.Summarizer, cfg config.SummarizationConfig, manager *history.Manager, w io.Writer, sp *spinner.Spinner) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "/summarize":
		if !s.Enabled() {
			fmt.Fprintln(w, "Summarization is disabled in configuration.")
			return true
		}
		session := manager.Current()
		if !s.NeedsSummarization(session.Messages) {
			stats := s.GetStats(session.Messages)
			fmt.Fprintln(w, "No messages need summarization yet.")
			fmt.Fprintf(w, "Current stats: %d total messages, %d recent (kept in full)\n", stats.TotalMessages, stats.RecentMessages)
			return true
		}
		summarizeSession(ctx, s, manager, w, sp)
		return true

	case "/stats":
		stats := s.GetStats(manager.Current().Messages)
		fmt.Fprintln(w, "\n=== Session Statistics ===")
		fmt.Fprintf(w, "Total messages:      %d\n", stats.TotalMessages)
		fmt.Fprintf(w, "Recent (full):       %d\n", stats.RecentMessages)
		fmt.Fprintf(w, "To condense:         %d\n", stats.CondensedMessages)
		fmt.Fprintf(w, "To compress:         %d\n", stats.CompressedCount)
		fmt.Fprintf(w, "Existing summaries:  %d\n", stats.ExistingSummaries)
		if cfg.AutoSummarize {
			fmt.Fprintf(w, "Auto-summarize threshold: %d (current: %d)\n\n", cfg.AutoThreshold, stats.TotalMessages-stats.ExistingSummaries)
		} else {
			fmt.Fprintln(w, "Auto-summarization: disabled")
			fmt.Fprintln(w)
		}
		return true
	}
	return false
}

// summarizeSession replaces the current session's older messages with
// summaries and saves it. Failures are reported and leave the session as is.
func summarizeSession(ctx context.Context, s *summarize.Summarizer, manager *history.Manager, w io.Writer, sp *spinner.Spinner) {
	session := manager.Current()
	before := s.GetStats(session.Messages)
	fmt.Fprintf(w, "Summarizing: %d messages to compress, %d to condense, keeping %d recent\n",
		before.CompressedCount, before.CondensedMessages, before.RecentMessages)

	messages, err := spinner.Run(sp, func() ([]history.Message, error) {
		return s.ProcessSession(ctx, session)
	})
	if err != nil {
		fmt.Fprintf(w, "Error during summarization: %v\n", err)
		return
	}

	session.Messages = messages
	if err := manager.SaveCurrent(); err != nil {
		fmt.Fprintf(w, "Error saving session: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Summarization complete. New message count: %d (was %d)\n", len(messages), before.TotalMessages)
}
