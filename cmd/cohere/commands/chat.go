package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/config"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/history"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/printer"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/spinner"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/summarize"
)

// exitFunc terminates the interactive loop when the context is cancelled
// while it waits for input.
var exitFunc = os.Exit

func chatCommand(version string) *cli.Command {
	return &cli.Command{
		Name:      "chat",
		Usage:     "Send a message, or start an interactive chat when no message is given",
		ArgsUsage: "[message...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "model", Usage: "chat model (default from config)"},
			&cli.StringFlag{Name: "preamble", Usage: "system message placed before the conversation"},
			&cli.FloatFlag{Name: "temperature", Usage: "sampling temperature (default from config)"},
			&cli.IntFlag{Name: "max-tokens", Usage: "maximum tokens to generate (default from config)"},
			&cli.IntFlag{Name: "k", Usage: "top-k sampling"},
			&cli.FloatFlag{Name: "p", Usage: "top-p sampling"},
			&cli.IntFlag{Name: "seed", Usage: "seed for deterministic sampling"},
			&cli.StringSliceFlag{Name: "stop", Usage: "stop sequence, repeatable"},
			&cli.FloatFlag{Name: "frequency-penalty", Usage: "penalty for frequent tokens"},
			&cli.FloatFlag{Name: "presence-penalty", Usage: "penalty for present tokens"},
			&cli.StringFlag{Name: "safety-mode", Usage: "CONTEXTUAL|STRICT|OFF"},
			&cli.StringFlag{Name: "citation-mode", Usage: "FAST|ACCURATE|OFF"},
			&cli.BoolFlag{Name: "no-stream", Usage: "wait for the complete reply instead of streaming"},
			&cli.BoolFlag{Name: "legacy", Usage: "use the v1 single-message chat endpoint (one-shot only)"},
			&cli.StringFlag{Name: "session", Usage: "resume the session with this id (interactive)"},
			&cli.BoolFlag{Name: "new", Usage: "start a new session without prompting (interactive)"},
			&cli.IntFlag{Name: "truncate-display", Usage: "truncate replayed history messages to this many characters", Value: 200},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, cfg, err := newClient(ctx, cmd)
			if err != nil {
				return err
			}
			opts, err := chatOptionsFromFlags(cmd, cfg)
			if err != nil {
				return err
			}

			if cmd.Args().Len() > 0 {
				return chatOnce(ctx, cmd, client, opts, strings.Join(cmd.Args().Slice(), " "))
			}
			if cmd.Bool("legacy") {
				return errors.New("--legacy requires a message")
			}
			return chatInteractive(ctx, cmd, client, cfg, opts)
		},
	}
}

// chatOptions are the per-request settings shared by every turn.
type chatOptions struct {
	preamble string
	stream   bool
	base     cohere.Chatv2Request
}

func chatOptionsFromFlags(cmd *cli.Command, cfg *config.Config) (chatOptions, error) {
	opts := chatOptions{
		preamble: cfg.Chat.Preamble,
		stream:   !cmd.Bool("no-stream") && cmd.String("output") == outputText,
	}
	if cmd.IsSet("preamble") {
		opts.preamble = cmd.String("preamble")
	}

	req := &opts.base
	req.Model = cmd.String("model")

	temperature := float32(cfg.Chat.Temperature)
	if cmd.IsSet("temperature") {
		temperature = float32(cmd.Float("temperature"))
	}
	req.Temperature = &temperature

	maxTokens := cfg.Chat.MaxTokens
	if cmd.IsSet("max-tokens") {
		maxTokens = cmd.Int("max-tokens")
	}
	if maxTokens > 0 {
		req.MaxTokens = &maxTokens
	}

	if cmd.IsSet("k") {
		k := cmd.Int("k")
		req.K = &k
	}
	if cmd.IsSet("p") {
		p := float32(cmd.Float("p"))
		req.P = &p
	}
	if cmd.IsSet("seed") {
		seed := cmd.Int("seed")
		req.Seed = &seed
	}
	if stop := cmd.StringSlice("stop"); len(stop) > 0 {
		req.StopSequences = &stop
	}
	if cmd.IsSet("frequency-penalty") {
		v := float32(cmd.Float("frequency-penalty"))
		req.FrequencyPenalty = &v
	}
	if cmd.IsSet("presence-penalty") {
		v := float32(cmd.Float("presence-penalty"))
		req.PresencePenalty = &v
	}
	if s := cmd.String("safety-mode"); s != "" {
		mode, err := cohere.ParseSafetyMode(s)
		if err != nil {
			return opts, err
		}
		req.SafetyMode = &mode
	}
	if s := cmd.String("citation-mode"); s != "" {
		mode, err := cohere.ParseCitationMode(s)
		if err != nil {
			return opts, err
		}
		req.CitationOptions = &cohere.CitationOptions{Mode: &mode}
	}
	return opts, nil
}

// request returns a copy of the base request carrying messages.
func (o chatOptions) request(messages []cohere.ChatMessageV2) cohere.Chatv2Request {
	req := o.base
	req.Messages = messages
	return req
}

func chatOnce(ctx context.Context, cmd *cli.Command, client *cohere.CohereClient, opts chatOptions, message string) error {
	if cmd.Bool("legacy") {
		return chatLegacy(ctx, cmd, client, opts, message)
	}

	var messages []cohere.ChatMessageV2
	if opts.preamble != "" {
		messages = append(messages, cohere.SystemMessage(opts.preamble))
	}
	messages = append(messages, cohere.UserMessage(message))

	w := cmd.Root().Writer
	p := printer.New(w, colorEnabled(w))

	if opts.stream {
		_, err := streamTurn(ctx, client, opts.request(messages), w, nil)
		return err
	}

	resp, err := spinner.Run(stderrSpinner(), func() (*cohere.ChatResponseV2, error) {
		return client.Chat(ctx, opts.request(messages))
	})
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}
	return render(cmd, resp, func(w io.Writer) error {
		text, err := cohere.ResponseText(resp)
		if err != nil && !errors.Is(err, cohere.ErrEmptyResponse) {
			return err
		}
		fmt.Fprintln(w, text)
		printToolCalls(w, resp.Message.ToolCalls)
		p.PrintUsage(resp.Usage)
		return nil
	})
}

func chatLegacy(ctx context.Context, cmd *cli.Command, client *cohere.CohereClient, opts chatOptions, message string) error {
	base := opts.base
	req := cohere.ChatRequest{
		Message:          message,
		Temperature:      base.Temperature,
		MaxTokens:        base.MaxTokens,
		K:                base.K,
		P:                base.P,
		Seed:             base.Seed,
		StopSequences:    base.StopSequences,
		FrequencyPenalty: base.FrequencyPenalty,
		PresencePenalty:  base.PresencePenalty,
	}
	if base.Model != "" {
		req.Model = &base.Model
	}
	if opts.preamble != "" {
		req.Preamble = &opts.preamble
	}

	resp, err := client.LegacyChat(ctx, req)
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}
	return render(cmd, resp, func(w io.Writer) error {
		fmt.Fprintln(w, resp.Text)
		printMeta(w, resp.Meta)
		return nil
	})
}

// streamTurn streams one reply to w and returns the collected text.
func streamTurn(ctx context.Context, client *cohere.CohereClient, req cohere.Chatv2Request, w io.Writer, p *printer.Printer) (string, error) {
	stream, err := client.ChatStream(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat failed: %w", err)
	}

	if p != nil {
		fmt.Fprint(w, p.RolePrefix(cohere.RoleAssistant, false))
	}
	summary, err := cohere.CollectStream(stream, func(s string) {
		fmt.Fprint(w, s)
	})
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("chat stream failed: %w", err)
	}
	if p != nil {
		p.PrintUsage(summary.Usage)
	}
	return summary.Text, nil
}

func printToolCalls(w io.Writer, calls *[]cohere.ToolCallV2) {
	if calls == nil {
		return
	}
	for _, tc := range *calls {
		if tc.Function == nil {
			continue
		}
		fmt.Fprintf(w, "tool call %s: %s(%s)\n", deref(tc.Id), deref(tc.Function.Name), deref(tc.Function.Arguments))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func chatInteractive(ctx context.Context, cmd *cli.Command, client *cohere.CohereClient, cfg *config.Config, opts chatOptions) error {
	w := cmd.Root().Writer
	p := printer.New(w, colorEnabled(w))
	con := history.Console{
		Scanner:         bufio.NewScanner(cmd.Root().Reader),
		Out:             w,
		Printer:         p,
		TruncateDisplay: cmd.Int("truncate-display"),
	}
	con.Scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	manager, err := history.NewManager(cfg.History.SessionsDir)
	if err != nil {
		return err
	}

	switch {
	case cmd.String("session") != "":
		if _, err := manager.LoadSessionByID(cmd.String("session")); err != nil {
			return err
		}
	case cmd.Bool("new"):
		manager.NewSession()
	default:
		if err := history.SelectSession(manager, con); err != nil {
			return err
		}
	}

	summarizer := summarize.New(client, cfg.Summarization)
	sp := stderrSpinner()

	stop := context.AfterFunc(ctx, func() { exitFunc(0) })
	defer stop()

	model := opts.base.Model
	if model == "" {
		model = client.ChatModel()
	}

	fmt.Fprintf(w, "Chatting with %s. Type /help for commands, quit to exit.\n", model)
	for {
		fmt.Fprint(w, p.RolePrefix(cohere.RoleUser, false))
		if !con.Scanner.Scan() {
			fmt.Fprintln(w)
			return con.Scanner.Err()
		}

		input := strings.TrimSpace(con.Scanner.Text())
		switch {
		case input == "":
			continue
		case input == "quit" || input == "exit":
			return nil
		case strings.HasPrefix(input, "/"):
			if handleSummaryCommand(ctx, input, summarizer, cfg.Summarization, manager, w, sp) {
				continue
			}
			if res := history.HandleCommand(input, manager, con); !res.Handled {
				fmt.Fprintf(w, "Unknown command %s. Type /help for commands.\n", input)
			}
			continue
		}

		session := manager.Current()
		if session.Model == "" {
			session.Model = model
		}
		if err := manager.AddMessage(history.Message{Role: history.RoleUser, Content: input}); err != nil {
			return err
		}

		reply, err := chatTurn(ctx, client, opts, history.ConvertSessionMessages(session, opts.preamble), w, p, sp)
		if err == nil && strings.TrimSpace(reply) == "" {
			err = errors.New("the model returned an empty reply")
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(w, "Error: %v\n", err)
			// Drop the unanswered message so the next turn starts clean.
			session.Messages = session.Messages[:len(session.Messages)-1]
			if err := manager.SaveCurrent(); err != nil {
				return err
			}
			continue
		}

		if err := manager.AddMessage(history.Message{Role: history.RoleAssistant, Content: reply}); err != nil {
			return err
		}
		if summarizer.ShouldAutoSummarize(session.Messages) && summarizer.NeedsSummarization(session.Messages) {
			summarizeSession(ctx, summarizer, manager, w, sp)
		}
	}
}

func chatTurn(ctx context.Context, client *cohere.CohereClient, opts chatOptions, messages []cohere.ChatMessageV2, w io.Writer, p *printer.Printer, sp *spinner.Spinner) (string, error) {
	req := opts.request(messages)
	if opts.stream {
		return streamTurn(ctx, client, req, w, p)
	}

	resp, err := spinner.Run(sp, func() (*cohere.ChatResponseV2, error) {
		return client.Chat(ctx, req)
	})
	if err != nil {
		return "", fmt.Errorf("chat failed: %w", err)
	}
	text, err := cohere.ResponseText(resp)
	if err != nil {
		return "", err
	}
	p.PrintMessage(cohere.RoleAssistant, text, false)
	p.PrintUsage(resp.Usage)
	return text, nil
}
