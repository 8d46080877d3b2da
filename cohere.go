package cohere

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/carlmjohnson/versioninfo"

	"github.com/PAIR-Systems-Inc/cohere4go/internal/robusthttp"
)

// DefaultBaseURL is the production Cohere API endpoint.
const DefaultBaseURL = "https://api.cohere.com"

// Models used when a request leaves its model empty.
const (
	DefaultEmbedModel  = "embed-english-light-v3.0"
	DefaultRerankModel = "rerank-english-v3.0"
	DefaultChatModel   = "command-r-08-2024"
)

// ErrMissingAPIKey is returned by NewCohereClient when Config.APIKey is empty.
var ErrMissingAPIKey = errors.New("cohere: api key is required")

// Config holds the settings for a CohereClient. Only APIKey is required.
type Config struct {
	APIKey     string
	BaseURL    string
	ClientName string

	// Timeout bounds a whole request including a streamed body. Zero uses 120s.
	Timeout time.Duration
	// MaxRetries of zero uses the transport default; negative disables retries.
	MaxRetries int

	EmbedModel  string
	RerankModel string
	ChatModel   string

	UserAgent string
}

type settings struct {
	doer          HttpRequestDoer
	logger        *slog.Logger
	clientOptions []ClientOption
}

// Option customizes NewCohereClient.
type Option func(*settings)

// WithDoer replaces the retrying HTTP client, mostly for tests.
func WithDoer(doer HttpRequestDoer) Option {
	return func(s *settings) {
		s.doer = doer
	}
}

// WithLogger sets the logger for request diagnostics and transport retries.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithClientOptions passes extra options to the generated client.
func WithClientOptions(opts ...ClientOption) Option {
	return func(s *settings) {
		s.clientOptions = append(s.clientOptions, opts...)
	}
}

// CohereClient wraps the generated client with configuration defaults.
type CohereClient struct {
	client      *ClientWithResponses
	logger      *slog.Logger
	clientName  *string
	embedModel  string
	rerankModel string
	chatModel   string
}

// NewCohereClient creates a client from cfg.
func NewCohereClient(cfg Config, opts ...Option) (*CohereClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	s := &settings{logger: slog.Default()}
	for _, o := range opts {
		o(s)
	}

	if s.doer == nil {
		httpOpts := []robusthttp.Option{robusthttp.WithLogger(s.logger.With("subsystem", "robusthttp"))}
		if cfg.Timeout > 0 {
			httpOpts = append(httpOpts, robusthttp.WithTimeout(cfg.Timeout))
		}
		switch {
		case cfg.MaxRetries > 0:
			httpOpts = append(httpOpts, robusthttp.WithMaxRetries(cfg.MaxRetries))
		case cfg.MaxRetries < 0:
			httpOpts = append(httpOpts, robusthttp.WithMaxRetries(0))
		}
		s.doer = robusthttp.NewClient(httpOpts...)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "cohere4go/" + versioninfo.Short()
	}

	apiKey := cfg.APIKey
	authEditor := WithRequestEditorFn(func(ctx context.Context, req *http.Request) error {
		req.Header.Set("Authorization", "Bearer "+apiKey)
		req.Header.Set("User-Agent", userAgent)
		return nil
	})

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	clientOpts := append([]ClientOption{WithHTTPClient(s.doer), authEditor}, s.clientOptions...)
	client, err := NewClientWithResponses(baseURL, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cohere client: %w", err)
	}

	c := &CohereClient{
		client:      client,
		logger:      s.logger,
		embedModel:  orDefault(cfg.EmbedModel, DefaultEmbedModel),
		rerankModel: orDefault(cfg.RerankModel, DefaultRerankModel),
		chatModel:   orDefault(cfg.ChatModel, DefaultChatModel),
	}
	if cfg.ClientName != "" {
		name := cfg.ClientName
		c.clientName = &name
	}
	return c, nil
}

// Raw returns the generated client for operations the wrapper does not cover.
func (c *CohereClient) Raw() *ClientWithResponses {
	return c.client
}

// ChatModel returns the model used when a chat request leaves it empty.
func (c *CohereClient) ChatModel() string {
	return c.chatModel
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
