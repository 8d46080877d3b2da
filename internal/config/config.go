// Package config loads the cohere CLI configuration from defaults, a YAML
// file and COHERE_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
)

// Config represents the application configuration.
type Config struct {
	Cohere        CohereConfig        `koanf:"cohere"`
	Chat          ChatConfig          `koanf:"chat"`
	History       HistoryConfig       `koanf:"history"`
	Summarization SummarizationConfig `koanf:"summarization"`
	Auth          AuthConfig          `koanf:"auth"`
}

// CohereConfig contains Cohere API settings.
type CohereConfig struct {
	APIKey      string        `koanf:"api_key"`
	BaseURL     string        `koanf:"base_url" validate:"required,url"`
	ClientName  string        `koanf:"client_name"`
	Timeout     time.Duration `koanf:"timeout" validate:"gte=0"`
	MaxRetries  int           `koanf:"max_retries" validate:"gte=-1,lte=10"`
	EmbedModel  string        `koanf:"embed_model" validate:"required"`
	RerankModel string        `koanf:"rerank_model" validate:"required"`
	ChatModel   string        `koanf:"chat_model" validate:"required"`
}

// ChatConfig contains generation settings for the chat command.
type ChatConfig struct {
	MaxTokens   int     `koanf:"max_tokens" validate:"gte=0"`
	Temperature float64 `koanf:"temperature" validate:"gte=0,lte=1"`
	Preamble    string  `koanf:"preamble"`
}

// HistoryConfig contains chat history settings.
type HistoryConfig struct {
	SessionsDir string `koanf:"sessions_dir"`
}

// SummarizationConfig controls how older chat history is folded into summaries.
// The newest RecentCount messages are kept verbatim, the CondensedCount before
// them become a condensed summary and everything older is compressed.
type SummarizationConfig struct {
	Enabled          bool   `koanf:"enabled"`
	RecentCount      int    `koanf:"recent_count" validate:"gte=0"`
	CondensedCount   int    `koanf:"condensed_count" validate:"gte=0"`
	AutoSummarize    bool   `koanf:"auto_summarize"`
	AutoThreshold    int    `koanf:"auto_threshold" validate:"gte=0"`
	CondensedPrompt  string `koanf:"condensed_prompt"`
	CompressedPrompt string `koanf:"compressed_prompt"`
}

// AuthConfig selects where the API key is stored.
type AuthConfig struct {
	Storage string `koanf:"storage" validate:"oneof=env file keyring"`
	File    string `koanf:"file" validate:"required_if=Storage file"`
}

// DefaultConfigPath is the default path to look for the configuration file.
const DefaultConfigPath = "cohere.yaml"

// Default values for optional configuration fields.
const (
	DefaultTimeout     = 120 * time.Second
	DefaultMaxRetries  = 3
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.3
	DefaultStorage     = "keyring"

	DefaultRecentCount    = 10
	DefaultCondensedCount = 20
	DefaultAutoThreshold  = 50
)

// Default summarization prompts.
const (
	DefaultCondensedPrompt = "Summarize the following conversation, keeping key facts, decisions, " +
		"names and open questions. Write in third person and stay concise."
	DefaultCompressedPrompt = "Compress the following conversation and summaries into a few sentences " +
		"holding only the facts needed to continue the conversation."
)

// envKeys maps COHERE_* variables (without prefix) to config keys.
var envKeys = map[string]string{
	"API_KEY":        "cohere.api_key",
	"BASE_URL":       "cohere.base_url",
	"CLIENT_NAME":    "cohere.client_name",
	"TIMEOUT":        "cohere.timeout",
	"MAX_RETRIES":    "cohere.max_retries",
	"EMBED_MODEL":    "cohere.embed_model",
	"RERANK_MODEL":   "cohere.rerank_model",
	"CHAT_MODEL":     "cohere.chat_model",
	"MAX_TOKENS":     "chat.max_tokens",
	"TEMPERATURE":    "chat.temperature",
	"PREAMBLE":       "chat.preamble",
	"SESSIONS_DIR":   "history.sessions_dir",
	"SUMMARIZE":      "summarization.enabled",
	"AUTO_SUMMARIZE": "summarization.auto_summarize",
	"AUTH_STORAGE":   "auth.storage",
	"AUTH_FILE":      "auth.file",
}

const envPrefix = "COHERE_"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load builds the configuration. An empty path skips the file layer;
// a non-empty path must exist. environ supplies the environment, normally
// os.Environ.
func Load(path string, environ func() []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if environ == nil {
		environ = os.Environ
	}
	envProvider := env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: transformEnv,
		EnvironFunc:   environ,
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply defaults for values a file or the environment blanked out
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDefault loads configuration from DefaultConfigPath when that file
// exists, and from defaults and environment otherwise.
func LoadDefault() (*Config, error) {
	path := DefaultConfigPath
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		path = ""
	}
	return Load(path, os.Environ)
}

func transformEnv(k, v string) (string, any) {
	key, ok := envKeys[strings.TrimPrefix(k, envPrefix)]
	if !ok {
		return "", nil
	}
	return key, v
}

func defaults() map[string]any {
	return map[string]any{
		"cohere.base_url":     cohere.DefaultBaseURL,
		"cohere.timeout":      DefaultTimeout.String(),
		"cohere.max_retries":  DefaultMaxRetries,
		"cohere.embed_model":  cohere.DefaultEmbedModel,
		"cohere.rerank_model": cohere.DefaultRerankModel,
		"cohere.chat_model":   cohere.DefaultChatModel,
		"chat.max_tokens":     DefaultMaxTokens,
		"chat.temperature":    DefaultTemperature,
		"auth.storage":        DefaultStorage,

		"summarization.enabled":        true,
		"summarization.auto_summarize": false,
	}
}

// applyDefaults sets default values for optional configuration fields.
func (c *Config) applyDefaults() {
	if c.Cohere.BaseURL == "" {
		c.Cohere.BaseURL = cohere.DefaultBaseURL
	}
	if c.Cohere.Timeout == 0 {
		c.Cohere.Timeout = DefaultTimeout
	}
	if c.Cohere.EmbedModel == "" {
		c.Cohere.EmbedModel = cohere.DefaultEmbedModel
	}
	if c.Cohere.RerankModel == "" {
		c.Cohere.RerankModel = cohere.DefaultRerankModel
	}
	if c.Cohere.ChatModel == "" {
		c.Cohere.ChatModel = cohere.DefaultChatModel
	}
	if c.Chat.MaxTokens == 0 {
		c.Chat.MaxTokens = DefaultMaxTokens
	}
	if c.Auth.Storage == "" {
		c.Auth.Storage = DefaultStorage
	}
	c.applySummarizationDefaults()
}

// applySummarizationDefaults fills zero counts and empty prompts.
func (c *Config) applySummarizationDefaults() {
	s := &c.Summarization
	if s.RecentCount == 0 {
		s.RecentCount = DefaultRecentCount
	}
	if s.CondensedCount == 0 {
		s.CondensedCount = DefaultCondensedCount
	}
	if s.AutoThreshold == 0 {
		s.AutoThreshold = DefaultAutoThreshold
	}
	if s.CondensedPrompt == "" {
		s.CondensedPrompt = DefaultCondensedPrompt
	}
	if s.CompressedPrompt == "" {
		s.CompressedPrompt = DefaultCompressedPrompt
	}
}

// validate checks field constraints and reports every violation.
func (c *Config) validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s fails %q", fieldPath(fe.Namespace()), fe.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// fieldPath turns "Config.Cohere.BaseURL" into "cohere.base_url".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	switch s {
	case "APIKey":
		return "api_key"
	case "BaseURL":
		return "base_url"
	}
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ClientConfig converts the settings into a cohere.Config using apiKey,
// which callers resolve through the credentials package.
func (c *Config) ClientConfig(apiKey string, userAgent string) cohere.Config {
	return cohere.Config{
		APIKey:      apiKey,
		BaseURL:     c.Cohere.BaseURL,
		ClientName:  c.Cohere.ClientName,
		Timeout:     c.Cohere.Timeout,
		MaxRetries:  c.Cohere.MaxRetries,
		EmbedModel:  c.Cohere.EmbedModel,
		RerankModel: c.Cohere.RerankModel,
		ChatModel:   c.Cohere.ChatModel,
		UserAgent:   userAgent,
	}
}
