package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeMock   Mode = "mock"
	ModeLive   Mode = "live"
	ModeHybrid Mode = "hybrid"
)

type ProviderConfig struct {
	Enabled  bool              `yaml:"enabled"`
	Priority int               `yaml:"priority"`
	EnvKeys  map[string]string `yaml:"envKeys,omitempty"`
}

type GeminiConfig struct {
	Model   string        `yaml:"model"`
	BaseURL string        `yaml:"baseURL,omitempty"`
	Timeout time.Duration `yaml:"timeout"`
}

type HistoryConfig struct {
	Path  string `yaml:"path"`
	Limit int    `yaml:"limit"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

type ServerConfig struct {
	Port      int             `yaml:"port"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Config struct {
	Mode      Mode                      `yaml:"mode"`
	Providers map[string]ProviderConfig `yaml:"providers"`
	Gemini    GeminiConfig              `yaml:"gemini"`
	History   HistoryConfig             `yaml:"history"`
	Server    ServerConfig              `yaml:"server"`
	Log       LogConfig                 `yaml:"log"`
}

const (
	GeminiProvider   = "gemini"
	GeminiAPIKeyEnv  = "GEMINI_API_KEY"
	DefaultModel     = "gemini-2.5-flash"
	DefaultHistoryN  = 5
	defaultPort      = 8080
	defaultRPS       = 1
	defaultRateBurst = 5
)

func DefaultConfig() *Config {
	return &Config{
		Mode: ModeHybrid,
		Providers: map[string]ProviderConfig{
			"mock_search": {Enabled: true, Priority: 100},
			GeminiProvider: {
				Enabled:  true,
				Priority: 10,
				EnvKeys:  map[string]string{"apiKey": GeminiAPIKeyEnv},
			},
		},
		Gemini: GeminiConfig{
			Model:   DefaultModel,
			Timeout: 90 * time.Second,
		},
		History: HistoryConfig{
			Path:  defaultHistoryPath(),
			Limit: DefaultHistoryN,
		},
		Server: ServerConfig{
			Port: defaultPort,
			RateLimit: RateLimitConfig{
				RequestsPerSecond: defaultRPS,
				Burst:             defaultRateBurst,
			},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads .env, the YAML config file and FLYGUIDE_* overrides, in that
// order of increasing precedence. Missing files are not an error.
func Load() *Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path := configPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	if envMode := os.Getenv("FLYGUIDE_MODE"); envMode != "" {
		cfg.WithMode(envMode)
	}
	if model := os.Getenv("FLYGUIDE_MODEL"); model != "" {
		cfg.Gemini.Model = model
	}
	if path := os.Getenv("FLYGUIDE_HISTORY"); path != "" {
		cfg.History.Path = path
	}
	if port, err := strconv.Atoi(os.Getenv("FLYGUIDE_PORT")); err == nil && port > 0 {
		cfg.Server.Port = port
	}
	if level := os.Getenv("FLYGUIDE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if cfg.History.Limit <= 0 {
		cfg.History.Limit = DefaultHistoryN
	}

	return cfg
}

func (c *Config) WithMode(mode string) *Config {
	if mode == "" {
		return c
	}
	switch strings.ToLower(mode) {
	case "mock":
		c.Mode = ModeMock
	case "live":
		c.Mode = ModeLive
	case "hybrid":
		c.Mode = ModeHybrid
	}
	return c
}

func (c *Config) ProviderHasCredentials(name string) bool {
	pc, ok := c.Providers[name]
	if !ok || !pc.Enabled {
		return false
	}
	for _, envKey := range pc.EnvKeys {
		if os.Getenv(envKey) == "" {
			return false
		}
	}
	return true
}

func (c *Config) MissingCredentials(name string) []string {
	pc, ok := c.Providers[name]
	if !ok {
		return nil
	}
	var missing []string
	for label, envKey := range pc.EnvKeys {
		if os.Getenv(envKey) == "" {
			missing = append(missing, fmt.Sprintf("%s (%s)", label, envKey))
		}
	}
	return missing
}

// Credential returns the value of the env var a provider maps to label.
func (c *Config) Credential(provider, label string) string {
	pc, ok := c.Providers[provider]
	if !ok {
		return ""
	}
	if envKey, ok := pc.EnvKeys[label]; ok {
		return os.Getenv(envKey)
	}
	return ""
}

func configPath() string {
	if p := os.Getenv("FLYGUIDE_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".config", "beetlebot", "flyguide.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

func defaultHistoryPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "flyguide", "history.json")
}
