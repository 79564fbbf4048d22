package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

const (
	defaultGRPCAddr  = ":8080"
	defaultAPIToken  = "dev-token"
	defaultCurrency  = "BRL"
	defaultLogLevel  = "info"
	defaultLogFormat = "json"
)

// DevUserID owns the default dev-token
var DevUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// DatabaseConfig holds the PostgreSQL connection settings
type DatabaseConfig struct {
	ConnStr  string `yaml:"conn_str"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// ConnectionString returns ConnStr, or builds one from the individual settings
func (d DatabaseConfig) ConnectionString() string {
	if d.ConnStr != "" {
		return d.ConnStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Config is the server configuration
type Config struct {
	GRPCAddr  string         `yaml:"grpc_addr"`
	Storage   string         `yaml:"storage"`
	Database  DatabaseConfig `yaml:"database"`
	Currency  string         `yaml:"currency"`
	LogLevel  string         `yaml:"log_level"`
	LogFormat string         `yaml:"log_format"`
	// APITokens maps "token=userUUID" pairs, comma separated
	APITokens      string   `yaml:"api_tokens"`
	DefaultFolders []string `yaml:"default_folders"`
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		GRPCAddr: defaultGRPCAddr,
		Storage:  StoragePostgres,
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			Name:     "fairprice",
		},
		Currency:       defaultCurrency,
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
		APITokens:      defaultAPIToken + "=" + DevUserID.String(),
		DefaultFolders: []string{"Watchlist"},
	}
}

// Load reads .env (if present), then the YAML file named by CONFIG_FILE (if
// set), then environment variables, each overriding the previous source.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv(os.LookupEnv)
	cfg.Currency = strings.ToUpper(cfg.Currency)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides settings with the environment variables that are set
func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	set("GRPC_ADDR", &c.GRPCAddr)
	set("STORAGE", &c.Storage)
	set("DB_CONN_STR", &c.Database.ConnStr)
	set("DB_HOST", &c.Database.Host)
	set("DB_PORT", &c.Database.Port)
	set("DB_USER", &c.Database.User)
	set("DB_PASSWORD", &c.Database.Password)
	set("DB_NAME", &c.Database.Name)
	set("API_TOKENS", &c.APITokens)
	set("CURRENCY", &c.Currency)
	set("LOG_LEVEL", &c.LogLevel)
	set("LOG_FORMAT", &c.LogFormat)

	var folders string
	set("DEFAULT_FOLDERS", &folders)
	if folders != "" {
		c.DefaultFolders = splitList(folders)
	}
}

// Validate rejects settings the server cannot start with
func (c Config) Validate() error {
	if c.GRPCAddr == "" {
		return errors.New("grpc address must not be empty")
	}
	if c.Storage != StoragePostgres && c.Storage != StorageMemory {
		return fmt.Errorf("unknown storage %q: must be %s or %s", c.Storage, StoragePostgres, StorageMemory)
	}
	if money.GetCurrency(strings.ToUpper(c.Currency)) == nil {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("unknown log format %q: must be json or console", c.LogFormat)
	}
	if _, err := c.Tokens(); err != nil {
		return err
	}
	return nil
}

// Tokens parses APITokens into a token to user ID map
func (c Config) Tokens() (map[string]uuid.UUID, error) {
	tokens := make(map[string]uuid.UUID)
	for _, pair := range splitList(c.APITokens) {
		token, rawID, ok := strings.Cut(pair, "=")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			return nil, fmt.Errorf("invalid api token entry %q: expected token=userUUID", pair)
		}
		userID, err := uuid.Parse(strings.TrimSpace(rawID))
		if err != nil || userID == uuid.Nil {
			return nil, fmt.Errorf("invalid user id for api token %q", token)
		}
		if _, dup := tokens[token]; dup {
			return nil, fmt.Errorf("duplicate api token %q", token)
		}
		tokens[token] = userID
	}
	if len(tokens) == 0 {
		return nil, errors.New("at least one api token is required")
	}
	return tokens, nil
}

// UserIDs returns the distinct users that own a token, in configuration order
func (c Config) UserIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, pair := range splitList(c.APITokens) {
		_, rawID, _ := strings.Cut(pair, "=")
		id, err := uuid.Parse(strings.TrimSpace(rawID))
		if err != nil || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// Logger builds the root logger from LogLevel and LogFormat
func (c Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if c.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
