package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const (
	SourceBackend = "backend"
	SourceMock    = "mock"
	SourceMongo   = "mongo"
)

type AppConfig struct {
	Logging      LoggingConfig                `yaml:"logging"`
	Environment  string                       `yaml:"environment"`
	Environments map[string]EnvironmentConfig `yaml:"environments"`
	Source       string                       `yaml:"source"`
	HTTP         HTTPConfig                   `yaml:"http"`
	Retry        RetryConfig                  `yaml:"retry"`
	Server       ServerConfig                 `yaml:"server"`
	Session      SessionConfig                `yaml:"session"`
	Explorer     ExplorerConfig               `yaml:"explorer"`
	Mongo        MongoConfig                  `yaml:"mongo"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// EnvironmentConfig mirrors the per-build environment files of the web app:
// one backend base URL per environment.
type EnvironmentConfig struct {
	APIURL string `yaml:"api_url"`
}

type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// RetryConfig bounds how many extra attempts a post listing fetch gets.
type RetryConfig struct {
	MaxRetries uint64        `yaml:"max_retries"`
	Delay      time.Duration `yaml:"delay"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type SessionConfig struct {
	CookieName      string `yaml:"cookie_name"`
	LoginPath       string `yaml:"login_path"`
	CredentialsFile string `yaml:"credentials_file"`
}

type ExplorerConfig struct {
	PageSize int `yaml:"page_size"`
}

type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

var config *AppConfig

// APIURL returns the backend base URL of the selected environment.
func (c AppConfig) APIURL() string {
	if env, ok := c.Environments[c.Environment]; ok {
		return strings.TrimRight(env.APIURL, "/")
	}
	return ""
}

func (c *AppConfig) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Source == "" {
		c.Source = SourceBackend
	}
	if c.HTTP.Timeout <= 0 {
		c.HTTP.Timeout = 10 * time.Second
	}
	if c.Retry.MaxRetries == 0 {
		c.Retry.MaxRetries = 2
	}
	if c.Retry.Delay <= 0 {
		c.Retry.Delay = 300 * time.Millisecond
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "admin-token"
	}
	if c.Session.LoginPath == "" {
		c.Session.LoginPath = "/admin/login"
	}
	if c.Explorer.PageSize <= 0 {
		c.Explorer.PageSize = 10
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "blog"
	}
	if c.Mongo.Collection == "" {
		c.Mongo.Collection = "blogs"
	}
}

// applyEnv overlays values that differ between deployments.
// APP_ENV picks the environment block; secrets come from .env only.
func (c *AppConfig) applyEnv() {
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
}

func (c AppConfig) validate() error {
	switch c.Source {
	case SourceBackend, SourceMock:
	case SourceMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("config: source %q requires mongo.uri or MONGO_URI", c.Source)
		}
	default:
		return fmt.Errorf("config: unknown source %q", c.Source)
	}
	if c.Source == SourceBackend && c.APIURL() == "" {
		return fmt.Errorf("config: no api_url for environment %q", c.Environment)
	}
	return nil
}

// Load reads .env and config.yaml from dir and returns a validated config.
func Load(dir string) (*AppConfig, error) {
	_ = godotenv.Load(filepath.Join(dir, ENV_FILE))

	data, err := os.ReadFile(filepath.Join(dir, CONFIG_FILE))
	if err != nil {
		return nil, err
	}

	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", CONFIG_FILE, err)
	}
	c.applyEnv()
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func InitApp() {
	c, err := Load(GetBasePath())
	if err != nil {
		panic(err)
	}
	config = c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
