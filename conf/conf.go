package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultApiURL         = "http://localhost:8000"
	DefaultWsURL          = "ws://localhost:8000/ws"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLanguage       = "python"
	DefaultConfigFile     = "leetcoach.toml"
	DefaultLogFile        = "leetcoach.log"
	DefaultMockApiAddr    = ":8000"
)

type Config struct {
	ApiURL          string        `toml:"api_url"`
	WsURL           string        `toml:"ws_url"`
	RequestTimeout  time.Duration `toml:"-"`
	DefaultLanguage string        `toml:"default_language"`
	LogLevel        string        `toml:"log_level"`
	LogFile         string        `toml:"log_file"`
	MockApiAddr     string        `toml:"mockapi_addr"`
}

// fileConfig mirrors Config for decoding; durations are written as Go
// duration strings ("30s") in the file.
type fileConfig struct {
	Config
	RequestTimeout string `toml:"request_timeout"`
}

func Default() Config {
	return Config{
		ApiURL:          DefaultApiURL,
		WsURL:           DefaultWsURL,
		RequestTimeout:  DefaultRequestTimeout,
		DefaultLanguage: DefaultLanguage,
		LogLevel:        "info",
		LogFile:         DefaultLogFile,
		MockApiAddr:     DefaultMockApiAddr,
	}
}

// Load reads .env (if any), then the TOML file named by LEETCOACH_CONFIG
// (or leetcoach.toml when present), then environment overrides.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	path := os.Getenv("LEETCOACH_CONFIG")
	required := path != ""
	if path == "" {
		path = DefaultConfigFile
	}
	cfg, err = loadFile(cfg, path, required)
	if err != nil {
		return Config{}, err
	}

	cfg, err = applyEnv(cfg, os.Getenv)
	if err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func loadFile(cfg Config, path string, required bool) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(cfg, content)
}

// Parse decodes TOML content over base. Keys missing from the content keep
// their base values.
func Parse(base Config, content []byte) (Config, error) {
	fc := fileConfig{Config: base}
	err := toml.Unmarshal(content, &fc)
	if err != nil {
		return Config{}, ErrInvalidConfig("malformed toml").SetDebug(err)
	}
	cfg := fc.Config
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return Config{}, ErrInvalidConfig("request_timeout is not a duration").SetDebug(err)
		}
		cfg.RequestTimeout = d
	}
	return cfg, nil
}

func applyEnv(cfg Config, getenv func(string) string) (Config, error) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.ApiURL, "LEETCOACH_API_URL")
	set(&cfg.WsURL, "LEETCOACH_WS_URL")
	set(&cfg.DefaultLanguage, "LEETCOACH_LANGUAGE")
	set(&cfg.LogLevel, "LEETCOACH_LOG_LEVEL")
	set(&cfg.LogFile, "LEETCOACH_LOG_FILE")
	set(&cfg.MockApiAddr, "MOCKAPI_ADDR")

	if v := getenv("LEETCOACH_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, ErrInvalidConfig("LEETCOACH_REQUEST_TIMEOUT is not a duration").SetDebug(err)
		}
		cfg.RequestTimeout = d
	}
	return cfg, nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.ApiURL)
	if err != nil {
		return ErrInvalidConfig("api_url does not parse").SetDebug(err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidConfig(fmt.Sprintf("api_url scheme must be http or https, got %q", u.Scheme))
	}
	if c.RequestTimeout <= 0 {
		return ErrInvalidConfig("request_timeout must be positive")
	}
	switch c.DefaultLanguage {
	case "python", "cpp":
	default:
		return ErrInvalidConfig(fmt.Sprintf("unsupported default_language %q", c.DefaultLanguage))
	}
	return nil
}
