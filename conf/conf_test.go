package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leetcoach/client/srvcerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := Parse(Default(), []byte(`
api_url = "https://api.leetcoach.dev"
request_timeout = "5s"
default_language = "cpp"
`))
	require.NoError(t, err)
	assert.Equal(t, "https://api.leetcoach.dev", cfg.ApiURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "cpp", cfg.DefaultLanguage)
	assert.Equal(t, DefaultWsURL, cfg.WsURL)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse(Default(), []byte(`api_url = `))
	assert.True(t, srvcerror.HasCode(err, ErrCodeInvalidConfig))

	_, err = Parse(Default(), []byte(`request_timeout = "soon"`))
	assert.True(t, srvcerror.HasCode(err, ErrCodeInvalidConfig))
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"LEETCOACH_API_URL":         "http://10.0.0.5:8000",
		"LEETCOACH_LANGUAGE":        "cpp",
		"LEETCOACH_REQUEST_TIMEOUT": "90s",
		"LEETCOACH_LOG_LEVEL":       "debug",
	}
	cfg, err := applyEnv(Default(), func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8000", cfg.ApiURL)
	assert.Equal(t, "cpp", cfg.DefaultLanguage)
	assert.Equal(t, 90*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultMockApiAddr, cfg.MockApiAddr)

	env["LEETCOACH_REQUEST_TIMEOUT"] = "later"
	_, err = applyEnv(Default(), func(k string) string { return env[k] })
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(c *Config)
	}{
		{"ftp scheme", func(c *Config) { c.ApiURL = "ftp://example.com" }},
		{"no timeout", func(c *Config) { c.RequestTimeout = 0 }},
		{"unknown language", func(c *Config) { c.DefaultLanguage = "java" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, srvcerror.HasCode(err, ErrCodeInvalidConfig))
		})
	}
}

func TestLoadWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leetcoach.toml")
	err := os.WriteFile(path, []byte("api_url = \"https://coach.example.com\"\nrequest_timeout = \"10s\"\n"), 0o644)
	require.NoError(t, err)

	t.Setenv("LEETCOACH_CONFIG", path)
	t.Setenv("LEETCOACH_API_URL", "")
	t.Setenv("LEETCOACH_REQUEST_TIMEOUT", "")
	t.Setenv("LEETCOACH_LANGUAGE", "cpp")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://coach.example.com", cfg.ApiURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "cpp", cfg.DefaultLanguage)
}

func TestLoadMissingExplicitConfigFails(t *testing.T) {
	t.Setenv("LEETCOACH_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load()
	assert.Error(t, err)
}
