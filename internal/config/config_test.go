package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boundEnvs = []string{
	"PORT", "DB_DRIVER", "DB_PATH", "DB_PASSWORD",
	"TRANSLATION_PROVIDER", "GEMINI_API_KEY", "OPENAI_API_KEY", "TRANSLATION_MODEL", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range boundEnvs {
		t.Setenv(env, "")
	}
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			CORS: CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		},
		Database: DatabaseConfig{
			Driver:   "sqlite",
			Path:     "monglot.db",
			Host:     "localhost",
			Port:     3306,
			Database: "monglot",
			Username: "monglot",
		},
		Translation: TranslationConfig{Provider: "gemini"},
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		want              func(tmpDir string) *Config
		wantAPIKey        string
		wantErrorContains []string
	}{
		{
			name:          "empty config file uses defaults",
			configContent: "",
			want: func(string) *Config {
				return defaultConfig()
			},
		},
		{
			name: "values from config file",
			configContent: `server:
  port: 9090
  cors:
    allowed_origins:
      - https://example.com
database:
  driver: mysql
  host: db.internal
  port: 3307
  database: dict
  username: admin
translation:
  provider: openai
  model: gpt-4o
log:
  level: debug
  format: json
`,
			want: func(string) *Config {
				cfg := defaultConfig()
				cfg.Server = ServerConfig{Port: 9090, CORS: CORSConfig{AllowedOrigins: []string{"https://example.com"}}}
				cfg.Database.Driver = "mysql"
				cfg.Database.Host = "db.internal"
				cfg.Database.Port = 3307
				cfg.Database.Database = "dict"
				cfg.Database.Username = "admin"
				cfg.Translation = TranslationConfig{Provider: "openai", Model: "gpt-4o"}
				cfg.Log = LogConfig{Level: "debug", Format: "json"}
				return cfg
			},
		},
		{
			name:          "environment overrides port and credential",
			configContent: "server:\n  port: 9090\n",
			env: map[string]string{
				"PORT":           "4000",
				"GEMINI_API_KEY": "secret",
				"DB_PATH":        "/var/lib/monglot/data.db",
			},
			want: func(string) *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 4000
				cfg.Translation.Gemini.APIKey = "secret"
				cfg.Database.Path = "/var/lib/monglot/data.db"
				return cfg
			},
			wantAPIKey: "secret",
		},
		{
			name:          "openai key is accepted when gemini key is absent",
			configContent: "translation:\n  provider: openai\n",
			env:           map[string]string{"OPENAI_API_KEY": "sk-test"},
			want: func(string) *Config {
				cfg := defaultConfig()
				cfg.Translation = TranslationConfig{Provider: "openai", OpenAI: ProviderCredentials{APIKey: "sk-test"}}
				return cfg
			},
			wantAPIKey: "sk-test",
		},
		{
			name:          "openai provider ignores the gemini key",
			configContent: "translation:\n  provider: openai\n",
			env: map[string]string{
				"GEMINI_API_KEY": "gemini-secret",
				"OPENAI_API_KEY": "openai-secret",
			},
			want: func(string) *Config {
				cfg := defaultConfig()
				cfg.Translation = TranslationConfig{
					Provider: "openai",
					Gemini:   ProviderCredentials{APIKey: "gemini-secret"},
					OpenAI:   ProviderCredentials{APIKey: "openai-secret"},
				}
				return cfg
			},
			wantAPIKey: "openai-secret",
		},
		{
			name:          "openai provider without its own key is disabled",
			configContent: "translation:\n  provider: openai\n",
			env:           map[string]string{"GEMINI_API_KEY": "gemini-secret"},
			want: func(string) *Config {
				cfg := defaultConfig()
				cfg.Translation = TranslationConfig{Provider: "openai", Gemini: ProviderCredentials{APIKey: "gemini-secret"}}
				return cfg
			},
		},
		{
			name:          "api_key from the config file is the fallback",
			configContent: "translation:\n  api_key: file-key\n",
			want: func(string) *Config {
				cfg := defaultConfig()
				cfg.Translation.APIKey = "file-key"
				return cfg
			},
			wantAPIKey: "file-key",
		},
		{
			name:          "readable seed file",
			configContent: "vocabulary:\n  seed_file: SEED\n",
			want: func(tmpDir string) *Config {
				cfg := defaultConfig()
				cfg.Vocabulary.SeedFile = filepath.Join(tmpDir, "seed.yaml")
				return cfg
			},
		},
		{
			name:              "invalid YAML format",
			configContent:     "server:\n  port: [[[\n",
			wantErrorContains: []string{"configuration file found but could not be read"},
		},
		{
			name:              "unknown driver",
			configContent:     "database:\n  driver: postgres\n",
			wantErrorContains: []string{"invalid configuration", "driver must be one of [sqlite mysql]"},
		},
		{
			name:              "unknown provider",
			configContent:     "translation:\n  provider: claude\n",
			wantErrorContains: []string{"provider must be one of [gemini openai]"},
		},
		{
			name:              "missing seed file",
			configContent:     "vocabulary:\n  seed_file: /nonexistent/seed.yaml\n",
			wantErrorContains: []string{"seed_file must be an existing and readable file"},
		},
		{
			name:              "port out of range",
			configContent:     "server:\n  port: 70000\n",
			wantErrorContains: []string{"invalid configuration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			tmpDir := t.TempDir()
			seedPath := filepath.Join(tmpDir, "seed.yaml")
			require.NoError(t, os.WriteFile(seedPath, []byte("- word: i\n  translation: x\n"), 0644))

			content := strings.ReplaceAll(tt.configContent, "SEED", seedPath)
			configPath := filepath.Join(tmpDir, "config.yaml")
			require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				require.Error(t, err)
				for _, want := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), want)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want(tmpDir), got)
			assert.Equal(t, tt.wantAPIKey, got.Translation.SelectedAPIKey())
			assert.Equal(t, tt.wantAPIKey != "", got.Translation.Enabled())
		})
	}
}

func TestConfigLoader_Load_NoConfigFile(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Chdir(tmpDir)

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), got)
}

func TestTranslationConfig_Enabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  TranslationConfig
		want bool
	}{
		{name: "no key", cfg: TranslationConfig{Provider: "gemini"}},
		{name: "file key", cfg: TranslationConfig{Provider: "gemini", APIKey: "k"}, want: true},
		{name: "gemini key", cfg: TranslationConfig{Provider: "gemini", Gemini: ProviderCredentials{APIKey: "k"}}, want: true},
		{name: "openai with only a gemini key", cfg: TranslationConfig{Provider: "openai", Gemini: ProviderCredentials{APIKey: "k"}}},
		{name: "openai key", cfg: TranslationConfig{Provider: "openai", OpenAI: ProviderCredentials{APIKey: "k"}}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Enabled())
		})
	}
}
