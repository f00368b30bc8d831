package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/at-ishikawa/monglot/internal/validation"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Translation TranslationConfig `mapstructure:"translation"`
	Vocabulary  VocabularyConfig  `mapstructure:"vocabulary"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig selects the store. Path is used by sqlite, the network fields by mysql.
type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=sqlite mysql"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

// TranslationConfig selects the completion provider. Each provider reads only its own key,
// falling back to APIKey from the config file.
type TranslationConfig struct {
	Provider string              `mapstructure:"provider" validate:"oneof=gemini openai"`
	APIKey   string              `mapstructure:"api_key"`
	Model    string              `mapstructure:"model"`
	BaseURL  string              `mapstructure:"base_url" validate:"omitempty,url"`
	Gemini   ProviderCredentials `mapstructure:"gemini"`
	OpenAI   ProviderCredentials `mapstructure:"openai"`
}

type ProviderCredentials struct {
	APIKey string `mapstructure:"api_key"`
}

// SelectedAPIKey returns the credential of the configured provider.
func (c TranslationConfig) SelectedAPIKey() string {
	var key string
	switch c.Provider {
	case "openai":
		key = c.OpenAI.APIKey
	case "gemini", "":
		key = c.Gemini.APIKey
	}
	if key != "" {
		return key
	}
	return c.APIKey
}

// Enabled reports whether the selected provider has a credential. Without one the translate endpoint fails but nothing else does.
func (c TranslationConfig) Enabled() bool {
	return c.SelectedAPIKey() != ""
}

type VocabularyConfig struct {
	SeedFile string `mapstructure:"seed_file" validate:"omitempty,file"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

type ConfigLoader struct {
	viper     *viper.Viper
	validator *validation.Validator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, err := validation.New("mapstructure")
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/monglot")
	}

	return &ConfigLoader{
		viper:     v,
		validator: validate,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "monglot.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "monglot")
	v.SetDefault("database.username", "monglot")
	v.SetDefault("translation.provider", "gemini")
	v.SetDefault("translation.gemini.api_key", "")
	v.SetDefault("translation.openai.api_key", "")
	// Seed file is optional - the embedded default vocabulary is used when empty
	v.SetDefault("vocabulary.seed_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	envBindings := []struct {
		key  string
		envs []string
	}{
		{key: "server.port", envs: []string{"PORT"}},
		{key: "database.driver", envs: []string{"DB_DRIVER"}},
		{key: "database.path", envs: []string{"DB_PATH"}},
		{key: "database.password", envs: []string{"DB_PASSWORD"}},
		{key: "translation.provider", envs: []string{"TRANSLATION_PROVIDER"}},
		// each provider reads only its own variable
		{key: "translation.gemini.api_key", envs: []string{"GEMINI_API_KEY"}},
		{key: "translation.openai.api_key", envs: []string{"OPENAI_API_KEY"}},
		{key: "translation.model", envs: []string{"TRANSLATION_MODEL"}},
		{key: "log.level", envs: []string{"LOG_LEVEL"}},
	}
	for _, binding := range envBindings {
		args := append([]string{binding.key}, binding.envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind %v environment variable: %w", binding.envs, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
