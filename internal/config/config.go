package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	DB       DBConfig       `mapstructure:"db"`
	Auth     AuthConfig     `mapstructure:"auth"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Importer ImporterConfig `mapstructure:"importer"`
	Alerts   AlertsConfig   `mapstructure:"alerts"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

type AuthConfig struct {
	// Secret signs and verifies HS256 bearer tokens.
	Secret string `mapstructure:"secret"`
	// Disabled skips verification and uses DevUserID as the identity.
	Disabled  bool   `mapstructure:"disabled"`
	DevUserID string `mapstructure:"dev_user_id"`
}

type OpenAIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`

	Prediction CompletionBudget `mapstructure:"prediction"`
	Playbook   CompletionBudget `mapstructure:"playbook"`
}

type CompletionBudget struct {
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

type ImporterConfig struct {
	PreviewRows int `mapstructure:"preview_rows"`
	// MaxFileBytes caps the multipart upload size.
	MaxFileBytes int64 `mapstructure:"max_file_bytes"`
}

type AlertsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Sweep   string `mapstructure:"sweep"`
	// RunwayThresholdMonths flags startups at or below this runway.
	RunwayThresholdMonths   int `mapstructure:"runway_threshold_months"`
	CriticalThresholdMonths int `mapstructure:"critical_threshold_months"`
}

type RedisConfig struct {
	// Addr empty disables the playbook cache.
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("auth.disabled", false)
	v.SetDefault("auth.dev_user_id", "00000000-0000-0000-0000-000000000001")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.timeout", "60s")
	v.SetDefault("openai.prediction.temperature", 0.3)
	v.SetDefault("openai.prediction.max_tokens", 500)
	v.SetDefault("openai.playbook.temperature", 0.7)
	v.SetDefault("openai.playbook.max_tokens", 2000)
	v.SetDefault("importer.preview_rows", 5)
	v.SetDefault("importer.max_file_bytes", 10<<20)
	v.SetDefault("alerts.enabled", true)
	v.SetDefault("alerts.sweep", "@every 1h")
	v.SetDefault("alerts.runway_threshold_months", 6)
	v.SetDefault("alerts.critical_threshold_months", 3)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "24h")

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
