package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Storage
	SQLite SQLiteConfig

	// Study planner
	Planner        PlannerConfig
	Digest         DigestConfig
	GoogleCalendar GoogleCalendarConfig

	// Push channels
	Telegram TelegramConfig
	Redis    RedisConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	PerMin int
}

type SQLiteConfig struct {
	Path string
}

// PlannerConfig controls due-date interpretation and reminder timing.
type PlannerConfig struct {
	Timezone     string
	PreDueOffset time.Duration
}

type DigestConfig struct {
	Enabled bool
	Cron    string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Storage
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	if sqlitePath := viper.GetString("sqlite_path"); sqlitePath != "" {
		cfg.SQLite.Path = sqlitePath
	}

	// Study planner
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.PreDueOffset = viper.GetDuration("planner.pre_due_offset")
	cfg.Digest.Enabled = viper.GetBool("digest.enabled")
	cfg.Digest.Cron = viper.GetString("digest.cron")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Push channels
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.Channel = viper.GetString("redis.channel")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("sqlite.path", "data/raiden.db")

	viper.SetDefault("planner.timezone", "Local")
	viper.SetDefault("planner.pre_due_offset", "30m")
	viper.SetDefault("digest.enabled", false)
	viper.SetDefault("digest.cron", "0 0 7 * * *")

	viper.SetDefault("redis.channel", "raiden:notifications")
}

func validate(cfg *Config) error {
	if cfg.SQLite.Path == "" {
		return fmt.Errorf("sqlite.path is required")
	}
	if cfg.Planner.PreDueOffset <= 0 {
		return fmt.Errorf("planner.pre_due_offset must be positive, got %s", cfg.Planner.PreDueOffset)
	}
	if cfg.Digest.Enabled && cfg.Digest.Cron == "" {
		return fmt.Errorf("digest.cron is required when digest is enabled")
	}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}

// splitList splits a comma separated value since viper does not parse arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
