package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
	LLM          LLM          `mapstructure:",squash"`
	WhatsApp     WhatsApp     `mapstructure:",squash"`
	OverdueSweep OverdueSweep `mapstructure:",squash"`
	Gateway      Gateway      `mapstructure:"-"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	MigrateOnStart bool   `mapstructure:"database_migrate"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_origins"`
}

// LLM holds the raw provider settings read from the environment.
// NewConfig turns them into the Gateway value injected into the extractors.
type LLM struct {
	Providers   []string      `mapstructure:"llm_providers"`
	Model       string        `mapstructure:"llm_model"`
	Temperature float64       `mapstructure:"llm_temperature"`
	Timeout     time.Duration `mapstructure:"llm_timeout"`
}

type WhatsApp struct {
	AccountSID string `mapstructure:"twilio_account_sid"`
	AuthToken  string `mapstructure:"twilio_auth_token"`
	From       string `mapstructure:"twilio_whatsapp_from"`
	BaseURL    string `mapstructure:"twilio_base_url"`
}

func (w WhatsApp) Configured() bool {
	return w.AccountSID != "" && w.AuthToken != ""
}

type OverdueSweep struct {
	CronSchedule string `mapstructure:"overdue_sweep_cron"`
	Enabled      bool   `mapstructure:"overdue_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/verity?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LLM_PROVIDERS", "openai")
	viper.SetDefault("LLM_MODEL", "gpt-4o")
	viper.SetDefault("LLM_TEMPERATURE", 0.2)
	viper.SetDefault("LLM_TIMEOUT", "30s")

	viper.SetDefault("TWILIO_WHATSAPP_FROM", "whatsapp:+14155238886")
	viper.SetDefault("TWILIO_BASE_URL", "https://api.twilio.com/2010-04-01")

	viper.SetDefault("OVERDUE_SWEEP_CRON", "0 2 * * *") // every day at 02:00
	viper.SetDefault("OVERDUE_SWEEP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Gateway, err = buildGateway(config.LLM, viper.GetString)
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not resolve the working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("No .env file found in the known locations")
}

// normalizeKinds trims, lower-cases and de-duplicates the provider list keeping its order.
func normalizeKinds(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	kinds := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			kind := strings.ToLower(strings.TrimSpace(part))
			if kind == "" {
				continue
			}
			if _, ok := seen[kind]; ok {
				continue
			}
			seen[kind] = struct{}{}
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
