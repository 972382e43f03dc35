package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DefaultFBRBaseURL = "https://gw.fbr.gov.pk/di_data/v1/di"
)

// Config groups every setting the API reads at startup.
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	DB    DBConfig
	JWT   JWTConfig
	Log   LogConfig
	FBR   FBRConfig
	Admin AdminConfig
}

type AppConfig struct {
	Env  string
	Name string
}

func (c AppConfig) IsProduction() bool {
	return c.Env == EnvProduction
}

type HTTPConfig struct {
	Port           int
	AllowedOrigins []string
}

func (c HTTPConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DBConfig holds the relational store settings. DatabaseURL wins over the discrete fields.
type DBConfig struct {
	Driver      string
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
}

// DSN returns the connection string for the configured driver.
func (c DBConfig) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.Driver == DriverSQLite {
		return "file:" + c.Name + "?cache=shared"
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// FBRConfig points the gateway client at the sandbox and production bases.
type FBRConfig struct {
	SandboxBaseURL    string
	ProductionBaseURL string
}

// AdminConfig seeds the first administrator at startup. Seeding is skipped when Email is empty.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

// Load reads configs/.env or .env when present, then environment variables through viper.
func Load() (*Config, error) {
	for _, path := range []string{"configs/.env", ".env"} {
		if err := godotenv.Load(path); err == nil {
			break
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:  strings.ToLower(v.GetString("APP_ENV")),
			Name: v.GetString("APP_NAME"),
		},
		HTTP: HTTPConfig{
			Port:           v.GetInt("PORT"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			Secret:    v.GetString("JWT_SECRET"),
			ExpiresIn: v.GetDuration("JWT_EXPIRES_IN"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		FBR: FBRConfig{
			SandboxBaseURL:    strings.TrimRight(v.GetString("FBR_SANDBOX_BASE_URL"), "/"),
			ProductionBaseURL: strings.TrimRight(v.GetString("FBR_BASE_URL"), "/"),
		},
		Admin: AdminConfig{
			Email:    strings.ToLower(strings.TrimSpace(v.GetString("ADMIN_EMAIL"))),
			Password: v.GetString("ADMIN_PASSWORD"),
			Name:     v.GetString("ADMIN_NAME"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("APP_NAME", "fbr-invoice-backend")
	v.SetDefault("PORT", 5000)
	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "fbr_invoice")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_EXPIRES_IN", "24h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("FBR_BASE_URL", DefaultFBRBaseURL)
	v.SetDefault("FBR_SANDBOX_BASE_URL", DefaultFBRBaseURL)
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_NAME", "Administrator")
}

func (c *Config) validate() error {
	switch c.App.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("invalid APP_ENV %q: must be development or production", c.App.Env)
	}
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("invalid DB_DRIVER %q: must be postgres or sqlite", c.DB.Driver)
	}
	if c.JWT.ExpiresIn <= 0 {
		return errors.New("JWT_EXPIRES_IN must be a positive duration")
	}
	if c.JWT.Secret == "" {
		if c.App.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
		c.JWT.Secret = "dev_only_jwt_secret"
	}
	if c.Admin.Email != "" && c.Admin.Password == "" {
		return errors.New("ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
