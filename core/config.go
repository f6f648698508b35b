package core

import (
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env      string // DEV (default), TEST, QA, PROD
		Debug    bool
		TestMode bool
		AppName  string
		Build    string

		Server   ServerConfig
		Store    StoreConfig
		Database DatabaseConfig
		Rollbar  RollbarConfig
	}

	ServerConfig struct {
		Host string
		Port string
	}

	// StoreConfig configures the remote record-storage API client.
	StoreConfig struct {
		BaseURL      string
		ProjectID    string
		PublicKey    string
		Timeout      time.Duration
		MaxRetries   int
		RetryBackoff time.Duration
		PageSize     int
	}

	DatabaseConfig struct {
		Engine     string
		Name       string
		User       string
		Password   string
		Host       string
		Port       string
		DisableTLS bool
	}

	RollbarConfig struct {
		Token string
	}
)

func (c ServerConfig) Addr() string   { return net.JoinHostPort(c.Host, c.Port) }
func (c DatabaseConfig) Addr() string { return net.JoinHostPort(c.Host, c.Port) }

// NewConfig loads configuration from defaults, an optional config/.env.<env>
// file and the environment (env vars win).
func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Shule")
	v.SetDefault("build", "dev")
	v.SetDefault("serverHost", "0.0.0.0")
	v.SetDefault("serverPort", "8000")
	v.SetDefault("storeBaseUrl", "http://localhost:7000")
	v.SetDefault("storeProjectId", "")
	v.SetDefault("storePublicKey", "")
	v.SetDefault("storeTimeout", 10*time.Second)
	v.SetDefault("storeMaxRetries", 2)
	v.SetDefault("storeRetryBackoff", 250*time.Millisecond)
	v.SetDefault("storePageSize", 100)
	v.SetDefault("dbEngine", "postgres")
	v.SetDefault("dbName", "shule")
	v.SetDefault("dbUser", "")
	v.SetDefault("dbPassword", "")
	v.SetDefault("dbHost", "localhost")
	v.SetDefault("dbPort", "5432")
	v.SetDefault("dbDisableTls", true)
	v.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := &Config{
		Env:      env,
		Debug:    v.GetBool("debug"),
		TestMode: env == "TEST",
		AppName:  v.GetString("appName"),
		Build:    v.GetString("build"),
		Server: ServerConfig{
			Host: v.GetString("serverHost"),
			Port: v.GetString("serverPort"),
		},
		Store: StoreConfig{
			BaseURL:      v.GetString("storeBaseUrl"),
			ProjectID:    v.GetString("storeProjectId"),
			PublicKey:    v.GetString("storePublicKey"),
			Timeout:      v.GetDuration("storeTimeout"),
			MaxRetries:   v.GetInt("storeMaxRetries"),
			RetryBackoff: v.GetDuration("storeRetryBackoff"),
			PageSize:     v.GetInt("storePageSize"),
		},
		Database: DatabaseConfig{
			Engine:     v.GetString("dbEngine"),
			Name:       v.GetString("dbName"),
			User:       v.GetString("dbUser"),
			Password:   v.GetString("dbPassword"),
			Host:       v.GetString("dbHost"),
			Port:       v.GetString("dbPort"),
			DisableTLS: v.GetBool("dbDisableTls"),
		},
		Rollbar: RollbarConfig{
			Token: v.GetString("rollbarToken"),
		},
	}
	return conf, nil
}
