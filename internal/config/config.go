package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	Telegram struct {
		Token       string
		AdminChatID int64 `mapstructure:"admin_chat_id"`
	} `mapstructure:"telegram"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Inventory struct {
		// Stock bands that trigger an admin alert after a stock update.
		AlertOn []string `mapstructure:"alert_on"`
	} `mapstructure:"inventory"`
}

// Location resolves App.Timezone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

// Load reads the YAML file at path. Values from a .env file in the working
// directory and APP_* environment variables take precedence. A missing
// config file is not an error: defaults and the environment still apply.
func Load(path string) (Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "prod")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.admin_chat_id", 0)
	v.SetDefault("inventory.alert_on", []string{"critical", "low"})

	var c Config
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return c, fmt.Errorf("app.timezone: %w", err)
	}
	return c, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
