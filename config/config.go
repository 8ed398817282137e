package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Env              string
	Port             string
	DBURL            string
	JWTSecret        string
	AccessExpiryMin  int
	RefreshExpiryMin int
}

// Load reads an optional config.yaml and the environment (APP_ prefix, dots
// replaced by underscores, e.g. APP_JWT_SECRET). The signing key itself is
// length-checked by the token service at construction.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.env", "development")
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.url", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_expiry_min", 30)
	v.SetDefault("jwt.refresh_expiry_min", 10080)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		Env:              v.GetString("server.env"),
		Port:             v.GetString("server.port"),
		DBURL:            v.GetString("database.url"),
		JWTSecret:        v.GetString("jwt.secret"),
		AccessExpiryMin:  v.GetInt("jwt.access_expiry_min"),
		RefreshExpiryMin: v.GetInt("jwt.refresh_expiry_min"),
	}

	if cfg.DBURL == "" {
		return nil, fmt.Errorf("missing required config: database.url")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required config: jwt.secret")
	}
	if cfg.AccessExpiryMin <= 0 || cfg.RefreshExpiryMin <= 0 {
		return nil, fmt.Errorf("token expiry windows must be positive")
	}

	return cfg, nil
}
