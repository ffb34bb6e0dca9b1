package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	JWT JWTConfig `mapstructure:"jwt"`
	S3  struct {
		Region       string `mapstructure:"region"`
		BaseEndpoint string `mapstructure:"base_endpoint"`
		Bucket       string `mapstructure:"bucket"`
		AccessKey    string `mapstructure:"access_key"`
		SecretKey    string `mapstructure:"secret_key"`
	} `mapstructure:"s3"`
}

// JWTConfig carries the token secrets and lifetimes. It is passed explicitly to
// the components that need it instead of being read from package state, so they
// stay testable with injected values.
type JWTConfig struct {
	AccessSecret  string        `mapstructure:"access_secret"`
	RefreshSecret string        `mapstructure:"refresh_secret"`
	AccessTTL     time.Duration `mapstructure:"access_ttl"`
	RefreshTTL    time.Duration `mapstructure:"refresh_ttl"`
}

// LoadConfig reads config.yml from the given path. Missing token secrets or
// non-positive lifetimes leave the process unable to issue or verify sessions,
// so they are startup errors rather than per-request ones.
func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := cfg.JWT.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c JWTConfig) validate() error {
	if c.AccessSecret == "" || c.RefreshSecret == "" {
		return fmt.Errorf("jwt access_secret and refresh_secret are required")
	}
	if c.AccessSecret == c.RefreshSecret {
		return fmt.Errorf("jwt access_secret and refresh_secret must differ")
	}
	if c.AccessTTL <= 0 || c.RefreshTTL <= 0 {
		return fmt.Errorf("jwt access_ttl and refresh_ttl must be positive")
	}
	return nil
}
