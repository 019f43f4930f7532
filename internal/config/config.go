package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env string `env:"ENV" env-default:"local" envconfig:"ENV"`

	API      APIConfig
	Database DatabaseConfig
	Refresh  RefreshConfig
	Transfer TransferConfig
}

type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL" env-required:"true" envconfig:"API_BASE_URL"`
	Token   string        `env:"API_TOKEN" envconfig:"API_TOKEN"`
	Timeout time.Duration `env:"API_TIMEOUT" env-default:"15s" envconfig:"API_TIMEOUT"`
}

type DatabaseConfig struct {
	// Optional. When empty the selected-wallet store runs in memory and
	// the selection does not survive restarts.
	URL string `env:"DATABASE_URL" envconfig:"DATABASE_URL"`
}

type RefreshConfig struct {
	Interval time.Duration `env:"REFRESH_INTERVAL" env-default:"5m" envconfig:"REFRESH_INTERVAL"`
}

type TransferConfig struct {
	MinimumAmount int64 `env:"TRANSFER_MINIMUM_AMOUNT" env-default:"1000" envconfig:"TRANSFER_MINIMUM_AMOUNT"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}
	return &cfg
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}

var ErrFileFormat = errors.New("incorrect file format")

// LoadEnv populates the process environment from the .env file named by
// the -config flag or CONFIG_PATH. Variables already set win over the
// file.
func LoadEnv() error {
	filePath := fetchConfigPath()

	if filepath.Ext(filePath) != ".env" {
		return ErrFileFormat
	}
	return godotenv.Load(filePath)
}
