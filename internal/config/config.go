package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTP     HTTP    `yaml:"http"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
	SQLite   SQLite  `yaml:"sqlite"`
	Game     Game    `yaml:"game"`
}

type HTTP struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:""`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"9090"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB   int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type SQLite struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"hotseat.db"`
}

type Game struct {
	UndoAllowance   int           `yaml:"undo-allowance" env:"GAME_UNDO_ALLOWANCE" env-default:"3"`
	FinalizeTimeout time.Duration `yaml:"finalize-timeout" env:"GAME_FINALIZE_TIMEOUT" env-default:"5s"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.Storage.Driver != StorageRedis && config.Storage.Driver != StorageSQLite {
		return nil, fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}

func (that *HTTP) Addr() string {
	return net.JoinHostPort(that.Host, that.Port)
}
