package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game holds the defaults used when a client starts a round without choosing.
type Game struct {
	Mode      string        `yaml:"mode" env:"GAME_MODE" env-default:"cpu"`
	HumanMark string        `yaml:"human-mark" env:"GAME_HUMAN_MARK" env-default:"X"`
	CPUStarts bool          `yaml:"cpu-starts" env:"GAME_CPU_STARTS" env-default:"false"`
	CPUDelay  time.Duration `yaml:"cpu-delay" env:"GAME_CPU_DELAY" env-default:"320ms"`

	// SearchOpening disables the centre shortcut on an empty board.
	SearchOpening bool `yaml:"search-opening" env:"GAME_SEARCH_OPENING" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the yaml file at path, applies env overrides and defaults, and
// rejects values the application cannot use.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
