package config

import (
	"os"

	"handeval/internal/util"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hand evaluation server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	// timeouts are in seconds
	ReadTimeout  int `yaml:"readTimeout" envconfig:"read_timeout"`
	WriteTimeout int `yaml:"writeTimeout" envconfig:"write_timeout"`
	// MaxHands is the most hands a single showdown request may contain
	MaxHands int `yaml:"maxHands" envconfig:"max_hands"`
	CORS     struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides it
func DefaultConfig() Config {
	c := Config{
		Addr:         ":5000",
		ReadTimeout:  5,
		WriteTimeout: 10,
		MaxHands:     23, // enough for every player dealt from one deck
	}

	c.CORS.AllowedOrigins = []string{"*"}
	c.Log.Level = "info"

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are layered: defaults, then the YAML file, then environment variables.
// A missing .env or config file is not an error.
func Load() error {
	if err := godotenv.Load(util.Getenv("HANDEVAL_ENV_FILE", ".env")); err != nil && !os.IsNotExist(err) {
		return err
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("HANDEVAL_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("handeval", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
