package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Log struct {
		Level  string `mapstructure:"level"`  // logrus level name
		Format string `mapstructure:"format"` // "text" or "json"
	} `mapstructure:"log"`

	Recommender struct {
		DefaultEvent string `mapstructure:"default_event"`
		Seed         int64  `mapstructure:"seed"`      // 0 seeds from the clock
		MaxCount     int    `mapstructure:"max_count"` // cap for multi-outfit requests
	} `mapstructure:"recommender"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("recommender.default_event", "Casual")
	v.SetDefault("recommender.seed", 0)
	v.SetDefault("recommender.max_count", 10)
}

// LoadConfig reads config.yaml from the given directories (the working
// directory when none are given) and applies OUTFITTER_* environment overrides.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// recommender.default_event -> OUTFITTER_RECOMMENDER_DEFAULT_EVENT
	v.SetEnvPrefix("OUTFITTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env vars still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &config, nil
}
