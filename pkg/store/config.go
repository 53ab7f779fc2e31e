package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the store on disk.
type Config interface {
	BasePath() string
	LogLevel() string
}

// LoadConfig reads `.workout` (yaml) from $WORKOUT_CONFIG_PATH or the working
// directory. Every key can be overridden with a WORKOUT_ prefixed variable.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.workout.db")
	viper.SetDefault("log-level", "info")
	viper.SetConfigName(".workout") // .yaml is implicit
	viper.SetEnvPrefix("WORKOUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("WORKOUT_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path, Level: viper.GetString("log-level")}, nil
}

type fileConfig struct {
	Path  string `json:"path"`
	Level string `json:"logLevel"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path  string
	Level string
}

func (s StaticConfig) BasePath() string { return s.Path }
func (s StaticConfig) LogLevel() string { return s.Level }
