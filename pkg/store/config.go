package store

import (
	"errors"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/daily/pkg/locale"
)

// Config describes where and how daily keeps its state.
type Config interface {
	BasePath() string
	Locale() string
	Verbosity() int
}

// LoadConfig reads .daily.yaml from $DAILY_CONFIG_PATH or the working
// directory, with DAILY_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.daily.db")
	v.SetDefault("locale", locale.Default)
	v.SetDefault("verbosity", 0)
	v.SetConfigName(".daily") // .yaml is implicit
	v.SetEnvPrefix("DAILY")
	v.AutomaticEnv()

	if override := os.Getenv("DAILY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:  path,
		Lang:  v.GetString("locale"),
		Level: v.GetInt("verbosity"),
	}, nil
}

// StaticConfig is a Config with fixed values.
func StaticConfig(path, lang string, verbosity int) Config {
	return &fileConfig{Path: path, Lang: lang, Level: verbosity}
}

type fileConfig struct {
	Path  string `json:"path"`
	Lang  string `json:"locale"`
	Level int    `json:"verbosity"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Locale() string {
	return f.Lang
}

func (f *fileConfig) Verbosity() int {
	return f.Level
}
