package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk database.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store path from a .studysync config file or the
// STUDYSYNC_PATH environment variable, defaulting to ~/.studysync.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.studysync.db")
	viper.SetConfigName(".studysync") // .yaml is implicit
	viper.SetEnvPrefix("STUDYSYNC")
	viper.AutomaticEnv()

	if override := os.Getenv("STUDYSYNC_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
