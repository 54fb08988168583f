package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Mode selects where trip data lives.
type Mode string

const (
	// ModeLocal keeps everything on disk; no network is touched.
	ModeLocal Mode = "local"
	// ModeRemote treats the itinerary service as the source of truth.
	ModeRemote Mode = "remote"
)

// Config supplies the store and client settings.
type Config interface {
	BasePath() string
	Server() string
	Mode() Mode
}

// LoadConfig reads the .voyage config file (current directory or
// VOYAGE_CONFIG_PATH) with VOYAGE_* env overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.voyage.db")
	viper.SetDefault("server", "")
	viper.SetDefault("mode", string(ModeLocal))
	viper.SetConfigName(".voyage") // .yaml is implicit
	viper.SetEnvPrefix("VOYAGE")
	viper.AutomaticEnv()

	if override := os.Getenv("VOYAGE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	cfg := &fileConfig{
		Path:      path,
		ServerURL: viper.GetString("server"),
		RunMode:   Mode(viper.GetString("mode")),
	}
	if cfg.RunMode == "" {
		cfg.RunMode = ModeLocal
	}
	// A configured server implies remote mode unless mode was set explicitly.
	if cfg.RunMode == ModeLocal && cfg.ServerURL != "" && !viper.IsSet("mode") {
		cfg.RunMode = ModeRemote
	}
	return cfg, nil
}

type fileConfig struct {
	Path      string `json:"path"`
	ServerURL string `json:"server"`
	RunMode   Mode   `json:"mode"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Server() string {
	return f.ServerURL
}

func (f *fileConfig) Mode() Mode {
	return f.RunMode
}
