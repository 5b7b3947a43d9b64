package cli

import (
	"github.com/BurntSushi/toml"
)

// Config is the optional on-disk CLI configuration, loaded from a TOML
// file named by --config. It only covers output formatting today; absent
// a --config flag, the zero value (text output) applies.
type Config struct {
	OutputFormat string `toml:"output_format"` // "text" or "json"
}

var cfg Config

var configPath string

func loadConfig() error {
	if configPath == "" {
		return nil
	}
	_, err := toml.DecodeFile(configPath, &cfg)
	return err
}
