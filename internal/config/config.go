// Package config manages the host configuration for osintkit.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/BurntSushi/toml"
)

// KitConfigName is the name of the config file looked up in the working
// directory when no override path is given.
const KitConfigName = "osintkit.toml"

type Config struct {
	Verbosity       string   `toml:"verbosity"`
	DisabledPlugins []string `toml:"disabled-plugins"`

	// The path to the config file that this config was loaded from,
	// set after having successfully parsed the file
	LoadPath string `toml:"-"`
}

// IsPluginDisabled reports whether the plugin with the given name should be
// skipped at registration time.
func (c Config) IsPluginDisabled(name string) bool {
	return slices.Contains(c.DisabledPlugins, name)
}

// Load reads the config file at the given path, which must exist.
func Load(path string) (Config, error) {
	var config Config

	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return Config{}, err
	}

	if unknown := meta.Undecoded(); len(unknown) > 0 {
		return Config{}, fmt.Errorf("unknown keys in config file: %v", unknown)
	}

	config.LoadPath = path

	return config, nil
}

// LoadDefault reads KitConfigName from the working directory if it exists.
// A missing file is not an error and yields the zero config.
func LoadDefault() (Config, error) {
	config, err := Load(KitConfigName)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}

	return config, err
}
