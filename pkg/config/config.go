package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/user"
	"path"

	"github.com/go-delve/m68kdis/pkg/logflags"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	configDir  string = ".m68kdis"
	configFile string = "config.yml"
)

// Defaults used for options missing from the configuration file.
const (
	DefaultCacheSize   = 4096
	DefaultHexGrouping = 2
)

// ColorMode selects when listings are colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config defines all configuration options available to be set through the config file.
type Config struct {
	// Command aliases.
	Aliases map[string][]string `yaml:"aliases"`

	// Origin is the address of the first byte of an image when no --origin
	// flag is given.
	Origin uint64 `yaml:"origin"`

	// MaxInstructions limits how many instructions dis prints when no
	// --count flag is given. 0 means the whole image.
	MaxInstructions int `yaml:"max-instructions"`

	// CacheSize is the number of decoded instructions kept for random access.
	CacheSize int `yaml:"cache-size,omitempty"`

	// Color is one of auto, always or never. auto colorizes when standard
	// output is a terminal.
	Color ColorMode `yaml:"color,omitempty"`

	// HexGrouping is the number of bytes printed together in the raw bytes
	// column of a listing.
	HexGrouping int `yaml:"hex-grouping,omitempty"`
}

// Validate reports the first invalid option.
func (c *Config) Validate() error {
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q, must be one of auto, always, never", c.Color)
	}
	if c.MaxInstructions < 0 {
		return fmt.Errorf("max-instructions must not be negative, got %d", c.MaxInstructions)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache-size must not be negative, got %d", c.CacheSize)
	}
	if c.HexGrouping < 0 {
		return fmt.Errorf("hex-grouping must not be negative, got %d", c.HexGrouping)
	}
	return nil
}

// fillDefaults sets unset options to their default values.
func (c *Config) fillDefaults() {
	if c.CacheSize == 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.HexGrouping == 0 {
		c.HexGrouping = DefaultHexGrouping
	}
}

// LoadConfig attempts to populate a Config object from the config.yml file.
// Any failure is logged and the defaults are returned.
func LoadConfig() *Config {
	logger := logflags.ConfigLogger()
	err := createConfigPath()
	if err != nil {
		logger.Errorf("Could not create config directory: %v.", err)
		return defaultConfig()
	}
	fullConfigFile, err := GetConfigFilePath(configFile)
	if err != nil {
		logger.Errorf("Unable to get config file path: %v.", err)
		return defaultConfig()
	}

	if _, err := os.Stat(fullConfigFile); os.IsNotExist(err) {
		logger.Debugf("creating default configuration at %s", fullConfigFile)
		if err := createDefaultConfig(fullConfigFile); err != nil {
			logger.Errorf("Error creating default config file: %v", err)
			return defaultConfig()
		}
	}

	c, err := LoadConfigFrom(fullConfigFile)
	if err != nil {
		logger.Errorf("%v.", err)
		return defaultConfig()
	}
	logger.Debugf("loaded %s", fullConfigFile)
	return c
}

// LoadConfigFrom reads and validates the configuration file at path.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config data from %s", path)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "unable to decode config file %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", path)
	}
	c.fillDefaults()
	return &c, nil
}

func defaultConfig() *Config {
	c := &Config{}
	c.fillDefaults()
	return c
}

// SaveConfig will marshal and save the config struct
// to disk.
func SaveConfig(conf *Config) error {
	fullConfigFile, err := GetConfigFilePath(configFile)
	if err != nil {
		return err
	}
	return SaveConfigTo(conf, fullConfigFile)
}

// SaveConfigTo marshals conf to the file at path.
func SaveConfigTo(conf *Config, path string) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	out, err := yaml.Marshal(*conf)
	if err != nil {
		return errors.Wrap(err, "unable to encode config")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create config file %s", path)
	}
	defer f.Close()

	_, err = f.Write(out)
	return errors.Wrapf(err, "unable to write config file %s", path)
}

func createDefaultConfig(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create config file")
	}
	defer f.Close()
	if err := writeDefaultConfig(f); err != nil {
		return errors.Wrap(err, "unable to write default configuration")
	}
	return nil
}

func writeDefaultConfig(f *os.File) error {
	_, err := f.WriteString(
		`# Configuration file for the m68kdis disassembler.

# This is the default configuration file. Available options are provided, but disabled.
# Delete the leading hash mark to enable an item.

# Provided aliases will be added to the default aliases for a given command.
aliases:
  # dis: ["d", "list"]

# Address of the first byte of an image, used when --origin is not given.
# origin: 0

# Maximum number of instructions printed by dis when --count is not given.
# 0 disassembles the whole image.
# max-instructions: 0

# Number of decoded instructions kept in memory for random access.
# cache-size: 4096

# Colorize listings: auto, always or never.
# color: auto

# Number of bytes printed together in the raw bytes column.
# hex-grouping: 2
`)
	return err
}

// createConfigPath creates the directory structure at which all config files are saved.
func createConfigPath() error {
	path, err := GetConfigFilePath("")
	if err != nil {
		return err
	}
	return os.MkdirAll(path, 0700)
}

// GetConfigFilePath gets the full path to the given config file name.
func GetConfigFilePath(file string) (string, error) {
	userHomeDir := "."
	usr, err := user.Current()
	if err == nil {
		userHomeDir = usr.HomeDir
	}
	return path.Join(userHomeDir, configDir, file), nil
}
