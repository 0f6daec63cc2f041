package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/dotcommander/floatscore/internal/cue"
	"github.com/dotcommander/floatscore/internal/format"
	"github.com/dotcommander/floatscore/internal/params"
)

// ConfigPaths are searched in order in the working directory.
var ConfigPaths = []string{".floatscorerc.json", ".floatscorerc.yaml", ".floatscorerc.yml"}

// Config represents the floatscore configuration
type Config struct {
	Format      string            `mapstructure:"format"`
	Output      string            `mapstructure:"output"`
	Decimals    int               `mapstructure:"decimals"`
	Quiet       bool              `mapstructure:"quiet"`
	Verbose     bool              `mapstructure:"verbose"`
	HistoryFile string            `mapstructure:"historyFile"`
	PrefsFile   string            `mapstructure:"prefsFile"`
	NoPrefs     bool              `mapstructure:"noPrefs"`
	Defaults    map[string]string `mapstructure:"defaults"`
}

// DefaultFormValues are the field values shown before anything is entered
// and restored by reset.
var DefaultFormValues = map[params.Field]string{
	params.Fee:         "0",
	params.PriceWeight: "0.7",
	params.FloatWeight: "0.3",
	params.Alpha:       "1",
	params.Cap:         "1",
	params.Rarity:      "1",
	params.Liquidity:   "1",
	params.Name:        params.DefaultName,
}

// LoadConfig loads configuration from defaults, the first config file found
// (or configFile when set), FLOATSCORE_* environment variables and bound flags.
func LoadConfig(configFile string) (*Config, error) {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".floatscore")

	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("decimals", format.Default)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("historyFile", filepath.Join(dataDir, "history.json"))
	viper.SetDefault("prefsFile", filepath.Join(dataDir, "prefs.yaml"))
	viper.SetDefault("noPrefs", false)
	for field, value := range DefaultFormValues {
		viper.SetDefault("defaults."+string(field), value)
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	} else {
		for _, path := range ConfigPaths {
			if _, err := os.Stat(path); err != nil {
				continue
			}
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", path, err)
			}
			break
		}
	}

	viper.SetEnvPrefix("FLOATSCORE")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig checks the configuration against the #Config schema, then
// checks that every form default names a real field.
func validateConfig(config *Config) error {
	v := cue.NewValidator()
	if err := v.LoadSchemas(); err != nil {
		return err
	}

	errs, err := v.ValidateConfig(config.toMap())
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}

	for key := range config.Defaults {
		if _, err := params.Lookup(key); err != nil {
			return fmt.Errorf("defaults: %w", err)
		}
	}

	return nil
}

func (c *Config) toMap() map[string]any {
	defaults := make(map[string]any, len(c.Defaults))
	for k, v := range c.Defaults {
		defaults[k] = v
	}
	return map[string]any{
		"format":      c.Format,
		"output":      c.Output,
		"decimals":    c.Decimals,
		"quiet":       c.Quiet,
		"verbose":     c.Verbose,
		"historyFile": c.HistoryFile,
		"prefsFile":   c.PrefsFile,
		"noPrefs":     c.NoPrefs,
		"defaults":    defaults,
	}
}

// FormDefaults resolves the configured defaults to form fields. Built-in
// values fill in any field the configuration leaves out.
func (c *Config) FormDefaults() params.Raw {
	raw := make(params.Raw, len(DefaultFormValues))
	for f, v := range DefaultFormValues {
		raw[f] = v
	}
	for key, v := range c.Defaults {
		f, err := params.Lookup(key)
		if err != nil {
			continue
		}
		raw[f] = v
	}
	return raw
}
