//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config loads modal settings from a YAML file, MODAL_* environment
// variables and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	gott "github.com/timburks/modal/pkg/types"
)

type Config struct {
	Backend    string           `mapstructure:"backend"`
	Variant    string           `mapstructure:"variant"`
	StatusLine StatusLineConfig `mapstructure:"statusline"`
	Log        LogConfig        `mapstructure:"log"`
	Script     ScriptConfig     `mapstructure:"script"`
}

type StatusLineConfig struct {
	Label string `mapstructure:"label"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
}

// ScriptConfig sizes the in-memory screen used by --eval.
type ScriptConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"backend":   "backend",
	"variant":   "variant",
	"label":     "statusline.label",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// Load reads the configuration. An empty path searches $HOME/.config/modal
// and the working directory for config.yaml; a missing file there is not an
// error. Changed flags in flags, which may be nil, override everything else.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetEnvPrefix("MODAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/modal")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("backend", "tcell")
	v.SetDefault("variant", "statusline")
	v.SetDefault("statusline.label", "[scratch]")
	v.SetDefault("log.file", defaultLogFile())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("script.width", 80)
	v.SetDefault("script.height", 24)
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".modallog")
}

// Validate rejects settings modal cannot run with.
func (c *Config) Validate() error {
	switch c.Backend {
	case "tcell", "termbox":
	default:
		return fmt.Errorf("backend must be tcell or termbox, got %q", c.Backend)
	}
	if _, err := gott.ParseVariant(c.Variant); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	if c.Log.MaxSize <= 0 {
		return fmt.Errorf("log.max_size must be positive, got %d", c.Log.MaxSize)
	}
	if c.Script.Width <= 0 || c.Script.Height <= 0 {
		return fmt.Errorf("script size must be positive, got %dx%d", c.Script.Width, c.Script.Height)
	}
	return nil
}

// VariantValue returns the configured variant.
func (c *Config) VariantValue() gott.Variant {
	variant, _ := gott.ParseVariant(c.Variant)
	return variant
}
