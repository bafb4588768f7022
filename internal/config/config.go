// Package config loads the configuration of the geogrid command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"deedles.dev/telluris/geo"
	"github.com/spf13/viper"
)

// Config holds the configuration of the geogrid command.
type Config struct {
	Grid   GridConfig   `mapstructure:"grid"`
	Bounds BoundsConfig `mapstructure:"bounds"`
	Log    LogConfig    `mapstructure:"log"`
}

// GridConfig is the number of samples along each axis.
type GridConfig struct {
	Columns int `mapstructure:"columns"`
	Rows    int `mapstructure:"rows"`
}

// BoundsConfig is the sampled volume, in degrees and meters.
type BoundsConfig struct {
	South float64 `mapstructure:"south"`
	West  float64 `mapstructure:"west"`
	North float64 `mapstructure:"north"`
	East  float64 `mapstructure:"east"`
	Floor float64 `mapstructure:"floor"`
	Top   float64 `mapstructure:"top"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EnvPrefix prefixes the environment variables that override
// configuration keys, so that GEOGRID_GRID_COLUMNS sets grid.columns.
const EnvPrefix = "GEOGRID"

// Load reads the configuration from the defaults, an optional
// geogrid.yaml file in the working directory or ./configs, and the
// environment, in increasing order of precedence. If path is not
// empty, it names the configuration file to use instead and must
// exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("grid.columns", 5)
	v.SetDefault("grid.rows", 5)
	v.SetDefault("bounds.south", geo.MinLat)
	v.SetDefault("bounds.west", geo.MinLon)
	v.SetDefault("bounds.north", geo.MaxLat)
	v.SetDefault("bounds.east", geo.MaxLon)
	v.SetDefault("bounds.floor", 0.0)
	v.SetDefault("bounds.top", 0.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	} else {
		v.SetConfigName("geogrid")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration describes a valid grid over
// valid bounds.
func (c *Config) Validate() error {
	var errs []string

	if c.Grid.Columns < 2 {
		errs = append(errs, fmt.Sprintf("grid.columns must be at least 2, got %d", c.Grid.Columns))
	}
	if c.Grid.Rows < 2 {
		errs = append(errs, fmt.Sprintf("grid.rows must be at least 2, got %d", c.Grid.Rows))
	}

	b := c.Bounds
	check := func(name string, v, lo, hi float64) {
		if !(v >= lo && v <= hi) {
			errs = append(errs, fmt.Sprintf("bounds.%s must be in [%v, %v], got %v", name, lo, hi, v))
		}
	}
	check("south", b.South, geo.MinLat, geo.MaxLat)
	check("north", b.North, geo.MinLat, geo.MaxLat)
	check("west", b.West, geo.MinLon, geo.MaxLon)
	check("east", b.East, geo.MinLon, geo.MaxLon)
	check("floor", b.Floor, geo.MinElevation, geo.MaxElevation)
	check("top", b.Top, geo.MinElevation, geo.MaxElevation)

	if b.South > b.North {
		errs = append(errs, fmt.Sprintf("bounds.south %v is north of bounds.north %v", b.South, b.North))
	}
	if b.West > b.East {
		errs = append(errs, fmt.Sprintf("bounds.west %v is east of bounds.east %v", b.West, b.East))
	}
	if b.Floor > b.Top {
		errs = append(errs, fmt.Sprintf("bounds.floor %v is above bounds.top %v", b.Floor, b.Top))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// GeoBounds returns the configured bounds. It must only be called on
// a validated configuration.
func (c *Config) GeoBounds() geo.Bounds {
	b := c.Bounds
	return geo.NewBounds(
		geo.New(b.South, b.West, b.Floor),
		geo.New(b.North, b.East, b.Top),
	)
}
