package main

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mecalloc/allocation"
	"github.com/katalvlaran/mecalloc/generator"
)

// Configuration keys. Flags, MECALLOC_* environment variables (dots become
// underscores) and the optional config file all feed the same keys.
const (
	keyLogLevel    = "log.level"
	keyStrategy    = "strategy"
	keyDelta       = "delta"
	keyMaxSwaps    = "max_swaps"
	keyGenVertices = "generate.vertices"
	keyGenDelta    = "generate.delta"
	keyGenSeed     = "generate.seed"
	keyGenMaxW     = "generate.max_weight"
)

// Config manages CLI configuration using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault(keyLogLevel, "info")

	v.SetDefault(keyStrategy, strategyLocal)
	v.SetDefault(keyDelta, allocation.DefaultDelta)
	v.SetDefault(keyMaxSwaps, 0)

	v.SetDefault(keyGenVertices, 20)
	v.SetDefault(keyGenDelta, allocation.DefaultDelta)
	v.SetDefault(keyGenSeed, 1)
	v.SetDefault(keyGenMaxW, generator.DefaultMaxWeight)

	v.SetEnvPrefix("MECALLOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// bind ties key to the flag named flag in fs.
func (c *Config) bind(fs *pflag.FlagSet, key, flag string) {
	// Lookup only fails for a misspelt flag name.
	if err := c.v.BindPFlag(key, fs.Lookup(flag)); err != nil {
		panic(err)
	}
}

func (c *Config) LogLevel() string { return c.v.GetString(keyLogLevel) }
func (c *Config) Strategy() string { return c.v.GetString(keyStrategy) }
func (c *Config) Delta() int { return c.v.GetInt(keyDelta) }
func (c *Config) MaxSwaps() int { return c.v.GetInt(keyMaxSwaps) }

func (c *Config) GenVertices() int { return c.v.GetInt(keyGenVertices) }
func (c *Config) GenDelta() int { return c.v.GetInt(keyGenDelta) }
func (c *Config) GenSeed() int64 { return c.v.GetInt64(keyGenSeed) }
func (c *Config) GenMaxWeight() float64 { return c.v.GetFloat64(keyGenMaxW) }

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a console zerolog logger writing to out.
func (c *Config) CreateLogger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Str("service", "mecalloc").Logger()
}
