// SPDX-License-Identifier: EPL-2.0

// Package config loads noteshift settings from embedded defaults, an
// optional YAML file, NOTESHIFT_* environment variables and command line
// flags, in increasing order of precedence.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ik5/noteshift/audio"
	"github.com/ik5/noteshift/internal/logger"
)

//go:embed default.yaml
var defaultYAML []byte

// EnvPrefix is prepended to every environment override, e.g.
// NOTESHIFT_CONVERT_MAX_SAMPLES.
const EnvPrefix = "noteshift"

// ConvertConfig tunes the batch converter.
type ConvertConfig struct {
	ChunkFrames int   `mapstructure:"chunk_frames"`
	MaxSamples  int64 `mapstructure:"max_samples"`
	Mono        bool  `mapstructure:"mono"`
}

// EncoderConfig describes the external Ogg Vorbis encoder.
type EncoderConfig struct {
	Binary  string `mapstructure:"binary"`
	Codec   string `mapstructure:"codec"`
	Quality int    `mapstructure:"quality"`
}

// PreviewConfig is the fixed format of the playback device.
type PreviewConfig struct {
	SampleRate int `mapstructure:"sample_rate"`
	Channels   int `mapstructure:"channels"`
}

// Config represents the whole noteshift configuration.
type Config struct {
	InputDir  string        `mapstructure:"input_dir"`
	OutputDir string        `mapstructure:"output_dir"`
	Cents     int           `mapstructure:"cents"`
	ApplyAll  bool          `mapstructure:"apply_all"`
	Selected  string        `mapstructure:"selected"`
	Convert   ConvertConfig `mapstructure:"convert"`
	Encoder   EncoderConfig `mapstructure:"encoder"`
	Preview   PreviewConfig `mapstructure:"preview"`
	Log       logger.Config `mapstructure:"log"`
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"input":     "input_dir",
	"output":    "output_dir",
	"cents":     "cents",
	"all":       "apply_all",
	"file":      "selected",
	"mono":      "convert.mono",
	"encoder":   "encoder.binary",
	"log-level": "log.level",
}

// Load reads the configuration. path names an explicit config file; when it
// is empty a noteshift.yaml in the working directory is used if present.
// flags may be nil; only flags listed in flagKeys are bound.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(defaultYAML)); err != nil {
		return Config{}, fmt.Errorf("load embedded config: %w", err)
	}

	v.SetDefault("convert.chunk_frames", 32768)
	v.SetDefault("convert.max_samples", int64(100_000_000))
	v.SetDefault("encoder.binary", "ffmpeg")
	v.SetDefault("encoder.codec", "libvorbis")
	v.SetDefault("encoder.quality", 10)
	v.SetDefault("preview.sample_rate", 44100)
	v.SetDefault("preview.channels", 2)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path = strings.TrimSpace(path)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("noteshift")
		v.AddConfigPath(".")
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err := bindFlags(v, flags); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}

	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}

// normalize clamps cents and rejects values the converter cannot work with.
func (c *Config) normalize() error {
	c.Cents = audio.ClampCents(c.Cents)
	c.InputDir = strings.TrimSpace(c.InputDir)
	c.OutputDir = strings.TrimSpace(c.OutputDir)

	if c.Convert.ChunkFrames <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChunkFrames, c.Convert.ChunkFrames)
	}
	if c.Convert.MaxSamples <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxSamples, c.Convert.MaxSamples)
	}
	if c.Encoder.Quality < 0 || c.Encoder.Quality > 10 {
		return fmt.Errorf("%w: %d", ErrInvalidQuality, c.Encoder.Quality)
	}
	if c.Preview.SampleRate <= 0 || c.Preview.Channels <= 0 {
		return fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidDevice, c.Preview.SampleRate, c.Preview.Channels)
	}

	return nil
}
