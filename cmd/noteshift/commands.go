// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ik5/noteshift/convert"
	"github.com/ik5/noteshift/internal/config"
	"github.com/ik5/noteshift/internal/logger"
	"github.com/ik5/noteshift/internal/tui"
	"github.com/ik5/noteshift/preview"
)

// newFlagSet holds the flags every command shares.
func newFlagSet(name string) (*pflag.FlagSet, *string) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	path := fs.String("config", "", "config file (default ./noteshift.yaml if present)")
	fs.String("log-level", "", "debug, info, warn or error")

	return fs, path
}

// setup parses args and builds the configuration and logger. A quiet
// setup logs to the rotating file only, leaving the terminal to the UI.
func setup(fs *pflag.FlagSet, path *string, args []string, quiet bool) (config.Config, *zap.Logger, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return config.Config{}, nil, err
		}
		return config.Config{}, nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	cfg, err := config.Load(*path, fs)
	if err != nil {
		return config.Config{}, nil, err
	}

	if quiet {
		cfg.Log.Stderr = false
		cfg.Log.File.Enabled = true
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("create logger: %w", err)
	}

	return cfg, log, nil
}

func listInputs(cfg config.Config) ([]string, error) {
	if cfg.InputDir == "" {
		return nil, fmt.Errorf("%w: --input is required", errUsage)
	}
	return convert.ListFiles(afero.NewOsFs(), cfg.InputDir, "ogg")
}

func newConverter(cfg config.Config, log *zap.Logger) *convert.Converter {
	return convert.New(
		convert.WithLogger(log),
		convert.WithEncoder(convert.FFmpeg{
			Binary:  cfg.Encoder.Binary,
			Codec:   cfg.Encoder.Codec,
			Quality: cfg.Encoder.Quality,
		}),
		convert.WithChunkFrames(cfg.Convert.ChunkFrames),
		convert.WithMaxSamples(cfg.Convert.MaxSamples),
	)
}

func runList(args []string, out io.Writer) error {
	fs, path := newFlagSet("list")
	fs.String("input", "", "directory holding .ogg files")

	cfg, log, err := setup(fs, path, args, false)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	files, err := listInputs(cfg)
	if err != nil {
		return err
	}

	for i, f := range files {
		fmt.Fprintf(out, "%3d  %s\n", i+1, filepath.Base(f))
	}
	log.Debug("listed inputs", zap.String("dir", cfg.InputDir), zap.Int("files", len(files)))

	return nil
}

func runConvert(ctx context.Context, args []string, out io.Writer) error {
	fs, path := newFlagSet("convert")
	fs.String("input", "", "directory holding .ogg files")
	fs.String("output", "", "directory that receives pitch_shifted/")
	fs.Int("cents", 0, "pitch offset in cents, -1200 to 1200")
	fs.Bool("all", false, "convert every file of the input directory")
	fs.String("file", "", "file to convert when --all is not set")
	fs.Bool("mono", false, "mix the result down to one channel")
	fs.String("encoder", "", "ffmpeg binary")

	cfg, log, err := setup(fs, path, args, false)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	files, err := listInputs(cfg)
	if err != nil {
		return err
	}

	if !cfg.ApplyAll && cfg.Selected == "" {
		return fmt.Errorf("%w: pass --file NAME or --all", errUsage)
	}

	inputs, err := convert.SelectByName(files, cfg.Selected, cfg.ApplyAll)
	if err != nil {
		return err
	}

	results, err := newConverter(cfg, log).Run(ctx, convert.Job{
		Inputs:    inputs,
		OutputDir: cfg.OutputDir,
		Cents:     cfg.Cents,
		Mono:      cfg.Convert.Mono,
	})

	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(out, "FAIL  %s: %v\n", filepath.Base(r.Input), r.Err)
		case r.Warning != nil:
			fmt.Fprintf(out, "WAV   %s -> %s (%v)\n", filepath.Base(r.Input), r.Intermediate, r.Warning)
		default:
			fmt.Fprintf(out, "OK    %s -> %s\n", filepath.Base(r.Input), r.Output)
		}
		if r.Truncated {
			fmt.Fprintf(out, "      truncated at %d samples\n", r.Samples)
		}
	}

	return err
}

func runPreview(ctx context.Context, args []string, out io.Writer) error {
	fs, path := newFlagSet("preview")
	fs.String("file", "", "file to play")
	fs.Int("cents", 0, "pitch offset in cents, -1200 to 1200")

	cfg, log, err := setup(fs, path, args, false)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	if cfg.Selected == "" {
		return fmt.Errorf("%w: --file is required", errUsage)
	}

	device, err := preview.NewOtoDevice(cfg.Preview.SampleRate, cfg.Preview.Channels)
	if err != nil {
		return err
	}

	player := preview.New(device, preview.WithLogger(log))
	defer player.Close()

	if err := player.Load(cfg.Selected); err != nil {
		return err
	}
	if err := player.Play(cfg.Cents); err != nil {
		return err
	}
	fmt.Fprintf(out, "playing %s at %d cents, ctrl+c to stop\n", filepath.Base(cfg.Selected), cfg.Cents)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for player.Playing() {
		select {
		case <-ctx.Done():
			return player.Stop()
		case <-ticker.C:
		}
	}

	return nil
}

func runUI(ctx context.Context, args []string) error {
	fs, path := newFlagSet("ui")
	fs.String("input", "", "directory holding .ogg files")
	fs.String("output", "", "directory that receives pitch_shifted/")
	fs.Int("cents", 0, "initial pitch offset in cents")
	fs.Bool("all", false, "start with apply to all enabled")
	fs.Bool("mono", false, "mix results down to one channel")

	cfg, log, err := setup(fs, path, args, true)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	files, err := listInputs(cfg)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Files:     files,
		Cents:     cfg.Cents,
		ApplyAll:  cfg.ApplyAll,
		Mono:      cfg.Convert.Mono,
		OutputDir: cfg.OutputDir,
		Batch:     newConverter(cfg, log),
	}

	// the UI still converts without an audio device
	device, err := preview.NewOtoDevice(cfg.Preview.SampleRate, cfg.Preview.Channels)
	if err != nil {
		log.Warn("preview disabled", zap.Error(err))
	} else {
		player := preview.New(device, preview.WithLogger(log))
		defer player.Close()
		opts.Previewer = player
	}

	return tui.Run(ctx, opts)
}
