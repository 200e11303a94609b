// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ik5/noteshift/audio"
	"github.com/ik5/noteshift/formats/vorbis"
	"github.com/ik5/noteshift/formats/wav"
)

// OutputSubdir is created inside the output directory to hold results.
const OutputSubdir = "pitch_shifted"

// Job is one batch request.
type Job struct {
	// Inputs are converted in order.
	Inputs    []string
	OutputDir string
	Cents     int
	// Mono averages all channels before writing.
	Mono bool
}

// Result describes what happened to one input.
type Result struct {
	Input string
	// Output is the Ogg file, set only when encoding succeeded.
	Output string
	// Intermediate is the WAV file. It is removed after a successful encode
	// and kept otherwise.
	Intermediate string
	Samples      int64
	Truncated    bool
	Encoded      bool
	// Warning is set when the WAV was written but could not be encoded.
	Warning error
	Err     error
}

// Converter pitch shifts files and writes them as Ogg Vorbis.
type Converter struct {
	fs          afero.Fs
	registry    *audio.Registry
	encoder     Encoder
	log         *zap.Logger
	chunkFrames int
	maxSamples  int64
}

// DefaultRegistry knows the formats a batch can read.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("ogg", vorbis.Decoder{})
	r.Register("wav", wav.Decoder{})

	return r
}

func New(opts ...Option) *Converter {
	c := &Converter{
		fs:          afero.NewOsFs(),
		registry:    DefaultRegistry(),
		encoder:     DefaultFFmpeg(),
		log:         zap.NewNop(),
		chunkFrames: DefaultChunkFrames,
		maxSamples:  DefaultMaxSamples,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Rate is the playback rate a batch uses for cents.
func Rate(cents int) float64 {
	return audio.ClampRate(audio.CentsToRate(audio.ClampCents(cents)))
}

// Run converts every input of job into <OutputDir>/pitch_shifted.
//
// Files are processed one after another. A failure in one file does not stop
// the others; all failures are combined into the returned error, and the
// results describe every file that was attempted. ctx is checked before each
// file, so cancelling never leaves a file half written.
func (c *Converter) Run(ctx context.Context, job Job) ([]Result, error) {
	if len(job.Inputs) == 0 {
		return nil, ErrNoInputs
	}

	ok, err := afero.DirExists(c.fs, job.OutputDir)
	if err != nil || !ok {
		return nil, fmt.Errorf("%w: %q", ErrOutputDirMissing, job.OutputDir)
	}

	dir := filepath.Join(job.OutputDir, OutputSubdir)
	if err := c.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	rate := Rate(job.Cents)
	c.log.Info("batch started",
		zap.Int("files", len(job.Inputs)),
		zap.Int("cents", audio.ClampCents(job.Cents)),
		zap.Float64("rate", rate),
		zap.String("dir", dir),
	)

	results := make([]Result, 0, len(job.Inputs))
	var errs error

	for _, input := range job.Inputs {
		if err := ctx.Err(); err != nil {
			c.log.Warn("batch cancelled", zap.String("next", input), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("batch stopped before %s: %w", input, err))
			break
		}

		res := c.ConvertFile(ctx, input, dir, rate, job.Mono)
		results = append(results, res)

		if res.Err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", input, res.Err))
		}
	}

	c.log.Info("batch finished",
		zap.Int("attempted", len(results)),
		zap.Int("failed", len(multierr.Errors(errs))),
	)

	return results, errs
}

// ConvertFile shifts one input by rate and writes <dir>/<base>.wav, then
// encodes it to <dir>/<base>.ogg. Problems are reported in the Result.
func (c *Converter) ConvertFile(ctx context.Context, input, dir string, rate float64, mono bool) Result {
	res := Result{Input: input}
	log := c.log.With(zap.String("file", input))

	ext := filepath.Ext(input)
	dec, ok := c.registry.Get(ext)
	if !ok {
		res.Err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
		log.Warn("skipping file", zap.Error(res.Err))
		return res
	}

	src, err := c.open(input, dec, rate, mono)
	if err != nil {
		res.Err = err
		log.Error("cannot read input", zap.Error(err))
		return res
	}
	defer src.Close()

	base := strings.TrimSuffix(filepath.Base(input), ext)
	wavPath := filepath.Join(dir, base+".wav")
	oggPath := filepath.Join(dir, base+".ogg")
	res.Intermediate = wavPath

	samples, truncated, err := c.writeWAV(wavPath, src)
	res.Samples = samples
	res.Truncated = truncated
	if err != nil {
		res.Err = err
		log.Error("writing wav failed", zap.String("wav", wavPath), zap.Error(err))
		return res
	}

	if truncated {
		log.Warn("output truncated at sample cap",
			zap.Int64("samples", samples),
			zap.Int64("max_samples", c.maxSamples),
		)
	}

	if err := c.encoder.Encode(ctx, wavPath, oggPath); err != nil {
		res.Warning = fmt.Errorf("%w: %w", ErrEncodeFailed, err)
		log.Warn("encoder failed, keeping wav", zap.String("wav", wavPath), zap.Error(err))
		return res
	}

	res.Encoded = true
	res.Output = oggPath

	if err := c.fs.Remove(wavPath); err != nil && !os.IsNotExist(err) {
		log.Warn("cannot remove intermediate wav", zap.String("wav", wavPath), zap.Error(err))
	}

	log.Info("converted", zap.String("output", oggPath), zap.Int64("samples", samples))
	return res
}

// open decodes input fully into memory and returns the pitched stream.
func (c *Converter) open(input string, dec audio.Decoder, rate float64, mono bool) (audio.Source, error) {
	f, err := c.fs.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	decoded, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	mem, err := audio.Buffer(decoded)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	v, err := audio.NewVarispeed(mem, rate)
	if err != nil {
		return nil, err
	}

	if mono {
		return audio.NewDownmix(v), nil
	}
	return v, nil
}

func (c *Converter) writeWAV(path string, src audio.Source) (n int64, truncated bool, err error) {
	f, err := c.fs.Create(path)
	if err != nil {
		return 0, false, fmt.Errorf("create: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	w, err := wav.NewWriter(f, src.SampleRate(), src.Channels())
	if err != nil {
		return 0, false, err
	}

	n, truncated, err = wav.WriteFrom(w, src, c.chunkFrames*src.Channels(), c.maxSamples)
	err = multierr.Append(err, w.Close())

	return n, truncated, err
}
