// SPDX-License-Identifier: EPL-2.0

package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"info":    zapcore.InfoLevel,
		" DEBUG ": zapcore.DebugLevel,
		"warning": zapcore.WarnLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}

	for raw, want := range cases {
		assert.Equal(t, want, parseLevel(raw), "parseLevel(%q)", raw)
	}
}

func TestNew_JSONConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := newWithConsole(Config{Level: "info", Stderr: true}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("converted", zap.String("file", "bell.ogg"))
	require.NoError(t, log.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "converted", entry["msg"])
	assert.Equal(t, "bell.ogg", entry["file"])
	assert.Equal(t, "info", entry["level"])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}$`, entry["ts"])
}

func TestNew_ConsoleFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := newWithConsole(Config{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	log.Debug("seeking")
	require.NoError(t, log.Sync())

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "seeking")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNew_FileSink(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "logs")

	var console bytes.Buffer
	log, err := newWithConsole(Config{
		Level: "warn",
		File:  FileConfig{Enabled: true, Path: dir, Name: "test.log"},
	}, &console)
	require.NoError(t, err)

	log.Warn("encoder missing")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "encoder missing")

	// file only, console stays quiet
	assert.Empty(t, console.String())
}

func TestNewFileWriter_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	w, err := newFileWriter(FileConfig{Path: dir, MaxBackups: -1, MaxAgeDays: -3})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "noteshift.log"), w.Filename)
	assert.Equal(t, 20, w.MaxSize)
	assert.Zero(t, w.MaxBackups)
	assert.Zero(t, w.MaxAge)
}
