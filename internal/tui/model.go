// SPDX-License-Identifier: EPL-2.0

// Package tui is the terminal control surface of noteshift: pick a file,
// dial in a pitch, listen, and convert.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/multierr"

	"github.com/ik5/noteshift/audio"
	"github.com/ik5/noteshift/convert"
)

// Previewer plays the selected file.
type Previewer interface {
	Load(path string) error
	Play(cents int) error
	SetCents(cents int) error
	Stop() error
}

// Batch runs a conversion job.
type Batch interface {
	Run(ctx context.Context, job convert.Job) ([]convert.Result, error)
}

// ConvertDoneMsg carries the outcome of a batch back to the model.
type ConvertDoneMsg struct {
	Results []convert.Result
	Err     error
}

// Model represents the TUI state
type Model struct {
	ctx context.Context

	// Files
	files    []string
	selected int

	// Pitch
	pitch    *audio.PitchControl
	editing  bool
	input    string
	applyAll bool
	mono     bool

	// Playback
	previewer Previewer
	loaded    string
	playing   bool

	// Conversion
	batch      Batch
	outputDir  string
	converting bool

	status string

	width  int
	height int
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case ConvertDoneMsg:
		m.converting = false
		m.status = summarize(msg)
	}

	return m, nil
}

// handleKey handles keyboard input outside the cents entry
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "q" || key == "ctrl+c" {
		m.stop()
		return m, tea.Quit
	}

	// locked while a batch is running
	if m.converting {
		return m, nil
	}

	switch key {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.files)-1 {
			m.selected++
		}
	case "left":
		m.retune(m.pitch.Add(-100))
	case "right":
		m.retune(m.pitch.Add(100))
	case "shift+left":
		m.retune(m.pitch.Add(-10))
	case "shift+right":
		m.retune(m.pitch.Add(10))
	case "0":
		m.retune(m.pitch.Set(0))
	case "e":
		m.editing = true
		m.input = ""
	case "a":
		m.applyAll = !m.applyAll
	case "m":
		m.mono = !m.mono
	case "p", " ":
		m.play()
	case "s":
		if m.stop() == nil {
			m.status = "Stopped"
		}
	case "enter", "c":
		return m.startConvert()
	}

	return m, nil
}

// handleEditKey edits the typed cents value
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		cents, err := m.pitch.SetText(m.input)
		if err != nil {
			m.status = fmt.Sprintf("Not a number: %q, keeping %d cents", m.input, cents)
		} else {
			m.status = fmt.Sprintf("Pitch set to %d cents", cents)
			m.retune(cents)
		}
		m.input = ""
	case tea.KeyEsc:
		m.editing = false
		m.input = ""
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyCtrlC:
		m.stop()
		return m, tea.Quit
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}

	return m, nil
}

func (m *Model) current() string {
	if m.selected < 0 || m.selected >= len(m.files) {
		return ""
	}
	return m.files[m.selected]
}

func (m *Model) play() {
	if m.previewer == nil {
		m.status = "Preview unavailable: no audio device"
		return
	}

	path := m.current()
	if path == "" {
		m.status = "No file selected"
		return
	}

	if path != m.loaded {
		if err := m.previewer.Load(path); err != nil {
			m.status = fmt.Sprintf("Cannot load %s: %v", filepath.Base(path), err)
			m.loaded = ""
			return
		}
		m.loaded = path
	}

	if err := m.previewer.Play(m.pitch.Cents()); err != nil {
		m.status = fmt.Sprintf("Cannot play: %v", err)
		return
	}

	m.playing = true
	m.status = fmt.Sprintf("Playing %s at %d cents", filepath.Base(path), m.pitch.Cents())
}

// retune follows a pitch change while a preview is running.
func (m *Model) retune(cents int) {
	if m.previewer == nil || !m.playing {
		return
	}

	if err := m.previewer.SetCents(cents); err != nil {
		m.status = fmt.Sprintf("Cannot change pitch: %v", err)
	}
}

// stop ends a running preview. A failure is reported in the status line
// and returned; the preview counts as stopped either way.
func (m *Model) stop() error {
	if m.previewer == nil || !m.playing {
		return nil
	}

	m.playing = false
	if err := m.previewer.Stop(); err != nil {
		m.status = fmt.Sprintf("Cannot stop playback: %v", err)
		return err
	}
	return nil
}

func (m Model) startConvert() (tea.Model, tea.Cmd) {
	inputs := convert.Select(m.files, m.selected, m.applyAll)
	if len(inputs) == 0 {
		m.status = "Nothing to convert"
		return m, nil
	}
	if m.batch == nil {
		m.status = "Conversion unavailable"
		return m, nil
	}

	m.converting = true
	m.status = fmt.Sprintf("Converting %d file(s)...", len(inputs))
	if err := m.stop(); err != nil {
		m.status = fmt.Sprintf("Converting %d file(s), playback did not stop cleanly: %v", len(inputs), err)
	}

	job := convert.Job{
		Inputs:    inputs,
		OutputDir: m.outputDir,
		Cents:     m.pitch.Cents(),
		Mono:      m.mono,
	}
	batch, ctx := m.batch, m.ctx

	return m, func() tea.Msg {
		results, err := batch.Run(ctx, job)
		return ConvertDoneMsg{Results: results, Err: err}
	}
}

func summarize(msg ConvertDoneMsg) string {
	var encoded, kept int
	for _, r := range msg.Results {
		switch {
		case r.Encoded:
			encoded++
		case r.Err == nil && r.Warning != nil:
			kept++
		}
	}

	s := fmt.Sprintf("Converted %d of %d file(s)", encoded, len(msg.Results))
	if kept > 0 {
		s += fmt.Sprintf(", %d left as WAV (encoder failed)", kept)
	}
	if errs := multierr.Errors(msg.Err); len(errs) > 0 {
		s += fmt.Sprintf(", %d failed: %v", len(errs), firstLine(errs[0].Error()))
	}

	return s
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
