// SPDX-License-Identifier: EPL-2.0

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ik5/noteshift/audio"
)

// Options wires the model to its collaborators.
type Options struct {
	Files     []string
	Selected  int
	Cents     int
	ApplyAll  bool
	Mono      bool
	OutputDir string
	Previewer Previewer
	Batch     Batch
}

// NewModel creates a new TUI model
func NewModel(ctx context.Context, opts Options) Model {
	selected := opts.Selected
	if selected < 0 || selected >= len(opts.Files) {
		selected = 0
	}

	return Model{
		ctx:       ctx,
		files:     opts.Files,
		selected:  selected,
		pitch:     audio.NewPitchControl(opts.Cents),
		applyAll:  opts.ApplyAll,
		mono:      opts.Mono,
		previewer: opts.Previewer,
		batch:     opts.Batch,
		outputDir: opts.OutputDir,
		status:    fmt.Sprintf("%d file(s)", len(opts.Files)),
	}
}

// Run shows the TUI until the user quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
