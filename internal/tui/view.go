// SPDX-License-Identifier: EPL-2.0

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ik5/noteshift/audio"
)

const boxWidth = 54

// View renders the TUI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString(m.renderFiles())
	b.WriteString(m.renderPitch())
	b.WriteString(m.renderStatus())
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	return "┌─ noteshift " + strings.Repeat("─", boxWidth-11) + "┐\n" +
		line(fmt.Sprintf("Output: %s", m.outputDir)) +
		"├" + strings.Repeat("─", boxWidth+1) + "┤\n"
}

// renderFiles lists the files around the selection
func (m Model) renderFiles() string {
	if len(m.files) == 0 {
		return line("No .ogg files found")
	}

	const visible = 8
	start := max(0, min(m.selected-visible/2, len(m.files)-visible))
	end := min(len(m.files), start+visible)

	var b strings.Builder
	for i := start; i < end; i++ {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := ""
		if m.applyAll || i == m.selected {
			mark = " *"
		}
		b.WriteString(line(cursor + truncate(filepath.Base(m.files[i]), boxWidth-6) + mark))
	}

	return b.String()
}

func (m Model) renderPitch() string {
	cents := m.pitch.Cents()
	value := fmt.Sprintf("%+d cents (x%.3f)", cents, audio.CentsToRate(cents))
	if m.editing {
		value = fmt.Sprintf("cents: %s_", m.input)
	}

	scope := "selected file"
	if m.applyAll {
		scope = "all files"
	}
	layout := "keep channels"
	if m.mono {
		layout = "mono"
	}

	return "├" + strings.Repeat("─", boxWidth+1) + "┤\n" +
		line("Pitch:  "+value) +
		line(fmt.Sprintf("Pitch:  [%s]", renderBar(cents-audio.MinCents, audio.MaxCents-audio.MinCents, 24))) +
		line("Apply:  "+scope+", "+layout)
}

func (m Model) renderStatus() string {
	status := m.status
	if m.converting {
		status = "Working... " + status
	}
	return line("") + line(truncate(status, boxWidth-1))
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return "├" + strings.Repeat("─", boxWidth+1) + "┤\n" +
		line("↑/↓:File  ←/→:±100  shift:±10  e:Type  0:Reset") +
		line("p:Play  s:Stop  a:All  m:Mono  enter:Convert  q:Quit") +
		"└" + strings.Repeat("─", boxWidth+1) + "┘\n"
}

func line(s string) string {
	pad := boxWidth - len([]rune(s))
	if pad < 0 {
		pad = 0
	}
	return "│ " + s + strings.Repeat(" ", pad) + "│\n"
}

func renderBar(value, total, width int) string {
	filled := value * width / total
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
