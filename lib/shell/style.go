// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/conquer/lib/config"
)

// printer writes shell output, styled according to the colour mode.
type printer struct {
	out io.Writer

	errorStyle   lipgloss.Style
	hintStyle    lipgloss.Style
	nameStyle    lipgloss.Style
	headingStyle lipgloss.Style
}

// newPrinter builds a printer for out. The renderer is bound to out so
// "auto" detects the writer's own capabilities rather than stdout's.
func newPrinter(out io.Writer, color string) *printer {
	renderer := lipgloss.NewRenderer(out)
	switch color {
	case config.ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		renderer.SetColorProfile(termenv.ANSI256)
	}

	return &printer{
		out:          out,
		errorStyle:   renderer.NewStyle().Foreground(lipgloss.Color("9")),
		hintStyle:    renderer.NewStyle().Faint(true),
		nameStyle:    renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		headingStyle: renderer.NewStyle().Bold(true),
	}
}

func (p *printer) line(text string) {
	fmt.Fprintln(p.out, text)
}

func (p *printer) errorLines(text string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(p.out, p.errorStyle.Render(line))
	}
}

func (p *printer) hint(text string) {
	fmt.Fprintln(p.out, p.hintStyle.Render(text))
}

// document prints the lines of command.Document with the command name
// and the parameters header emphasised.
func (p *printer) document(lines []string) {
	for i, line := range lines {
		switch {
		case i == 1:
			fmt.Fprintln(p.out, p.nameStyle.Render(line))
		case line == "Parameters:":
			fmt.Fprintln(p.out, p.headingStyle.Render(line))
		default:
			fmt.Fprintln(p.out, line)
		}
	}
}

// table prints name/description rows with the names styled and the
// descriptions aligned in one column.
func (p *printer) table(rows [][2]string) {
	styled := make([]string, len(rows))
	width := 0
	for i, row := range rows {
		styled[i] = p.nameStyle.Render(row[0])
		width = max(width, ansi.StringWidth(styled[i]))
	}
	for i, row := range rows {
		padding := strings.Repeat(" ", width-ansi.StringWidth(styled[i]))
		fmt.Fprintf(p.out, "  %s%s  %s\n", styled[i], padding, row[1])
	}
}
