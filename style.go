package main

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	keyword   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Render
	paragraph = lipgloss.NewStyle().Width(78).Padding(0, 0, 0, 2).Render
	header    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Render
	faint     = lipgloss.NewStyle().Faint(true).Render
)

// styled reports whether w is a terminal that should get colour.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeTable prints rows in aligned columns. Widths are measured in
// terminal cells so IPA and CJK text line up.
func writeTable(w io.Writer, columns []string, rows [][]string) error {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	color := styled(w)
	line := func(cells []string, isHeader bool) string {
		var b strings.Builder
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			padded := cell
			if i < len(cells)-1 {
				padded = runewidth.FillRight(cell, widths[i])
			}
			if isHeader && color {
				padded = header(padded)
			}
			b.WriteString(padded)
		}
		b.WriteByte('\n')
		return b.String()
	}

	if _, err := io.WriteString(w, line(columns, true)); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := io.WriteString(w, line(row, false)); err != nil {
			return err
		}
	}
	return nil
}
