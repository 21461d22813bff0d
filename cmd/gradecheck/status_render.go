package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// statusKind tags a report line. statusInfo lines carry no tag.
type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// reportLabelWidth fits the longest header label ("Transcript span:").
const reportLabelWidth = 18

type statusStyle struct {
	tag   string
	color string
}

var statusStyles = map[statusKind]statusStyle{
	statusOK:    {tag: "OK", color: ansiGreen},
	statusWarn:  {tag: "WARN", color: ansiYellow},
	statusError: {tag: "ERROR", color: ansiRed},
}

func paint(s, color string, colorize bool) string {
	if !colorize || color == "" {
		return s
	}
	return color + s + ansiReset
}

// renderStatusLine formats "  Label:   [TAG] message" for report headers.
func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-*s ", reportLabelWidth, label+":")
	style, tagged := statusStyles[kind]
	if tagged {
		b.WriteString("[" + style.tag + "] ")
	}
	b.WriteString(message)
	return paint(strings.TrimRight(b.String(), " "), style.color, colorize)
}

// renderSectionHeader returns a title and an underline of the same display width.
func renderSectionHeader(title string, colorize bool) []string {
	title = strings.TrimSpace(title)
	underline := strings.Repeat("=", max(text.StringWidthWithoutEscSequences(title), 1))
	return []string{paint(title, ansiBold, colorize), underline}
}

// isColorTerminal reports whether w is a terminal that should receive ANSI
// colors. NO_COLOR disables colors regardless of the terminal.
func isColorTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
