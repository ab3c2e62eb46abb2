package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiYellow = "\x1b[33m"
)

// printNotice writes an operator-facing warning line, colorized when the
// destination is a terminal.
func printNotice(out io.Writer, message string) {
	line := "  note: " + message
	if supportsColor(out) {
		line = ansiYellow + line + ansiReset
	}
	fmt.Fprintln(out, line)
}

func supportsColor(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
