package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
)

func colorize(writer io.Writer, color, line string) string {
	file, ok := writer.(*os.File)
	if !ok {
		return line
	}
	fd := file.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return line
	}
	return color + line + ansiReset
}
