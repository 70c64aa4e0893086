// Package terminal inspects where command output is going.
package terminal

import (
	"io"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is used for table layout when the width cannot be detected.
const DefaultWidth = 80

//nolint:gochecknoglobals // Replaced in tests
var (
	isTerminal = isatty.IsTerminal
	getSize    = term.GetSize
)

// Info describes an output destination.
type Info struct {
	TTY   bool
	Width int
}

type fileDescriptor interface {
	Fd() uintptr
}

// Inspect reports whether w is an interactive terminal and how wide it is.
// Buffers, pipes and files are never terminals and get DefaultWidth.
func Inspect(w io.Writer) Info {
	f, ok := w.(fileDescriptor)
	if !ok || !isTerminal(f.Fd()) {
		return Info{Width: DefaultWidth}
	}

	width, _, err := getSize(int(f.Fd())) //nolint:gosec // fd values fit in int
	if err != nil || width <= 0 {
		width = DefaultWidth
	}

	return Info{TTY: true, Width: width}
}
