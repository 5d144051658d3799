package interactive

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/term"
)

// MakeRaw switches the terminal on fd to raw mode. The returned function
// restores the previous state. When fd is not a terminal nothing changes.
func MakeRaw(fd int) (restore func() error, raw bool, err error) {
	if !term.IsTerminal(fd) {
		return func() error { return nil }, false, nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, false, fmt.Errorf("raw mode: %w", err)
	}
	return func() error { return term.Restore(fd, old) }, true, nil
}

type crlfWriter struct {
	w io.Writer
}

// CRLF returns a writer that turns every "\n" into "\r\n". Raw mode disables
// the terminal's own newline translation.
func CRLF(w io.Writer) io.Writer {
	return crlfWriter{w: w}
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
