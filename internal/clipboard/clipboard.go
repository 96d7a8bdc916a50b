// Package clipboard copies text to the system clipboard, falling back to the
// terminal's OSC 52 escape when no system clipboard is reachable.
package clipboard

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrCopyFailed is returned when neither mechanism could copy the text
var ErrCopyFailed = errors.New("failed to copy to clipboard")

// Writer places text on a clipboard
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts a function to Writer
type WriterFunc func(text string) error

// WriteAll calls f(text)
func (f WriterFunc) WriteAll(text string) error { return f(text) }

// SystemWriter uses the platform clipboard (pbcopy, xclip, xsel, wl-copy, win32)
type SystemWriter struct{}

// WriteAll implements Writer
func (SystemWriter) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("system clipboard unsupported")
	}
	return clipboard.WriteAll(text)
}

// OSC52Writer asks the terminal emulator to set its clipboard
type OSC52Writer struct {
	Out io.Writer
}

// WriteAll implements Writer
func (w OSC52Writer) WriteAll(text string) error {
	if w.Out == nil {
		return errors.New("no terminal output for osc52")
	}
	_, err := osc52.New(text).WriteTo(w.Out)
	return err
}

// Copier tries the primary writer and then the fallback
type Copier struct {
	primary  Writer
	fallback Writer
}

// New creates a copier using the system clipboard and OSC 52 on out
func New(out io.Writer) *Copier {
	return NewWithWriters(SystemWriter{}, OSC52Writer{Out: out})
}

// NewWithWriters creates a copier from explicit writers; fallback may be nil
func NewWithWriters(primary, fallback Writer) *Copier {
	return &Copier{primary: primary, fallback: fallback}
}

// Copy places text on the clipboard
func (c *Copier) Copy(text string) error {
	primaryErr := c.primary.WriteAll(text)
	if primaryErr == nil {
		return nil
	}
	if c.fallback == nil {
		return fmt.Errorf("%w: %w", ErrCopyFailed, primaryErr)
	}
	if err := c.fallback.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyFailed, errors.Join(primaryErr, err))
	}
	return nil
}
