package ui

import (
	"fmt"
	"os/exec"
	"runtime"

	"pricegrip/internal/sanitize"
)

// LinkOpener opens product links outside the terminal
type LinkOpener interface {
	Open(link string) error
}

// BrowserOpener opens links with the platform opener
type BrowserOpener struct {
	goos string
}

// NewBrowserOpener creates an opener for the running platform
func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{goos: runtime.GOOS}
}

// Command returns the opener command for link
func (b *BrowserOpener) Command(link string) (*exec.Cmd, error) {
	safe := sanitize.Link(link)
	if safe == "" {
		return nil, fmt.Errorf("refusing to open %q: not an http(s) link", link)
	}
	switch b.goos {
	case "darwin":
		return exec.Command("open", safe), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", safe), nil
	default:
		return exec.Command("xdg-open", safe), nil
	}
}

// Open starts the opener without waiting for the browser to exit
func (b *BrowserOpener) Open(link string) error {
	cmd, err := b.Command(link)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open link: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
