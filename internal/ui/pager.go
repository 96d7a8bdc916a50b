package ui

import (
	"bytes"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"pricegrip/internal/domain"
	"pricegrip/internal/output"
)

// Pager shows the current view as a table in the ov pager
type Pager struct {
	program  *tea.Program // reference to Bubble Tea program for terminal management
	currency string
}

// NewPager creates a new pager
func NewPager(currency string) *Pager {
	return &Pager{currency: currency}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Content renders the page as a plain table with a stats header
func (p *Pager) Content(page domain.Page) (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Results for %q\n%s\n\n", page.Query, output.SummaryLine(page.Stats, p.currency))
	if err := output.WriteProductTable(&buf, page, p.currency, nil); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Show releases the terminal, runs ov over the page and restores the terminal
func (p *Pager) Show(page domain.Page) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	content, err := p.Content(page)
	if err != nil {
		return err
	}

	root, err := oviewer.NewRoot(bytes.NewReader([]byte(content)))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return root.Run()
}
