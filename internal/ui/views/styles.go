package views

import (
	"github.com/charmbracelet/lipgloss"

	"pricegrip/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Label         lipgloss.Style
	Filter        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	HelpBox       lipgloss.Style
	ErrorBanner   lipgloss.Style
	SectionTitle  lipgloss.Style
	Stat          lipgloss.Style
	StatValue     lipgloss.Style
	CardTitle     lipgloss.Style
	StoreBadge    lipgloss.Style
	Price         lipgloss.Style
	Link          lipgloss.Style
	SelectionBar  lipgloss.Style
	TrendingTag   lipgloss.Style
	TrendingIndex lipgloss.Style
	StepActive    lipgloss.Style
	StepDone      lipgloss.Style
	StepPending   lipgloss.Style
	NoticeSuccess lipgloss.Style
	NoticeError   lipgloss.Style
	NoticeInfo    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		ErrorBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")).
			Padding(0, 1),
		SectionTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Stat:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatValue:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		CardTitle:     lipgloss.NewStyle().Bold(true),
		StoreBadge:    lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("61")).Padding(0, 1),
		Price:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")), // green
		Link:          lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		SelectionBar:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		TrendingTag:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 1),
		TrendingIndex: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		StepActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		StepDone:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		StepPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		NoticeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("35")).Padding(0, 1),
		NoticeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 1),
		NoticeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")).Padding(0, 1),
	}
}

// NoticeStyle returns the toast style for a severity
func (s *Styles) NoticeStyle(severity domain.Severity) lipgloss.Style {
	switch severity {
	case domain.SeveritySuccess:
		return s.NoticeSuccess
	case domain.SeverityError:
		return s.NoticeError
	default:
		return s.NoticeInfo
	}
}

// NoticeIcon returns the toast icon for a severity
func NoticeIcon(severity domain.Severity) string {
	switch severity {
	case domain.SeveritySuccess:
		return "✓"
	case domain.SeverityError:
		return "✗"
	default:
		return "ℹ"
	}
}
