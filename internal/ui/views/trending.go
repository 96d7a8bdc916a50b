package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pricegrip/internal/domain"
	"pricegrip/internal/sanitize"
)

// TrendingRenderer handles rendering of the trending searches row
type TrendingRenderer struct {
	styles *Styles
}

// NewTrendingRenderer creates a new trending renderer
func NewTrendingRenderer(styles *Styles) *TrendingRenderer {
	return &TrendingRenderer{
		styles: styles,
	}
}

// RenderTrending renders numbered trending tags, wrapping at width
func (t *TrendingRenderer) RenderTrending(terms []domain.TrendingTerm, width int) string {
	if len(terms) == 0 {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	label := t.styles.Label.Render("Trending: ")
	indent := strings.Repeat(" ", lipgloss.Width(label))

	var lines []string
	line := label
	for i, term := range terms {
		key := (i + 1) % 10
		tag := t.styles.TrendingIndex.Render(fmt.Sprintf("%d", key)) + " " +
			t.styles.TrendingTag.Render(sanitize.Text(term.ProductName))
		if lipgloss.Width(line)+lipgloss.Width(tag)+1 > width && line != label && line != indent {
			lines = append(lines, line)
			line = indent
		}
		if line != label && line != indent {
			line += " "
		}
		line += tag
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
