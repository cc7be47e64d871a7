package ui

import (
	"fmt"
	"strings"

	"blueprint/internal/content"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

// projectBody renders a project for the detail modal.
func projectBody(p content.Project) func(width int) string {
	return func(width int) string {
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n", Styles.Muted.Render(strings.Join([]string{p.Category, p.Location, p.Year}, " · ")))
		if p.Collaborators != "" {
			fmt.Fprintf(&b, "%s %s\n", Styles.Hint.Render("with"), p.Collaborators)
		}
		b.WriteString("\n" + ansi.Wrap(p.Description, width, " -") + "\n")
		if len(p.Images) > 0 {
			b.WriteString("\n" + Styles.Heading.Render("Images") + "\n")
			for _, img := range p.Images {
				fmt.Fprintf(&b, "  ▣ %s\n", img)
			}
		}
		return strings.TrimRight(b.String(), "\n")
	}
}

// awardBody renders an award case for the detail modal.
func awardBody(a content.AwardCase) func(width int) string {
	return func(width int) string {
		meta := Styles.Muted.Render(a.Category + " · " + a.Year)
		return meta + "\n\n" + ansi.Wrap(a.Description, width, " -")
	}
}

// MarkdownRenderer turns article bodies into styled terminal text.
type MarkdownRenderer struct {
	Style string // glamour standard style name
	log   *zap.Logger
}

// NewMarkdownRenderer returns a renderer using a glamour standard style.
func NewMarkdownRenderer(style string, log *zap.Logger) *MarkdownRenderer {
	if style == "" {
		style = "dark"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &MarkdownRenderer{Style: style, log: log}
}

// Render renders md wrapped to width. Rendering failures fall back to plain text.
func (r *MarkdownRenderer) Render(md string, width int) string {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.Style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		r.log.Warn("markdown renderer unavailable", zap.Error(err))
		return ansi.Wrap(md, width, " -")
	}
	out, err := tr.Render(md)
	if err != nil {
		r.log.Warn("markdown render failed", zap.Error(err))
		return ansi.Wrap(md, width, " -")
	}
	return strings.Trim(out, "\n")
}

// articleBody renders a news article through md.
func articleBody(a content.NewsArticle, md *MarkdownRenderer) func(width int) string {
	return func(width int) string {
		src := fmt.Sprintf("*%s*\n\n> %s\n\n%s", a.Date, a.Excerpt, a.Body)
		return md.Render(src, width)
	}
}
