// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/assetgen/pkg/style"
	"github.com/arthur-debert/assetgen/pkg/ui/display"
)

// Renderer provides rich terminal output
type Renderer struct {
	output io.Writer
	styles style.Styles
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{
		output: w,
		styles: style.New(lipgloss.NewRenderer(w)),
	}
}

// RenderSummary renders one block per namespace followed by problems and totals
func (r *Renderer) RenderSummary(s *display.Summary) error {
	var b strings.Builder

	title := "Assets generated"
	if s.DryRun {
		title = "Dry run, nothing was written"
	}
	b.WriteString(r.styles.Title.Render(title))
	b.WriteString("\n")

	for _, ns := range s.Namespaces {
		status := style.NamespaceStatus(ns.Files, ns.Conflict, s.DryRun)
		fmt.Fprintf(&b, "%s %s %s\n",
			pterm.Info.Prefix.Text,
			r.styles.Heading.Render(ns.Namespace),
			style.Badge(status))
		fmt.Fprintf(&b, "%s\n", r.styles.Indent(r.styles.Muted.Render(
			fmt.Sprintf("%d definitions, %d files, %d keys", ns.Definitions, ns.Files, ns.Keys)), 1))

		for _, u := range s.LangUpdates {
			if u.Namespace != ns.Namespace {
				continue
			}
			line := fmt.Sprintf("%s %s", r.styles.Path.Render(u.File), r.styles.Muted.Render(fmt.Sprintf("+%d keys", len(u.Added))))
			fmt.Fprintf(&b, "%s\n", r.styles.Indent(line, 1))
			for _, key := range u.Added {
				fmt.Fprintf(&b, "%s\n", r.styles.Indent(r.styles.Key.Render(key), 2))
			}
		}
	}

	if len(s.Conflicts) > 0 || len(s.Warnings) > 0 {
		b.WriteString("\n")
	}
	for _, c := range s.Conflicts {
		fmt.Fprintf(&b, "%s %s\n", pterm.Error.Prefix.Text, r.styles.Error.Render(c))
	}
	for _, w := range s.Warnings {
		fmt.Fprintf(&b, "%s %s\n", pterm.Warning.Prefix.Text, r.styles.Warning.Render(w))
	}

	totals := fmt.Sprintf("%d files, %d new lang keys", len(s.Files), s.KeysAdded())
	if s.HasProblems() {
		b.WriteString("\n" + r.styles.Warning.Render(totals) + "\n")
	} else {
		b.WriteString("\n" + r.styles.Success.Render(totals) + "\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with the pterm error prefix
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %s\n", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.styles.Heading.Render(msg))
	return err
}
