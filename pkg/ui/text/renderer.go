// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"

	"github.com/arthur-debert/assetgen/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderSummary lists written files, lang updates and problems, then a
// per-namespace table
func (r *Renderer) RenderSummary(s *display.Summary) error {
	verb := "Writing"
	if s.DryRun {
		verb = "Would write"
	}

	for _, path := range s.LangCreated {
		if _, err := fmt.Fprintf(r.output, "%s %s\n", verb, path); err != nil {
			return err
		}
	}
	for _, path := range s.Files {
		if _, err := fmt.Fprintf(r.output, "%s %s\n", verb, path); err != nil {
			return err
		}
	}
	for _, u := range s.LangUpdates {
		if _, err := fmt.Fprintf(r.output, "%s to lang file: %s (%d new keys)\n", verb, u.File, len(u.Added)); err != nil {
			return err
		}
	}
	for _, c := range s.Conflicts {
		if _, err := fmt.Fprintf(r.output, "Error: %s\n", c); err != nil {
			return err
		}
	}
	for _, w := range s.Warnings {
		if _, err := fmt.Fprintf(r.output, "Warning: %s\n", w); err != nil {
			return err
		}
	}

	if len(s.Namespaces) > 0 {
		if _, err := fmt.Fprintln(r.output); err != nil {
			return err
		}
		if err := r.renderTable(s); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(r.output, "\n%d files, %d new lang keys, %d warnings, %d conflicts\n",
		len(s.Files), s.KeysAdded(), len(s.Warnings), len(s.Conflicts))
	return err
}

func (r *Renderer) renderTable(s *display.Summary) error {
	table := tablewriter.NewTable(r.output,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
	)
	table.Header("Namespace", "Definitions", "Files", "Keys", "Status")

	rows := make([][]string, 0, len(s.Namespaces))
	for _, ns := range s.Namespaces {
		status := "ok"
		if ns.Conflict {
			status = "conflict"
		}
		rows = append(rows, []string{
			ns.Namespace,
			strconv.Itoa(ns.Definitions),
			strconv.Itoa(ns.Files),
			strconv.Itoa(ns.Keys),
			status,
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
