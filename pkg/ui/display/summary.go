// Package display holds the presentation model of a generation run,
// shared by every renderer.
package display

import (
	"path/filepath"

	"github.com/arthur-debert/assetgen/pkg/generator"
	"github.com/arthur-debert/assetgen/pkg/lang"
)

// Summary is what a run did, ready for rendering
type Summary struct {
	DryRun      bool               `json:"dryRun"`
	Files       []string           `json:"files"`
	LangCreated []string           `json:"langCreated"`
	CreatedDirs []string           `json:"createdDirs"`
	Namespaces  []NamespaceSummary `json:"namespaces"`
	LangUpdates []LangUpdate       `json:"langUpdates"`
	Warnings    []string           `json:"warnings"`
	Conflicts   []string           `json:"conflicts"`
}

// NamespaceSummary is one row of the per-namespace table
type NamespaceSummary struct {
	Namespace   string `json:"namespace"`
	Definitions int    `json:"definitions"`
	Files       int    `json:"files"`
	Keys        int    `json:"keys"`
	Conflict    bool   `json:"conflict,omitempty"`
}

// LangUpdate reports the keys added to one lang file
type LangUpdate struct {
	Namespace string   `json:"namespace"`
	File      string   `json:"file"`
	Path      string   `json:"path"`
	Added     []string `json:"added"`
}

// NewSummary builds a Summary from a generation result and lang updates
func NewSummary(result *generator.Result, updates []lang.FileUpdate) *Summary {
	s := &Summary{
		Files:       []string{},
		LangCreated: []string{},
		CreatedDirs: []string{},
		Namespaces:  []NamespaceSummary{},
		LangUpdates: []LangUpdate{},
		Warnings:    []string{},
		Conflicts:   []string{},
	}
	if result == nil {
		return s
	}

	s.DryRun = result.DryRun
	s.Files = append(s.Files, result.Files...)
	s.LangCreated = append(s.LangCreated, result.LangCreated...)
	s.CreatedDirs = append(s.CreatedDirs, result.CreatedDirs...)

	for _, ns := range result.Namespaces {
		s.Namespaces = append(s.Namespaces, NamespaceSummary{
			Namespace:   ns.Namespace,
			Definitions: ns.Definitions,
			Files:       ns.Files,
			Keys:        ns.Keys,
			Conflict:    ns.Conflict,
		})
	}
	for _, w := range result.Warnings {
		s.Warnings = append(s.Warnings, w.Message)
	}
	for _, c := range result.Conflicts {
		s.Conflicts = append(s.Conflicts, c.Message())
	}
	for _, u := range updates {
		added := u.Added
		if added == nil {
			added = []string{}
		}
		s.LangUpdates = append(s.LangUpdates, LangUpdate{
			Namespace: u.Namespace,
			File:      filepath.Base(u.Path),
			Path:      u.Path,
			Added:     added,
		})
	}
	return s
}

// KeysAdded returns the number of keys added across all lang files
func (s *Summary) KeysAdded() int {
	n := 0
	for _, u := range s.LangUpdates {
		n += len(u.Added)
	}
	return n
}

// HasProblems reports whether the run produced warnings or conflicts
func (s *Summary) HasProblems() bool {
	return len(s.Warnings) > 0 || len(s.Conflicts) > 0
}
