package generator

import (
	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/lang"
)

// Conflict is an asset tree path that exists but is not a directory
type Conflict struct {
	Namespace string `json:"namespace"`
	Path      string `json:"path"`
}

// Message returns the user-facing description of the conflict
func (c Conflict) Message() string {
	return c.Path + " is not a directory!"
}

// Err returns the conflict as a NOT_A_DIRECTORY error
func (c Conflict) Err() error {
	return errors.New(errors.ErrNotADirectory, c.Message()).
		WithDetail("namespace", c.Namespace).
		WithDetail("path", c.Path)
}

// Warning is a skipped tag or definition
type Warning struct {
	ID      string `json:"id"`
	Tag     string `json:"tag,omitempty"`
	Message string `json:"message"`
}

// NamespaceStats counts what a run did in one namespace
type NamespaceStats struct {
	Namespace   string `json:"namespace"`
	Definitions int    `json:"definitions"`
	Files       int    `json:"files"`
	Keys        int    `json:"keys"`
	Conflict    bool   `json:"conflict,omitempty"`
}

// Result is everything a run produced. With DryRun set nothing was
// written and Files and CreatedDirs list what would have been.
type Result struct {
	DryRun      bool              `json:"dry_run"`
	Files       []string          `json:"files"`
	LangCreated []string          `json:"lang_created"`
	CreatedDirs []string          `json:"created_dirs"`
	Conflicts   []Conflict        `json:"conflicts"`
	Warnings    []Warning         `json:"warnings"`
	Namespaces  []*NamespaceStats `json:"namespaces"`
	Queue       *lang.Queue       `json:"-"`
}

func newResult(dryRun bool) *Result {
	return &Result{DryRun: dryRun, Queue: lang.NewQueue()}
}

// stats returns the counters of a namespace, creating them on first use
func (r *Result) stats(namespace string) *NamespaceStats {
	for _, s := range r.Namespaces {
		if s.Namespace == namespace {
			return s
		}
	}
	s := &NamespaceStats{Namespace: namespace}
	r.Namespaces = append(r.Namespaces, s)
	return s
}
