package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/kinds"
	"github.com/arthur-debert/assetgen/pkg/logging"
	"github.com/arthur-debert/assetgen/pkg/paths"
	"github.com/arthur-debert/assetgen/pkg/synthfs"
	"github.com/arthur-debert/assetgen/pkg/templates"
	"github.com/arthur-debert/assetgen/pkg/types"
)

// DefaultLocale is the lang file created in every namespace
const DefaultLocale = "en_us"

// emptyLang is the content of a freshly created lang file
const emptyLang = "{}"

// Options configure a Generator
type Options struct {
	Locale   string
	FileMode fs.FileMode
	DirMode  fs.FileMode
	DryRun   bool
}

// Generator writes asset files for definitions
type Generator struct {
	fs       types.FS
	store    *templates.Store
	table    *kinds.Table
	layout   paths.Layout
	locale   string
	fileMode fs.FileMode
	dirMode  fs.FileMode
	dryRun   bool
	logger   zerolog.Logger

	// per run state
	exec     *synthfs.Executor
	dirs     map[string]bool
	prepared map[string]bool
}

// New creates a Generator
func New(fsys types.FS, store *templates.Store, table *kinds.Table, layout paths.Layout, opts Options) *Generator {
	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}
	if opts.FileMode == 0 {
		opts.FileMode = 0644
	}
	if opts.DirMode == 0 {
		opts.DirMode = 0755
	}

	return &Generator{
		fs:       fsys,
		store:    store,
		table:    table,
		layout:   layout,
		locale:   opts.Locale,
		fileMode: opts.FileMode,
		dirMode:  opts.DirMode,
		dryRun:   opts.DryRun,
		logger:   logging.GetLogger("generator"),
	}
}

// Run generates every definition in order. Directories and files are
// staged and applied as one pipeline when the definitions are done, or
// when one of them fails. Errors end the run; conflicts and warnings are
// collected on the Result.
func (g *Generator) Run(defs []types.Definition) (*Result, error) {
	done := logging.LogOperationStart(g.logger, "generate")
	defer done()

	ctx := context.Background()
	g.exec = synthfs.NewExecutor(g.fs, g.dryRun)
	g.dirs = make(map[string]bool)
	g.prepared = make(map[string]bool)
	result := newResult(g.dryRun)

	for _, def := range defs {
		if err := g.generate(def, result); err != nil {
			if execErr := g.exec.Execute(ctx); execErr != nil {
				g.logger.Error().Err(execErr).Msg("Failed to apply staged operations")
			}
			return result, err
		}
	}
	if err := g.exec.Execute(ctx); err != nil {
		return result, err
	}

	g.logger.Info().
		Int("definitions", len(defs)).
		Int("files", len(result.Files)).
		Int("warnings", len(result.Warnings)).
		Int("conflicts", len(result.Conflicts)).
		Msg("Generation finished")
	return result, nil
}

func (g *Generator) generate(def types.Definition, result *Result) error {
	id, err := types.ParseID(def.ID)
	if err != nil {
		return err
	}
	ns, name := id.Namespace, id.Name
	stats := result.stats(ns)
	stats.Definitions++

	logger := g.logger.With().Str("id", id.String()).Logger()
	logger.Debug().Strs("requires", def.Requires).Msg("Processing definition")

	if err := g.prepareNamespace(ns, result); err != nil {
		return err
	}

	for _, tag := range def.Requires {
		if kinds.IsModifier(tag) {
			continue
		}

		rule, ok := g.table.Lookup(tag)
		if !ok {
			g.warn(result, logger, Warning{
				ID:      id.String(),
				Tag:     tag,
				Message: fmt.Sprintf("No template keyword found: %q", tag),
			})
			continue
		}

		if rule.ExcludesBlockItem && def.Has(kinds.BlockItem) {
			g.warn(result, logger, Warning{
				ID:      id.String(),
				Tag:     tag,
				Message: fmt.Sprintf("%s: Template %q is mutually exclusive with %q", id, tag, kinds.BlockItem),
			})
			continue
		}

		vars := templates.Vars{Name: name, Namespace: ns}
		for _, out := range rule.Outputs {
			path := g.layout.File(ns, out.Dir, name+out.Suffix)
			if err := g.write(path, out.Template, vars, result, stats); err != nil {
				return err
			}
		}

		result.Queue.Add(ns, rule.LangKey(ns, name))
		stats.Keys = len(result.Queue.Keys(ns))

		if rule.ItemModel != nil && def.Has(kinds.BlockItem) {
			item := rule.ItemModel
			path := g.layout.File(ns, paths.ItemModelsDir, name+item.FileSuffix)
			itemVars := templates.Vars{Name: name + item.NameSuffix, Namespace: ns}
			if err := g.write(path, item.Template, itemVars, result, stats); err != nil {
				return err
			}
		}
	}

	return nil
}

// prepareNamespace builds the tree and default lang file once per
// namespace. A conflict stops the tree but not the namespace: writes into
// the directories it left out fail when the stage is applied.
func (g *Generator) prepareNamespace(ns string, result *Result) error {
	if g.prepared[ns] {
		return nil
	}
	g.prepared[ns] = true

	conflict, err := g.ensureTree(ns, result)
	if err != nil {
		return err
	}
	if conflict != "" {
		c := Conflict{Namespace: ns, Path: conflict}
		result.Conflicts = append(result.Conflicts, c)
		result.stats(ns).Conflict = true
		g.logger.Error().Err(c.Err()).Str("namespace", ns).Msg(c.Message())
	}

	result.Queue.Touch(ns)
	return g.ensureLang(ns, result)
}

func (g *Generator) ensureLang(ns string, result *Result) error {
	path := g.layout.LangFile(ns, g.locale)

	_, err := g.fs.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to inspect %s", path).
			WithDetail("path", path)
	}

	g.logger.Info().Str("file", path).Bool("dry_run", g.dryRun).Msg("Creating lang file")
	g.exec.WriteFile(path, []byte(emptyLang), g.fileMode)
	result.LangCreated = append(result.LangCreated, path)
	return nil
}

func (g *Generator) write(path, template string, vars templates.Vars, result *Result, stats *NamespaceStats) error {
	data, err := g.store.Render(template, vars)
	if err != nil {
		return err
	}

	g.logger.Info().Str("file", path).Str("template", template).Bool("dry_run", g.dryRun).Msg("Writing")
	g.exec.WriteFile(path, data, g.fileMode)

	result.Files = append(result.Files, path)
	stats.Files++
	return nil
}

func (g *Generator) warn(result *Result, logger zerolog.Logger, w Warning) {
	result.Warnings = append(result.Warnings, w)
	logger.Warn().Str("tag", w.Tag).Msg(w.Message)
}
