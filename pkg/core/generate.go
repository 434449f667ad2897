package core

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/assetgen/pkg/config"
	"github.com/arthur-debert/assetgen/pkg/definitions"
	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/filesystem"
	"github.com/arthur-debert/assetgen/pkg/generator"
	"github.com/arthur-debert/assetgen/pkg/kinds"
	"github.com/arthur-debert/assetgen/pkg/lang"
	"github.com/arthur-debert/assetgen/pkg/logging"
	"github.com/arthur-debert/assetgen/pkg/paths"
	"github.com/arthur-debert/assetgen/pkg/templates"
	"github.com/arthur-debert/assetgen/pkg/types"
	"github.com/arthur-debert/assetgen/pkg/ui/display"
)

// MsgMissingAssets is reported when no assets directory is configured
const MsgMissingAssets = "Please provide the assets directory via an argument."

// GenerateOptions defines the options for the Generate command.
type GenerateOptions struct {
	// Config holds paths, lang and file settings. Nil means defaults.
	Config *config.Config

	// FS is used for definitions and the asset tree. Nil means the OS filesystem.
	FS types.FS

	// Templates replaces template loading when set
	Templates fs.FS

	// Kinds replaces the built-in kinds table when set
	Kinds *kinds.Table
}

// GenerateResult is the outcome of a run
type GenerateResult struct {
	Result      *generator.Result
	LangUpdates []lang.FileUpdate
	Summary     *display.Summary
}

// Generate runs the whole pipeline. On failure the partial result is
// returned along with the error.
func Generate(opts GenerateOptions) (*GenerateResult, error) {
	log := logging.GetLogger("core.generate")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	table := opts.Kinds
	if table == nil {
		table = kinds.Default()
	}

	if cfg.Paths.Assets == "" {
		return nil, errors.New(errors.ErrInvalidInput, MsgMissingAssets)
	}

	log.Info().
		Str("assets", cfg.Paths.Assets).
		Str("define", cfg.Paths.Define).
		Str("templates", cfg.Paths.Templates).
		Bool("dryRun", cfg.Output.DryRun).
		Msg("Starting generation")

	defs, err := definitions.Load(fsys, cfg.Paths.Define)
	if err != nil {
		return nil, err
	}

	store, err := loadTemplates(opts.Templates, cfg.Paths.Templates)
	if err != nil {
		return nil, err
	}

	layout := paths.NewLayout(cfg.Paths.Assets)
	gen := generator.New(fsys, store, table, layout, generator.Options{
		Locale:   cfg.Lang.Locale,
		FileMode: cfg.Files.File,
		DirMode:  cfg.Files.Directory,
		DryRun:   cfg.Output.DryRun,
	})

	out := &GenerateResult{}
	out.Result, err = gen.Run(defs)
	if err != nil {
		out.Summary = display.NewSummary(out.Result, nil)
		return out, err
	}

	updater, err := lang.NewUpdater(fsys, layout, lang.Options{
		Collation: cfg.Lang.Collation,
		Indent:    cfg.Lang.Indent,
		FileMode:  cfg.Files.File,
		DryRun:    cfg.Output.DryRun,
	})
	if err != nil {
		return out, err
	}
	out.LangUpdates, err = updater.Apply(out.Result.Queue)
	out.Summary = display.NewSummary(out.Result, out.LangUpdates)
	if err != nil {
		return out, err
	}

	log.Info().
		Int("files", len(out.Result.Files)).
		Int("langFiles", len(out.LangUpdates)).
		Msg("Generation completed")
	return out, nil
}

// loadTemplates picks the template source: an explicit fs.FS, a
// directory on disk, or the built-in set
func loadTemplates(override fs.FS, dir string) (*templates.Store, error) {
	switch {
	case override != nil:
		return templates.Load(override, ".")
	case dir != "":
		store, err := templates.Load(os.DirFS(dir), ".")
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTemplateLoad, "failed to load templates from %s", dir).
				WithDetail("dir", dir)
		}
		return store, nil
	default:
		return templates.LoadBuiltin()
	}
}
