package synthfs

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/logging"
	"github.com/arthur-debert/assetgen/pkg/types"
)

// Kind of a staged operation
type Kind string

const (
	KindMkdir Kind = "mkdir"
	KindWrite Kind = "write"
)

// Staged describes one operation waiting for Execute
type Staged struct {
	Kind Kind
	Path string
	Mode fs.FileMode
	Size int
}

// Executor stages the directory and file creations of a run and applies
// them as one synthfs pipeline. Operations are bound to the types.FS
// given to NewExecutor so memory-backed runs take the same path.
type Executor struct {
	logger     zerolog.Logger
	fsys       types.FS
	dryRun     bool
	filesystem filesystem.FullFileSystem

	sfs    *synthfs.SynthFS
	ops    []synthfs.Operation
	staged []Staged
	failed error
}

// NewExecutor creates an executor writing through fsys
func NewExecutor(fsys types.FS, dryRun bool) *Executor {
	osfs := filesystem.NewOSFileSystem("/")
	return &Executor{
		logger:     logging.GetLogger("synthfs"),
		fsys:       fsys,
		dryRun:     dryRun,
		filesystem: synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths(),
		sfs:        synthfs.New(),
	}
}

// Mkdir stages the creation of a single directory. The parent must exist
// when the pipeline reaches it.
func (e *Executor) Mkdir(path string, mode fs.FileMode) {
	id := e.nextID(KindMkdir, path)
	e.add(Staged{Kind: KindMkdir, Path: path, Mode: mode},
		e.sfs.CustomOperationWithID(id, func(ctx context.Context, _ filesystem.FileSystem) error {
			if err := e.fsys.Mkdir(path, mode); err != nil {
				return e.fail(errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", path).
					WithDetail("path", path))
			}
			return nil
		}))
}

// WriteFile stages writing data to path, replacing any existing file
func (e *Executor) WriteFile(path string, data []byte, mode fs.FileMode) {
	id := e.nextID(KindWrite, path)
	e.add(Staged{Kind: KindWrite, Path: path, Mode: mode, Size: len(data)},
		e.sfs.CustomOperationWithID(id, func(ctx context.Context, _ filesystem.FileSystem) error {
			if err := e.fsys.WriteFile(path, data, mode); err != nil {
				return e.fail(errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
					WithDetail("path", path))
			}
			return nil
		}))
}

// Staged returns the operations waiting for Execute, in order
func (e *Executor) Staged() []Staged {
	return e.staged
}

// Execute runs every staged operation in order and clears the stage. In
// dry run mode the operations are only logged.
func (e *Executor) Execute(ctx context.Context) error {
	ops, staged := e.ops, e.staged
	e.ops, e.staged, e.failed = nil, nil, nil

	if len(ops) == 0 {
		e.logger.Debug().Msg("No operations to execute")
		return nil
	}

	if e.dryRun {
		e.logger.Info().Msg("Dry run mode - operations would be executed:")
		for _, s := range staged {
			e.logStaged(s)
		}
		return nil
	}

	e.logger.Info().Int("operationCount", len(ops)).Msg("Executing synthfs operations")

	_, err := synthfs.RunWithOptions(ctx, e.filesystem, synthfs.DefaultPipelineOptions(), ops...)
	if e.failed != nil {
		e.logger.Error().Err(e.failed).Msg("Pipeline execution failed")
		return e.failed
	}
	if err != nil {
		e.logger.Error().Err(err).Msg("Pipeline execution failed")
		return errors.Wrap(err, errors.ErrFileWrite, "failed to execute operations")
	}

	e.logger.Info().Msg("All operations executed successfully")
	return nil
}

func (e *Executor) add(s Staged, op synthfs.Operation) {
	e.staged = append(e.staged, s)
	e.ops = append(e.ops, op)
}

// fail keeps the first coded error so Execute can return it unwrapped
func (e *Executor) fail(err error) error {
	if e.failed == nil {
		e.failed = err
	}
	return err
}

func (e *Executor) nextID(kind Kind, path string) string {
	return fmt.Sprintf("%s-%d-%s", kind, len(e.ops), path)
}

func (e *Executor) logStaged(s Staged) {
	event := e.logger.Info().
		Str("type", string(s.Kind)).
		Str("target", s.Path).
		Str("mode", s.Mode.String())
	if s.Kind == KindWrite {
		event = event.Int("contentLen", s.Size)
	}
	event.Msg("Would execute operation")
}
