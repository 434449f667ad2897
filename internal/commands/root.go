package commands

import (
	"embed"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/assetgen/internal/version"
	"github.com/arthur-debert/assetgen/pkg/cobrax/topics"
	"github.com/arthur-debert/assetgen/pkg/config"
	"github.com/arthur-debert/assetgen/pkg/core"
	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/logging"
	"github.com/arthur-debert/assetgen/pkg/paths"
	"github.com/arthur-debert/assetgen/pkg/ui"
)

//go:embed topics/*.md
var topicsFS embed.FS

// rootOptions are the flags of the generate run
type rootOptions struct {
	verbosity  int
	dryRun     bool
	define     string
	templates  string
	format     string
	configFile string

	// userConfigPath, logFile and workDir are fixed in tests
	userConfigPath string
	logFile        string
	workDir        string
}

// renderedError marks an error already shown to the user
type renderedError struct {
	err error
}

func (e renderedError) Error() string { return e.err.Error() }
func (e renderedError) Unwrap() error { return e.err }

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{
		userConfigPath: paths.UserConfigPath(),
		logFile:        paths.LogFilePath(),
		workDir:        ".",
	})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Options{
				Verbosity: opts.verbosity,
				Console:   cmd.ErrOrStderr(),
				LogFile:   opts.logFile,
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", MsgFlagFormat)

	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().StringVarP(&opts.define, "define", "d", "", MsgFlagDefine)
	rootCmd.Flags().StringVarP(&opts.templates, "templates", "t", "", MsgFlagTemplates)
	rootCmd.Flags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkFlagDirname("templates")
	_ = rootCmd.MarkFlagFilename("define", "json", "yaml", "yml", "toml")

	rootCmd.AddCommand(newKindsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if _, err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}); err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	defer func() { _ = logging.Close() }()

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var rendered renderedError
		if !stderrors.As(err, &rendered) {
			_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// loadConfig resolves the config layers with the flags on top
func loadConfig(cmd *cobra.Command, args []string, opts *rootOptions) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if len(args) == 1 {
		overrides["paths.assets"] = args[0]
	}
	if cmd.Flags().Changed("define") {
		overrides["paths.define"] = opts.define
	}
	if cmd.Flags().Changed("templates") {
		overrides["paths.templates"] = opts.templates
	}
	if cmd.Flags().Changed("dry-run") {
		overrides["output.dryrun"] = opts.dryRun
	}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = opts.format
	}

	cfg, err := config.Load(config.LoadOptions{
		WorkDir:        opts.workDir,
		UserConfigPath: opts.userConfigPath,
		ConfigFile:     opts.configFile,
		Overrides:      overrides,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, MsgErrLoadConfig)
	}
	return cfg, nil
}

// newRenderer builds the output renderer from the configured format
func newRenderer(w io.Writer, format string) (ui.Renderer, error) {
	f, err := ui.ParseFormat(format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrFormat)
	}
	return ui.NewRenderer(f, w)
}

func runGenerate(cmd *cobra.Command, args []string, opts *rootOptions) error {
	logger := logging.GetLogger("cmd.generate")

	out := cmd.OutOrStdout()
	if len(args) == 1 && args[0] == "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), core.MsgMissingAssets)
		return renderedError{errors.New(errors.ErrInvalidInput, core.MsgMissingAssets)}
	}

	cfg, err := loadConfig(cmd, args, opts)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(out, cfg.Output.Format)
	if err != nil {
		return err
	}

	logger.Info().
		Str("assets", cfg.Paths.Assets).
		Bool("dryRun", cfg.Output.DryRun).
		Msg("Running generate")

	result, err := core.Generate(core.GenerateOptions{Config: cfg})
	if result != nil && result.Summary != nil {
		if rerr := renderer.RenderSummary(result.Summary); rerr != nil {
			logger.Error().Err(rerr).Msg("Failed to render summary")
		}
	}
	if err != nil {
		_ = renderer.RenderError(err)
		return renderedError{err}
	}
	return nil
}
