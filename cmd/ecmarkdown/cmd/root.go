package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/msto63/ecmarkdown/foundation/core/config"
	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	mdlog "github.com/msto63/ecmarkdown/foundation/core/log"
	"github.com/msto63/ecmarkdown/foundation/utils/stringx"
	"github.com/msto63/ecmarkdown/internal/render"
)

const envPrefix = "ECMARKDOWN"

// errReported marks failures whose diagnostics were already printed
var errReported = errors.New("errors reported")

// reported wraps errReported with the code that decides the exit status
func reported(code mderror.Code) error {
	return mderror.Wrap(errReported, "errors reported").WithCode(code)
}

// ExitCode returns the process exit status for an error returned by Execute
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mderror.GetCode(err).ExitCode()
}

// globalState is shared by all commands of one invocation
type globalState struct {
	cfgFile   string
	verbose   bool
	logFormat string

	config *config.Config
	logger *mdlog.Logger
}

func newRootCmd() *cobra.Command {
	gs := &globalState{}

	rootCmd := &cobra.Command{
		Use:   "ecmarkdown",
		Short: "ecmarkdown - markup for standards document algorithms",
		Long: `ecmarkdown converts the markup used in standards document algorithms into HTML.

Commands:
  render        - render algorithms or fragments to HTML
  tokens        - show the token stream of a source
  tree          - dump the parsed tree as YAML or JSON
  nonterminals  - list the grammar nonterminals a source references
  explore       - browse a source interactively`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return gs.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&gs.cfgFile, "config", "", "config file (default: search ./.ecmarkdown.toml and the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&gs.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&gs.logFormat, "log-format", "", "log format: text, json or logfmt")

	rootCmd.AddCommand(
		newRenderCmd(gs),
		newTokensCmd(gs),
		newTreeCmd(gs),
		newNonTerminalsCmd(gs),
		newExploreCmd(gs),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func (gs *globalState) init(cmd *cobra.Command) error {
	defaults := render.Defaults()
	defaults["log.level"] = "warn"
	defaults["log.format"] = "text"

	var err error
	if gs.cfgFile != "" {
		gs.config, err = config.LoadWithOptions(gs.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  defaults,
		})
	} else {
		opts := config.DefaultDiscoveryOptions()
		opts.Defaults = defaults
		gs.config, err = config.Discover(opts)
	}
	if err != nil {
		return err
	}

	level, err := mdlog.ParseLevel(gs.config.GetString("log.level"))
	if err != nil {
		return mderror.Wrap(err, "invalid log level").
			WithCode(mderror.CodeInvalidConfig).
			WithOperation("cmd.init")
	}
	if gs.verbose {
		level = mdlog.LevelDebug
	}

	format, err := mdlog.ParseFormat(stringx.FirstNonBlank(gs.logFormat, gs.config.GetString("log.format")))
	if err != nil {
		return mderror.Wrap(err, "invalid log format").
			WithCode(mderror.CodeInvalidConfig).
			WithOperation("cmd.init")
	}

	gs.logger = mdlog.NewWithConfig(mdlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "ecmarkdown",
	})
	mdlog.SetDefault(gs.logger)

	gs.logger.Debug("Configuration loaded", mdlog.Fields{
		"file":   gs.config.FilePath(),
		"format": gs.config.Format().String(),
	})
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("error:"), err)
}
