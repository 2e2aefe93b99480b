package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	mdlog "github.com/msto63/ecmarkdown/foundation/core/log"
	"github.com/msto63/ecmarkdown/internal/render"
)

type renderFlags struct {
	mode           string
	trackPositions bool
	reindent       bool
	workers        int
}

func newRenderCmd(gs *globalState) *cobra.Command {
	flags := &renderFlags{}

	renderCmd := &cobra.Command{
		Use:   "render [files...]",
		Short: "Render sources to HTML",
		Long: `Render one or more ecmarkdown sources to HTML.

Without file arguments the source is read from standard input. Each source is
parsed as an algorithm (an ordered list) or, with --mode fragment, as a run of
inline content. The HTML of each source is written to standard output in
argument order; syntax errors are reported on standard error.`,
		Example: `  ecmarkdown render steps.emd
  echo '1. Let _x_ be *true*.' | ecmarkdown render
  ecmarkdown render --mode fragment --reindent a.emd b.emd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, gs, flags, args)
		},
	}

	renderCmd.Flags().StringVarP(&flags.mode, "mode", "m", "", "parse mode: algorithm or fragment (default from config)")
	renderCmd.Flags().BoolVar(&flags.trackPositions, "track-positions", false, "record source positions while parsing")
	renderCmd.Flags().BoolVar(&flags.reindent, "reindent", false, "strip list indentation from multi-line text")
	renderCmd.Flags().IntVarP(&flags.workers, "workers", "w", 0, "number of concurrent renderers (default from config)")

	return renderCmd
}

func runRender(cmd *cobra.Command, gs *globalState, flags *renderFlags, args []string) error {
	cfg, err := renderConfig(cmd, gs, flags)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{""}
	}

	stderr := cmd.ErrOrStderr()
	failed := 0
	code := mderror.CodeUnknown
	fail := func(err error) {
		if failed == 0 {
			code = mderror.GetCode(err)
		}
		failed++
	}
	reqs := make([]render.Request, 0, len(args))
	for _, path := range args {
		name, src, err := readSource(cmd, path)
		if err != nil {
			reportError(stderr, name, "", err)
			fail(err)
			continue
		}
		reqs = append(reqs, render.Request{Name: name, Source: src})
	}

	svc := render.NewService(cfg, gs.logger)
	results := svc.RenderBatch(cmd.Context(), reqs)

	out := cmd.OutOrStdout()
	for i, res := range results {
		if res.Err != nil {
			reportError(stderr, res.Name, reqs[i].Source, res.Err)
			fail(res.Err)
			continue
		}
		fmt.Fprintln(out, res.HTML)
	}

	stats := svc.Stats()
	gs.logger.Debug("Render finished", mdlog.Fields{
		"sources":    len(args),
		"failed":     failed,
		"cache_hits": stats.Hits,
	})

	if failed > 0 {
		return reported(code)
	}
	return nil
}

// renderConfig builds the service configuration from the loaded config,
// overridden by flags the user set explicitly
func renderConfig(cmd *cobra.Command, gs *globalState, flags *renderFlags) (render.Config, error) {
	cfg, err := render.ConfigFrom(gs.config)
	if err != nil {
		return render.Config{}, err
	}

	f := cmd.Flags()
	if f.Changed("mode") {
		mode, err := render.ParseMode(flags.mode)
		if err != nil {
			return render.Config{}, err
		}
		cfg.Mode = mode
	}
	if f.Changed("track-positions") {
		cfg.TrackPositions = flags.trackPositions
	}
	if f.Changed("reindent") {
		cfg.Reindent = flags.reindent
	}
	if f.Changed("workers") && flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	return cfg, nil
}
