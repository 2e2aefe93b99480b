package cmd

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/ecmarkdown/internal/render"
	"github.com/msto63/ecmarkdown/internal/tui/explorer"
)

func newExploreCmd(gs *globalState) *cobra.Command {
	var (
		mode  string
		watch time.Duration
	)

	exploreCmd := &cobra.Command{
		Use:   "explore [file]",
		Short: "Browse tokens, tree and HTML interactively",
		Long: `Open an interactive terminal view of one source.

The views show the rendered HTML, the parsed tree, the token stream and the
referenced nonterminals. When a file is given it is reloaded whenever it
changes on disk.

Keys: 1-4 or Tab switch views, r reloads, w toggles watching, q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := render.ConfigFrom(gs.config)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				if cfg.Mode, err = render.ParseMode(mode); err != nil {
					return err
				}
			}

			ecfg := explorer.Config{
				Service:       render.NewService(cfg, gs.logger),
				WatchInterval: watch,
			}
			opts := []tea.ProgramOption{
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			}
			path := firstArg(args)
			if path == "" || path == "-" {
				// stdin cannot be reread
				name, src, err := readSource(cmd, path)
				if err != nil {
					return err
				}
				ecfg.Name = name
				ecfg.Source = src
				opts = append(opts, tea.WithInputTTY())
			} else {
				ecfg.Path = path
			}

			return explorer.Run(ecfg, opts...)
		},
	}

	exploreCmd.Flags().StringVarP(&mode, "mode", "m", "", "parse mode: algorithm or fragment (default from config)")
	exploreCmd.Flags().DurationVar(&watch, "watch", time.Second, "watch the file for changes, polling at this interval when file events are unavailable (0 disables)")

	return exploreCmd
}
