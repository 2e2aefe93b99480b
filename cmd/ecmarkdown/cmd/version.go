package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/ecmarkdown/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	var short bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// no config or logger needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version.Toolkit)
				return
			}
			fmt.Fprintln(out, version.String())
			for _, c := range []string{"parser", "emitter", "renderer", "cli"} {
				fmt.Fprintf(out, "  %-9s %s\n", c, version.ComponentVersion(c))
			}
			fmt.Fprintf(out, "  go        %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}

	versionCmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return versionCmd
}
