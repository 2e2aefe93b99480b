package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	"github.com/msto63/ecmarkdown/foundation/markup/ast"
)

func newNonTerminalsCmd(gs *globalState) *cobra.Command {
	var mode string

	ntCmd := &cobra.Command{
		Use:     "nonterminals [file]",
		Aliases: []string{"nt"},
		Short:   "List referenced grammar nonterminals",
		Long: `List the names of the grammar nonterminals a source references with
|Name| spans, in order of first appearance, one per line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMode(cmd, gs, mode)
			if err != nil {
				return err
			}
			name, src, err := readSource(cmd, firstArg(args))
			if err != nil {
				return err
			}

			res, err := parseSource(gs, m, src, false)
			if err != nil {
				reportError(cmd.ErrOrStderr(), name, src, err)
				return reported(mderror.CodeSyntax)
			}

			seen := make(map[string]bool)
			out := cmd.OutOrStdout()
			for _, n := range res.nodes() {
				for _, nt := range ast.NonTerminals(n) {
					if seen[nt] {
						continue
					}
					seen[nt] = true
					fmt.Fprintln(out, nt)
				}
			}
			return nil
		},
	}

	ntCmd.Flags().StringVarP(&mode, "mode", "m", "", "parse mode: algorithm or fragment (default from config)")
	return ntCmd
}
