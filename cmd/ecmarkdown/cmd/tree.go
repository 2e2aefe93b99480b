package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	"github.com/msto63/ecmarkdown/foundation/markup/ast"
)

func newTreeCmd(gs *globalState) *cobra.Command {
	var (
		mode      string
		format    string
		positions bool
	)

	treeCmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Dump the parsed tree",
		Long: `Parse a source and dump its tree as YAML or JSON.

Every node is written with its "name" and its child fields. With --positions
each node also carries its source location.`,
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

			res, err := parseSource(gs, m, src, positions)
			if err != nil {
				reportError(cmd.ErrOrStderr(), name, src, err)
				return reported(mderror.CodeSyntax)
			}

			var doc interface{}
			if res.algorithm != nil {
				doc = ast.ToMap(res.algorithm)
			} else {
				doc = ast.FragmentToMaps(res.fragment)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml", "yml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(doc); err != nil {
					return mderror.Wrap(err, "failed to encode tree").WithCode(mderror.CodeIO)
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(doc); err != nil {
					return mderror.Wrap(err, "failed to encode tree").WithCode(mderror.CodeIO)
				}
				return nil
			}
			return mderror.Newf("unknown tree format %q", format).
				WithCode(mderror.CodeInvalidInput).
				WithOperation("cmd.tree")
		},
	}

	treeCmd.Flags().StringVarP(&mode, "mode", "m", "", "parse mode: algorithm or fragment (default from config)")
	treeCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	treeCmd.Flags().BoolVar(&positions, "positions", false, "include source locations")

	return treeCmd
}
