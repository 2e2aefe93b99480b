package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/ecmarkdown/foundation/markup/ast"
	"github.com/msto63/ecmarkdown/foundation/markup/parser"
	"github.com/msto63/ecmarkdown/internal/render"
)

// parsed holds the result of parsing a source in either mode
type parsed struct {
	algorithm *ast.Algorithm
	fragment  []ast.FragmentNode
}

// nodes returns the top-level nodes of the parse result
func (p parsed) nodes() []ast.Node {
	if p.algorithm != nil {
		return []ast.Node{p.algorithm}
	}
	out := make([]ast.Node, len(p.fragment))
	for i, n := range p.fragment {
		out[i] = n
	}
	return out
}

// resolveMode returns the mode from the flag when set, else from the config
func resolveMode(cmd *cobra.Command, gs *globalState, flag string) (render.Mode, error) {
	if cmd.Flags().Changed("mode") {
		return render.ParseMode(flag)
	}
	return render.ParseMode(gs.config.GetString(render.KeyMode, string(render.DefaultConfig().Mode)))
}

func parseSource(gs *globalState, mode render.Mode, src string, track bool) (parsed, error) {
	opts := parser.Options{TrackPositions: track, Logger: gs.logger}
	if mode == render.ModeFragment {
		frag, err := parser.ParseFragment(src, opts)
		return parsed{fragment: frag}, err
	}
	alg, err := parser.ParseAlgorithm(src, opts)
	return parsed{algorithm: alg}, err
}
