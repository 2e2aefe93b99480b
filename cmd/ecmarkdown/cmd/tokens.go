package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdlog "github.com/msto63/ecmarkdown/foundation/core/log"
	"github.com/msto63/ecmarkdown/foundation/markup/parser"
	"github.com/msto63/ecmarkdown/foundation/utils/stringx"
)

const maxTokenContents = 40

func newTokensCmd(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a source",
		Long: `Print the tokens of a source, one per line, as

  line:column  type  contents

Contents are quoted and truncated. Reads standard input when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readSource(cmd, firstArg(args))
			if err != nil {
				return err
			}

			t := parser.NewTokenizer(src, parser.TokenizerOptions{TrackPositions: true})
			out := cmd.OutOrStdout()
			count := 0
			for {
				tok := t.Next()
				pos := t.Position(tok.Start)
				where := strconv.Itoa(pos.Line) + ":" + strconv.Itoa(pos.Column)
				contents := strconv.Quote(stringx.Truncate(tok.Contents, maxTokenContents, "..."))
				switch tok.Type {
				case parser.TokenHeader:
					contents += " level=" + strconv.Itoa(tok.Level)
				case parser.TokenAttr:
					contents = fmt.Sprintf("%s=%q", tok.Key, tok.Value)
				}
				fmt.Fprintf(out, "%-8s %-12s %s\n", where, tok.Type, contents)
				count++
				if tok.Type == parser.TokenEOF {
					break
				}
			}

			gs.logger.Debug("Tokenized source", mdlog.Fields{"source": name, "tokens": count})
			return nil
		},
	}
}
