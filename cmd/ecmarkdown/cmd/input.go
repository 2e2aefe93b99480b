package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
)

const stdinName = "<stdin>"

// readSource reads path, or standard input when path is empty or "-"
func readSource(cmd *cobra.Command, path string) (name, src string, err error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return stdinName, "", mderror.Wrap(err, "failed to read standard input").
				WithCode(mderror.CodeIO).
				WithOperation("cmd.readSource")
		}
		return stdinName, string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := mderror.CodeIO
		if os.IsNotExist(err) {
			code = mderror.CodeNotFound
		}
		return path, "", mderror.Wrap(err, "failed to read source").
			WithCode(code).
			WithOperation("cmd.readSource").
			WithDetail("path", path)
	}
	return path, string(data), nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
