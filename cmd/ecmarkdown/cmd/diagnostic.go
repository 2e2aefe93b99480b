package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/msto63/ecmarkdown/foundation/markup/parser"
	"github.com/msto63/ecmarkdown/foundation/utils/stringx"
)

const tabWidth = 4

// reportError prints err for the source name. Syntax errors are shown with
// the offending line and a caret under the column.
func reportError(w io.Writer, name, src string, err error) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Fprint(w, formatDiagnostic(name, src, syntaxErr))
		return
	}
	fmt.Fprintf(w, "%s %s: %v\n", errorStyle.Render("error:"), name, err)
}

// formatDiagnostic renders:
//
//	error: Unexpected token ul; expected EOF
//	  --> steps.emd:2:1
//	   |
//	 2 | * b
//	   | ^
func formatDiagnostic(name, src string, se *parser.SyntaxError) string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("error:"))
	b.WriteString(" ")
	b.WriteString(messageStyle.Render(se.Message))
	b.WriteString("\n")
	b.WriteString(locationStyle.Render(fmt.Sprintf("  --> %s:%d:%d", name, se.Line, se.Column)))
	b.WriteString("\n")

	lines := strings.Split(src, "\n")
	if se.Line < 1 || se.Line > len(lines) {
		return b.String()
	}
	line := strings.TrimSuffix(lines[se.Line-1], "\r")

	col := se.Column - 1
	if col > len(line) {
		col = len(line)
	}
	if col < 0 {
		col = 0
	}
	indent := utf8.RuneCountInString(stringx.ExpandTabs(line[:col], tabWidth))

	number := strconv.Itoa(se.Line)
	empty := strings.Repeat(" ", len(number)+1) + "|"

	b.WriteString(gutterStyle.Render(empty))
	b.WriteString("\n")
	b.WriteString(gutterStyle.Render(stringx.PadLeft(number, len(number)+1, ' ') + " |"))
	b.WriteString(" ")
	b.WriteString(stringx.ExpandTabs(line, tabWidth))
	b.WriteString("\n")
	b.WriteString(gutterStyle.Render(empty))
	b.WriteString(" ")
	b.WriteString(strings.Repeat(" ", indent))
	b.WriteString(caretStyle.Render("^"))
	b.WriteString("\n")
	return b.String()
}
