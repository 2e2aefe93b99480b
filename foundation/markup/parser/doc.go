// File: doc.go
// Title: Markup Parser Package Documentation
// Description: Tokenizer and recursive descent parser for ecmarkdown.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

/*
Package parser turns ecmarkdown source into the tree defined by package ast.

# Tokenizer

The Tokenizer produces tokens lazily. Peek looks ahead without consuming,
Next consumes; the EOF token is never consumed, so Next keeps returning it.
Constructs that only exist at the start of a line are recognized there:

	1. item          ordered list marker
	* item           unordered list marker
	## Heading       header (levels 1 to 6)
	<emu-note>...    block tag, up to the end of the line
	<pre>...</pre>   opaque tag, up to its closing tag
	<!-- ... -->     comment, taken as a block tag to the end of the line

Elsewhere the tokenizer yields format markers (* _ ` | ~), text, whitespace,
linebreaks, paragraph breaks, tags and comments. A backslash before a format
character or another backslash yields the character as text.

# Parser

ParseAlgorithm expects a single ordered list; ParseFragment parses inline
content:

	frag, err := parser.ParseFragment("Let *x* be |Foo|.", parser.Options{})

Markup that cannot be parsed as intended is kept as literal text. Only an
unexpected token at the end of an entry point is an error, returned as a
*SyntaxError with its line and column.

Adjacent text never appears as two nodes: the parser joins it into a new
node as fragments are built.
*/
package parser
