// File: doc.go
// Title: Markup Emitter Package Documentation
// Description: HTML rendering of ecmarkdown trees.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial emitter implementation

/*
Package emitter renders ecmarkdown trees as HTML.

Each node kind has one rendering:

	algorithm    <emu-alg>...</emu-alg>
	ordered list <ol start="N">...</ol> (start omitted when 1)
	unordered    <ul>...</ul>
	list item    <li key="value">contents sublist</li>
	star         <emu-val>...</emu-val>
	underscore   <var>...</var>
	tick         <code>...</code>
	tilde        <emu-const>...</emu-const>
	pipe         <emu-nt params="..." optional>Name</emu-nt>

Text, tags, comments, opaque tags and block tags are written verbatim. The
output is not beautified.

With Options.Reindent, text inside a list loses up to the list's indent in
blanks after every newline, so continuation lines are not indented twice
once the HTML is pretty printed.
*/
package emitter
