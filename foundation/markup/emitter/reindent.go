// File: reindent.go
// Title: Reindent Matchers
// Description: Compiled newline-plus-indent matchers, cached per width.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package emitter

import (
	"fmt"
	"regexp"
)

// maxRepeat is the largest repetition count regexp accepts
const maxRepeat = 1000

// stripCache holds one matcher per indent width. It belongs to a single
// emitter.
type stripCache struct {
	byWidth map[int]*regexp.Regexp
}

func newStripCache() *stripCache {
	return &stripCache{byWidth: make(map[int]*regexp.Regexp)}
}

// get returns a matcher for a newline followed by up to width blanks
func (c *stripCache) get(width int) *regexp.Regexp {
	if width > maxRepeat {
		width = maxRepeat
	}
	if re, ok := c.byWidth[width]; ok {
		return re
	}
	re := regexp.MustCompile(fmt.Sprintf(`\n[ \t]{0,%d}`, width))
	c.byWidth[width] = re
	return re
}
