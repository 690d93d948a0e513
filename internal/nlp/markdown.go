package nlp

import (
	"regexp"
	"strings"
)

var (
	reHTMLTag    = regexp.MustCompile(`<[^>]+>`)
	reHeading    = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	reEmphasis   = regexp.MustCompile(`(\*{1,3}|_{1,3})([^*_]+)(\*{1,3}|_{1,3})`)
	reLink       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	reImage      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	reCodeFence  = regexp.MustCompile("(?m)^```[^\n]*$")
	reInlineCode = regexp.MustCompile("`([^`]*)`")
	reHRule      = regexp.MustCompile(`(?m)^(\s*[-*_]){3,}\s*$`)
	reListMarker = regexp.MustCompile(`(?m)^\s*([-*+]|\d+\.)\s+`)
	reBlockquote = regexp.MustCompile(`(?m)^>\s?`)
	reTablePipe  = regexp.MustCompile(`(?m)^\|`)
)

// MarkdownToPlainText strips the markup the extraction service produces and
// returns plain decision text.
func MarkdownToPlainText(md string) string {
	s := reImage.ReplaceAllString(md, "")
	s = reLink.ReplaceAllString(s, "$1")
	s = reCodeFence.ReplaceAllString(s, "")
	s = reInlineCode.ReplaceAllString(s, "$1")
	s = reHTMLTag.ReplaceAllString(s, "")
	s = reHeading.ReplaceAllString(s, "")
	s = reEmphasis.ReplaceAllString(s, "$2")
	s = reHRule.ReplaceAllString(s, "")
	s = reBlockquote.ReplaceAllString(s, "")
	s = reListMarker.ReplaceAllString(s, "")
	s = reTablePipe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "|", " ")
	return strings.TrimSpace(s)
}
