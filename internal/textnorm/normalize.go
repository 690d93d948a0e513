// Package textnorm cleans decision text before mapping: line-wrap repair,
// whitespace collapsing, and substitution of mis-decoded legacy characters.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	reTabFF      = regexp.MustCompile(`[\t\f]`)
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reWrap       = regexp.MustCompile(`( )\n(\S)`)
	reHyphenWrap = regexp.MustCompile(`(\S-)\n(\S)`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
)

// replacements maps mis-decoded legacy characters to their plain equivalents.
// Stray control codes map to the empty string. Unmapped runes pass through.
var replacements = map[rune]string{
	0x00a0: " ",   // no-break space
	0x2007: " ",   // figure space
	0x202f: " ",   // narrow no-break space
	0x2018: "'",   // left single quote
	0x2019: "'",   // right single quote
	0x201a: "'",   // single low quote
	0x201c: `"`,   // left double quote
	0x201d: `"`,   // right double quote
	0x201e: `"`,   // double low quote
	0x2013: "-",   // en dash
	0x2014: "-",   // em dash
	0x2026: "...", // ellipsis
	'œ':    "oe",
	'Œ':    "OE",
	0xfb01: "fi", // fi ligature
	0xfb02: "fl", // fl ligature
	0xfeff: "",   // BOM
}

func init() {
	// Drop C0 control codes and DEL, keeping the whitespace the earlier
	// regex passes rely on.
	for r := rune(0x00); r <= 0x1f; r++ {
		switch r {
		case '\t', '\n', '\f', '\r':
			continue
		}
		replacements[r] = ""
	}
	replacements[0x7f] = ""
}

// Normalize cleans raw decision text. Total, deterministic and idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}
	s := reTabFF.ReplaceAllString(raw, " ")
	s = reCRLF.ReplaceAllString(s, "\n")
	// "word \ntext" is a spurious wrap, not a paragraph break.
	s = reWrap.ReplaceAllString(s, "$1$2")
	// rejoin hyphen-broken words: "contra-\nvention" -> "contra-vention"
	s = reHyphenWrap.ReplaceAllString(s, "$1$2")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = substitute(s)
	// Substitution can turn adjacent runes into plain spaces; collapse again.
	return reMultiSpace.ReplaceAllString(s, " ")
}

func substitute(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := replacements[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
