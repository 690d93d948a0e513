package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tab and formfeed become spaces", "a\tb\fc", "a b c"},
		{"crlf becomes lf", "ligne une\r\nligne deux", "ligne une\nligne deux"},
		{"bare cr becomes lf", "ligne une\rligne deux", "ligne une\nligne deux"},
		{"spurious wrap rejoined", "le tribunal \nstatue", "le tribunal statue"},
		{"hyphen wrap rejoined", "contra-\nvention", "contra-vention"},
		{"paragraph break kept", "attendu que\n\nPar ces motifs", "attendu que\n\nPar ces motifs"},
		{"multi space collapsed", "a    b", "a b"},
		{"nbsp becomes space", "article 7", "article 7"},
		{"smart quotes straightened", "l’arrêt “motivé”", `l'arrêt "motivé"`},
		{"dashes and ellipsis", "a – b — c…", "a - b - c..."},
		{"oe ligature expanded", "œuvre et Œuvre", "oeuvre et OEuvre"},
		{"bom dropped", string(rune(0xfeff)) + "texte", "texte"},
		{"control codes dropped", "gref" + string(rune(0x01)) + "fe" + string(rune(0x7f)), "greffe"},
		{"adjacent nbsp run collapsed", "article" + strings.Repeat(string(rune(0x00a0)), 2) + "7", "article 7"},
		{"nbsp after plain space collapsed", "article " + string(rune(0x00a0)) + "7", "article 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Le tribunal \nde commerce,\tstatuant publiquement :\r\n– déboute…",
		"contra-\nvention   multiple\f",
		"déjà propre\n\nsur deux paragraphes",
		"article" + strings.Repeat(string(rune(0x00a0)), 3) + "7 du code",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "second pass must be a no-op")
	}
}
