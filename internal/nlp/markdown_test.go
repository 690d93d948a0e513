package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Le tribunal statue.", "Le tribunal statue."},
		{"heading stripped", "# Jugement\n\ntexte", "Jugement\n\ntexte"},
		{"emphasis stripped", "le tribunal **déboute** la _demanderesse_", "le tribunal déboute la demanderesse"},
		{"link keeps label", "voir [l'annexe](http://example.com/a.pdf)", "voir l'annexe"},
		{"image dropped", "![sceau](http://example.com/s.png)texte", "texte"},
		{"inline code unwrapped", "article `1240` du code civil", "article 1240 du code civil"},
		{"html tags dropped", "texte <br/> suite", "texte  suite"},
		{"blockquote unwrapped", "> attendu que", "attendu que"},
		{"list markers dropped", "- premier moyen\n- second moyen", "premier moyen\nsecond moyen"},
		{"table pipes flattened", "| nom | rôle |\n| Dupont | demandeur |", "nom   rôle  \n Dupont   demandeur"},
		{"surrounding whitespace trimmed", "\n\ntexte\n\n", "texte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkdownToPlainText(tt.in))
		})
	}
}
