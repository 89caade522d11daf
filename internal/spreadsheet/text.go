package spreadsheet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents remove marcas diacríticas ("Família" -> "Familia").
// Um transformer novo por chamada: a cadeia guarda estado e não é segura entre goroutines.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize devolve o texto em minúsculas, sem acentos e com espaços colapsados.
func Normalize(s string) string {
	s = strings.ToLower(stripAccents(strings.TrimSpace(s)))
	return strings.Join(strings.Fields(s), " ")
}

// Slugify gera um identificador estável: "Lupita Pizza - Testing (9)" -> "lupita_pizza_testing_9".
func Slugify(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range Normalize(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// MatchesMarker indica se a célula corresponde a um marcador de cabeçalho ("Zona", "Hora", ...).
// O marcador tem de aparecer como palavra inteira, aceitando o plural simples: "Nº Tickets" e
// "Hora (30 min)" correspondem a "Ticket" e "Hora".
func MatchesMarker(cell, marker string) bool {
	m := Normalize(marker)
	if m == "" {
		return false
	}
	for _, word := range words(Normalize(cell)) {
		if word == m || word == m+"s" {
			return true
		}
	}
	return false
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// FirstText devolve o primeiro valor não vazio da linha.
func FirstText(row []string) string {
	for _, cell := range row {
		if v := strings.TrimSpace(cell); v != "" {
			return v
		}
	}
	return ""
}

// IsEmptyRow indica se todas as células da linha estão vazias.
func IsEmptyRow(row []string) bool {
	return FirstText(row) == ""
}
