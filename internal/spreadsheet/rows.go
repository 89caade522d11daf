package spreadsheet

import (
	"regexp"
	"strings"
)

var subtotalPrefixes = []string{"loja -", "zona -", "data -", "familia -", "subfamilia -"}

var companyFooterPattern = regexp.MustCompile(`\bnif\b|contribuinte|\blda\b|\bs\.a\.|unipessoal|processado por`)

// SubtotalLabel reconhece linhas de agrupamento ("Loja - Lupita Pizza - Alvalade") e devolve o
// tipo do grupo ("loja") e o valor ("Lupita Pizza - Alvalade").
func SubtotalLabel(row []string) (kind, value string, ok bool) {
	first := FirstText(row)
	normalized := Normalize(first)
	for _, prefix := range subtotalPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			kind = strings.TrimSuffix(prefix, " -")
			idx := strings.Index(first, "-")
			return kind, strings.TrimSpace(first[idx+1:]), true
		}
	}

	for _, prefix := range []string{"total loja", "total zona", "total data", "total familia", "subtotal"} {
		if strings.HasPrefix(normalized, prefix) {
			return "total", first, true
		}
	}

	return "", "", false
}

// IsSubtotalRow indica uma linha de agrupamento ou subtotal, que nunca é um registro.
func IsSubtotalRow(row []string) bool {
	_, _, ok := SubtotalLabel(row)
	return ok
}

// IsGrandTotalRow reconhece o rodapé de total geral, onde a leitura deve parar.
func IsGrandTotalRow(row []string) bool {
	if IsSubtotalRow(row) {
		return false
	}
	first := Normalize(FirstText(row))
	return first == "total" || first == "totais" || first == "total:" ||
		strings.HasPrefix(first, "total geral") || strings.HasPrefix(first, "total ")
}

// IsCompanyFooterRow reconhece as linhas de identificação da empresa (NIF, razão social).
func IsCompanyFooterRow(row []string) bool {
	for _, cell := range row {
		if companyFooterPattern.MatchString(Normalize(cell)) {
			return true
		}
	}
	return false
}

// IsModifierLabel indica uma linha de modificador/complemento ("@ Sem queijo").
func IsModifierLabel(name string) bool {
	return strings.HasPrefix(strings.TrimSpace(name), "@")
}
