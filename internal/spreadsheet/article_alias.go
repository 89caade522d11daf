package spreadsheet

import "strings"

// defaultArticleAliases junta variantes cosméticas do mesmo artigo. As chaves já estão normalizadas.
var defaultArticleAliases = map[string]string{
	"molho ranch":          "Molho Ranch Fumado",
	"ranch sauce":          "Molho Ranch Fumado",
	"smoked ranch":         "Molho Ranch Fumado",
	"molho ranch fumado":   "Molho Ranch Fumado",
	"molho de alho":        "Molho de Alho",
	"garlic sauce":         "Molho de Alho",
	"garlic dip":           "Molho de Alho",
	"pao de alho":          "Pão de Alho",
	"garlic bread":         "Pão de Alho",
	"coca cola":            "Coca-Cola",
	"coca-cola":            "Coca-Cola",
	"coca cola zero":       "Coca-Cola Zero",
	"coca-cola zero":       "Coca-Cola Zero",
	"coke zero":            "Coca-Cola Zero",
	"agua":                 "Água",
	"agua 50cl":            "Água",
	"water":                "Água",
	"limonada caseira":     "Limonada",
	"homemade lemonade":    "Limonada",
	"tiramisu":             "Tiramisù",
	"pizza margherita":     "Margherita",
	"margarita":            "Margherita",
	"pizza margarita":      "Margherita",
	"pizza pepperoni":      "Pepperoni",
	"pizza de pepperoni":   "Pepperoni",
	"pizza quatro queijos": "Quatro Queijos",
	"pizza 4 queijos":      "Quatro Queijos",
	"4 queijos":            "Quatro Queijos",
	"four cheese":          "Quatro Queijos",
}

// ArticleAliases converte nomes de artigos na forma canónica usada nas agregações.
type ArticleAliases struct {
	table map[string]string
}

// NewArticleAliases junta a tabela embutida com extra (nome -> canónico). As chaves de extra
// são normalizadas.
func NewArticleAliases(extra map[string]string) *ArticleAliases {
	table := make(map[string]string, len(defaultArticleAliases)+len(extra))
	for k, v := range defaultArticleAliases {
		table[k] = v
	}
	for k, v := range extra {
		table[Normalize(k)] = strings.TrimSpace(v)
	}
	return &ArticleAliases{table: table}
}

// Canonical devolve o nome canónico do artigo; sem alias, o próprio nome com espaços colapsados.
func (a *ArticleAliases) Canonical(name string) string {
	if canonical, ok := a.table[Normalize(name)]; ok {
		return canonical
	}
	return strings.Join(strings.Fields(name), " ")
}

// Key identifica o balde de agregação: nomes que diferem só em caixa ou acentos caem no mesmo.
func (a *ArticleAliases) Key(name string) string {
	return Normalize(a.Canonical(name))
}
