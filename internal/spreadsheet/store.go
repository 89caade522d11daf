package spreadsheet

import "strings"

// knownStores liga os nomes de loja usados no ZSBMS aos identificadores estáveis do dashboard.
var knownStores = map[string]string{
	"lupita pizza - cais do sodre":    "cais_sodre",
	"lupita pizza cais do sodre":      "cais_sodre",
	"lupita pizza - principe real":    "principe_real",
	"lupita pizza principe real":      "principe_real",
	"lupita pizza - alvalade":         "alvalade",
	"lupita pizza alvalade":           "alvalade",
	"lupita pizza - campo de ourique": "campo_ourique",
	"lupita pizza campo de ourique":   "campo_ourique",
	"lupita pizza - porto":            "porto",
	"lupita pizza porto":              "porto",
}

// StoreResolver converte o nome da loja no identificador usado nas tabelas. Nomes sem
// correspondência caem no slug do próprio nome, sempre o mesmo para o mesmo texto.
type StoreResolver struct {
	names map[string]string
}

// NewStoreResolver combina a tabela fixa com os overrides vindos da configuração.
func NewStoreResolver(overrides map[string]string) *StoreResolver {
	names := make(map[string]string, len(knownStores)+len(overrides))
	for name, id := range knownStores {
		names[name] = id
	}
	for name, id := range overrides {
		if id = strings.TrimSpace(id); id != "" {
			names[Normalize(name)] = id
		}
	}
	return &StoreResolver{names: names}
}

// Resolve devolve o identificador da loja, ou "" quando o nome está vazio.
func (r *StoreResolver) Resolve(raw string) string {
	name := Normalize(raw)
	if name == "" {
		return ""
	}
	if id, ok := r.names[name]; ok {
		return id
	}
	return Slugify(name)
}
