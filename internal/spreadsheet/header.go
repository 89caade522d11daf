package spreadsheet

import "strings"

// ColumnSpec descreve um campo lógico e os textos de cabeçalho que o identificam,
// do mais específico para o mais genérico.
type ColumnSpec struct {
	Field    string
	Patterns []string
	Required bool
}

// Columns mapeia o campo lógico para o índice da coluna na planilha.
type Columns map[string]int

// Has indica se o campo foi encontrado no cabeçalho.
func (c Columns) Has(field string) bool {
	_, ok := c[field]
	return ok
}

// Text devolve o valor da célula do campo na linha, ou "" quando o campo não existe.
func (c Columns) Text(row []string, field string) string {
	idx, ok := c[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (c Columns) Float(row []string, field string) float64 {
	return ParseNumber(c.Text(row, field))
}

func (c Columns) Int(row []string, field string) int {
	return ParseInt(c.Text(row, field))
}

// FindHeaderRow devolve o índice da primeira linha, dentro da janela [from, to], que contém
// todos os marcadores. Linhas com uma única célula preenchida são títulos e nunca cabeçalhos.
// Devolve -1 quando nenhuma linha corresponde.
func FindHeaderRow(grid Grid, from, to int, markers ...string) int {
	if from < 0 {
		from = 0
	}
	for r := from; r <= to && r < len(grid); r++ {
		if filledCells(grid[r]) < 2 {
			continue
		}
		if RowHasMarkers(grid[r], markers...) {
			return r
		}
	}
	return -1
}

func filledCells(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}

// RowHasMarkers indica se todos os marcadores aparecem em alguma célula da linha.
func RowHasMarkers(row []string, markers ...string) bool {
	if len(markers) == 0 {
		return false
	}
	for _, marker := range markers {
		found := false
		for _, cell := range row {
			if MatchesMarker(cell, marker) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// MapColumns constrói o mapa campo -> coluna a partir do texto do cabeçalho. Primeiro aceita
// correspondências exatas e depois correspondências por substring, nunca reutilizando uma
// coluna já atribuída. Devolve também os campos obrigatórios que não foram encontrados.
func MapColumns(header []string, specs []ColumnSpec) (Columns, []string) {
	normalized := make([]string, len(header))
	for i, cell := range header {
		normalized[i] = Normalize(cell)
	}

	columns := make(Columns, len(specs))
	claimed := make(map[int]bool, len(specs))

	assign := func(spec ColumnSpec, match func(cell, pattern string) bool) {
		if columns.Has(spec.Field) {
			return
		}
		for _, pattern := range spec.Patterns {
			p := Normalize(pattern)
			for i, cell := range normalized {
				if cell == "" || claimed[i] {
					continue
				}
				if match(cell, p) {
					columns[spec.Field] = i
					claimed[i] = true
					return
				}
			}
		}
	}

	for _, spec := range specs {
		assign(spec, func(cell, pattern string) bool { return cell == pattern })
	}
	for _, spec := range specs {
		assign(spec, strings.Contains)
	}

	var missing []string
	for _, spec := range specs {
		if spec.Required && !columns.Has(spec.Field) {
			missing = append(missing, spec.Field)
		}
	}

	return columns, missing
}
