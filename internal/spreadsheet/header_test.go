package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testDailySpecs = []ColumnSpec{
	{Field: "average_ticket", Patterns: []string{"ticket medio"}},
	{Field: "tickets", Patterns: []string{"tickets", "ticket"}, Required: true},
	{Field: "net", Patterns: []string{"total s/ iva", "liquido"}},
	{Field: "gross", Patterns: []string{"total c/ iva", "bruto", "total"}},
	{Field: "vat", Patterns: []string{"iva"}},
}

func TestMapColumns(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		validate func(t *testing.T, cols Columns, missing []string)
	}{
		{
			name:   "Correspondência exata tem prioridade sobre substring",
			header: []string{"Loja", "Ticket Médio", "Tickets", "Total s/ IVA", "IVA", "Total c/ IVA"},
			validate: func(t *testing.T, cols Columns, missing []string) {
				assert.Empty(t, missing)
				assert.Equal(t, 1, cols["average_ticket"])
				assert.Equal(t, 2, cols["tickets"])
				assert.Equal(t, 3, cols["net"])
				assert.Equal(t, 4, cols["vat"])
				assert.Equal(t, 5, cols["gross"])
			},
		},
		{
			name:   "Ordem de colunas diferente",
			header: []string{"Total c/ IVA", "IVA", "Nº Tickets", "Valor Líquido"},
			validate: func(t *testing.T, cols Columns, missing []string) {
				assert.Empty(t, missing)
				assert.Equal(t, 0, cols["gross"])
				assert.Equal(t, 1, cols["vat"])
				assert.Equal(t, 2, cols["tickets"])
				assert.Equal(t, 3, cols["net"])
				assert.False(t, cols.Has("average_ticket"))
			},
		},
		{
			name:   "Campo obrigatório ausente",
			header: []string{"Loja", "Total"},
			validate: func(t *testing.T, cols Columns, missing []string) {
				assert.Equal(t, []string{"tickets"}, missing)
				assert.Equal(t, 1, cols["gross"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, missing := MapColumns(tt.header, testDailySpecs)
			tt.validate(t, cols, missing)
		})
	}
}

func TestColumnsAccessors(t *testing.T) {
	cols := Columns{"name": 0, "qty": 1}
	row := []string{" Pizza ", "1.234,5"}

	assert.Equal(t, "Pizza", cols.Text(row, "name"))
	assert.InDelta(t, 1234.5, cols.Float(row, "qty"), 1e-9)
	assert.Equal(t, 1235, cols.Int(row, "qty"))
	assert.Equal(t, "", cols.Text(row, "missing"))
	assert.Equal(t, "", cols.Text([]string{"x"}, "qty"))
}

func TestFindHeaderRow(t *testing.T) {
	grid := Grid{
		{"Relatório de Vendas por Zona"},
		{"01-03-2025 a 31-03-2025"},
		{},
		{},
		{"Loja", "Data", "Zona", "Total"},
		{"Lupita Pizza - Alvalade", "01-03-2025", "Sala", "100"},
	}

	assert.Equal(t, 4, FindHeaderRow(grid, 3, 8, "Zona"))
	assert.Equal(t, -1, FindHeaderRow(grid, 3, 8, "Hora"))
	assert.Equal(t, -1, FindHeaderRow(grid, 0, 3, "Zona"))
}

func TestExtractPeriod(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		from string
		to   string
	}{
		{
			name: "Texto livre numa célula",
			grid: Grid{{"Vendas"}, {"Período: 01-03-2025 a 15-03-2025"}},
			from: "2025-03-01",
			to:   "2025-03-15",
		},
		{
			name: "Intervalo partido em células",
			grid: Grid{{"Vendas"}, {"01/03/2025", "a", "15/03/2025"}},
			from: "2025-03-01",
			to:   "2025-03-15",
		},
		{
			name: "Par rótulo/valor",
			grid: Grid{{"Data Inicial:", "", "01-03-2025"}, {"Data Final:", "15-03-2025"}},
			from: "2025-03-01",
			to:   "2025-03-15",
		},
		{
			name: "Sem período",
			grid: Grid{{"Vendas"}, {"Loja", "Data"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := ExtractPeriod(tt.grid, 5)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}
