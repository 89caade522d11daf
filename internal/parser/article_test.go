package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/restaurant-analytics-api/internal/spreadsheet"
)

func TestParser_Article(t *testing.T) {
	grid := spreadsheet.Grid{
		{"Vendas por Artigo"},
		{"01-03-2025 a 31-03-2025"},
		{},
		{},
		{},
		{"Cód.", "Artigo", "Família", "Subfamília", "Quantidade", "Total s/ IVA", "Total c/ IVA"},
		{"Loja - Lupita Pizza - Alvalade"},
		{"P001", "Pizza Margherita", "Pizzas", "Clássicas", "10", "100,00", "123,00"},
		{"M001", "@ Extra Queijo", "Extras", "", "4", "4,00", "4,92"},
		{"B002", "Água", "Bebidas", "", "5", "0", "0"},
		{"", "Sem Código", "Pizzas", "", "1", "8,13", "10,00"},
		{"P001", "Pizza Margherita", "Pizzas", "Clássicas", "2", "20,00", "24,60"},
		{"Familia - Pizzas", "", "", "", "12", "120,00", "147,60"},
		{"Total", "", "", "", "12", "128,13", "157,60"},
	}

	res := newTestParser().Article(grid)

	require.Len(t, res.Rows, 2)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "sem código")
	assert.Equal(t, "2025-03-01", res.PeriodFrom)
	assert.Equal(t, "2025-03-31", res.PeriodTo)
	assert.Equal(t, []string{"alvalade"}, res.Stores)

	for _, row := range res.Rows {
		assert.Equal(t, "alvalade", row.StoreID)
		assert.Equal(t, "P001", row.ArticleCode)
		assert.Equal(t, "Pizzas", row.Family)
		assert.Equal(t, "Clássicas", row.Subfamily)
		assert.Equal(t, "2025-03-01", row.PeriodFrom)
		assert.Equal(t, "2025-03-31", row.PeriodTo)
	}
	assert.InDelta(t, 10.0, res.Rows[0].Quantity, 1e-9)
	assert.InDelta(t, 123.0, res.Rows[0].GrossTotal, 1e-9)
}

func TestParser_Article_PeriodFromRows(t *testing.T) {
	grid := spreadsheet.Grid{
		{"Vendas por Artigo"},
		{},
		{},
		{"Loja", "Data", "Código", "Artigo", "Qtd", "Total c/ IVA"},
		{"Lupita Pizza - Porto", "02-03-2025", "P001", "Pizza Diavola", "3", "36,00"},
		{"Lupita Pizza - Porto", "05-03-2025", "P001", "Pizza Diavola", "1", "12,00"},
	}

	res := newTestParser().Article(grid)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, "2025-03-02", res.PeriodFrom)
	assert.Equal(t, "2025-03-05", res.PeriodTo)
	assert.Equal(t, "2025-03-02", res.Rows[0].Date)
	assert.Equal(t, "2025-03-02", res.Rows[1].PeriodFrom)
}

func TestParser_Article_WithoutPeriod(t *testing.T) {
	grid := spreadsheet.Grid{
		{}, {}, {},
		{"Loja", "Código", "Artigo", "Total c/ IVA"},
		{"Lupita Pizza - Porto", "P001", "Pizza Diavola", "36,00"},
	}

	res := newTestParser().Article(grid)

	assert.Empty(t, res.Rows)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[len(res.Errors)-1], "período")
}
