package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/spreadsheet"
)

func TestParser_Zone(t *testing.T) {
	tests := []struct {
		name     string
		grid     spreadsheet.Grid
		validate func(t *testing.T, res *Result[domain.ZoneSale])
	}{
		{
			name: "Layout antigo de 6 colunas",
			grid: spreadsheet.Grid{
				{"Vendas por Zona"},
				{"01-03-2025 a 01-03-2025"},
				{},
				{},
				{"Loja", "Data", "Zona", "Total s/ IVA", "IVA", "Total c/ IVA"},
				{"Zona - Sala"},
				{"Lupita Pizza - Alvalade", "01-03-2025", "SALA", "813,01", "186,99", "1.000,00"},
				{"Lupita Pizza - Alvalade", "01-03-2025", "take away", "162,60", "37,40", "200,00"},
				{"Lupita Pizza - Alvalade", "01-03-2025", "Glovo", "81,30", "18,70", "100,00"},
				{"Total Geral", "", "", "1.056,91", "243,09", "1.300,00"},
			},
			validate: func(t *testing.T, res *Result[domain.ZoneSale]) {
				require.Len(t, res.Rows, 3)
				assert.Empty(t, res.Errors)
				assert.Equal(t, spreadsheet.ZoneSala, res.Rows[0].Zone)
				assert.Equal(t, spreadsheet.ZoneTakeaway, res.Rows[1].Zone)
				assert.Equal(t, spreadsheet.ZoneOthers, res.Rows[2].Zone)
				assert.InDelta(t, 1000.0, res.Rows[0].GrossTotal, 1e-9)
				assert.InDelta(t, 813.01, res.Rows[0].NetTotal, 1e-9)
			},
		},
		{
			name: "Layout atual de 15 colunas",
			grid: spreadsheet.Grid{
				{"Vendas por Zona"},
				{"Período: 01-03-2025 a 02-03-2025"},
				{},
				{},
				{},
				{"Loja", "Data", "Zona", "Tickets", "% Tickets", "Clientes", "Ticket Médio", "Média Cliente",
					"Quantidade", "Total s/ IVA", "% s/ IVA", "IVA", "Total c/ IVA", "% Total", "Objetivo"},
				{"Lupita Pizza - Porto", "02-03-2025", "Delivery", "12", "30%", "12", "20,00", "20,00",
					"30", "195,12", "30%", "44,88", "240,00", "30%", "0"},
			},
			validate: func(t *testing.T, res *Result[domain.ZoneSale]) {
				require.Len(t, res.Rows, 1)
				sale := res.Rows[0]
				assert.Equal(t, "porto", sale.StoreID)
				assert.Equal(t, "2025-03-02", sale.Date)
				assert.Equal(t, spreadsheet.ZoneDelivery, sale.Zone)
				assert.Equal(t, 12, sale.TicketCount)
				assert.Equal(t, 12, sale.CustomerCount)
				assert.InDelta(t, 195.12, sale.NetTotal, 1e-9)
				assert.InDelta(t, 240.0, sale.GrossTotal, 1e-9)
			},
		},
		{
			name: "Data inválida é registada e a linha ignorada",
			grid: spreadsheet.Grid{
				{}, {}, {}, {},
				{"Loja", "Data", "Zona", "Total c/ IVA"},
				{"Lupita Pizza - Porto", "ontem", "Sala", "10"},
				{"Lupita Pizza - Porto", "2025-03-02", "Sala", "10"},
			},
			validate: func(t *testing.T, res *Result[domain.ZoneSale]) {
				require.Len(t, res.Rows, 1)
				require.Len(t, res.Errors, 1)
				assert.Contains(t, res.Errors[0], "data inválida")
				assert.Equal(t, "2025-03-02", res.PeriodFrom)
				assert.Equal(t, "2025-03-02", res.PeriodTo)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, newTestParser().Zone(tt.grid))
		})
	}
}
