package parser

import (
	"math"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/spreadsheet"
)

const (
	colTarget = "target"
	colClosed = "closed"
)

var dailyColumns = []spreadsheet.ColumnSpec{
	shareSpec,
	storeSpec,
	dateSpec,
	averageTicketSpec,
	averageCustomerSpec,
	{Field: colTickets, Patterns: ticketsSpec.Patterns, Required: true},
	customersSpec,
	quantitySpec,
	netSpec,
	grossSpec,
	vatSpec,
	{Field: colTarget, Patterns: []string{"objetivo", "objectivo", "meta"}},
	{Field: colClosed, Patterns: []string{"fechado", "encerrado", "estado"}},
}

var closedFlags = map[string]bool{
	"sim": true, "s": true, "x": true, "1": true, "true": true, "yes": true,
	"fechado": true, "encerrado": true,
}

// DailyFile lê o relatório de vendas diárias por loja.
func (p *Parser) DailyFile(path string) (*Result[domain.DailySale], error) {
	grid, err := spreadsheet.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Daily(grid), nil
}

// Daily converte a grade do relatório diário: uma linha por loja e por dia.
func (p *Parser) Daily(grid spreadsheet.Grid) *Result[domain.DailySale] {
	res := newResult[domain.DailySale](grid)

	// "Ticket" aceita também "Tickets" e "Nº Tickets".
	headerIdx := spreadsheet.FindHeaderRow(grid, headerWindowStart, headerWindowEnd, "Ticket")
	if headerIdx < 0 {
		return res.fail("cabeçalho do relatório diário não encontrado (coluna Ticket)")
	}

	cols, missing := spreadsheet.MapColumns(grid[headerIdx], dailyColumns)
	if len(missing) > 0 {
		return res.fail("colunas obrigatórias ausentes no relatório diário: %v", missing)
	}
	if !cols.Has(colGross) && !cols.Has(colNet) {
		return res.fail("relatório diário sem colunas de valor")
	}

	var group groupContext
	for r := headerIdx + 1; r < len(grid); r++ {
		row := grid[r]

		record, stop := group.scanRow(row)
		if stop {
			break
		}
		if !record {
			continue
		}

		storeName := group.storeName(cols, row)
		storeID := p.stores.Resolve(storeName)
		if storeID == "" {
			res.errorf(r, "loja não identificada")
			continue
		}

		date, err := rowDate(res, &group, cols, row)
		if err != nil {
			res.errorf(r, "%v", err)
			continue
		}

		sale := domain.DailySale{
			StoreID:       storeID,
			StoreName:     storeName,
			Date:          date,
			TicketCount:   cols.Int(row, colTickets),
			CustomerCount: cols.Int(row, colCustomers),
			ItemQuantity:  cols.Float(row, colQuantity),
			NetTotal:      cols.Float(row, colNet),
			VATTotal:      cols.Float(row, colVAT),
			GrossTotal:    cols.Float(row, colGross),
			TargetRevenue: cols.Float(row, colTarget),
		}

		// Completa o total que faltar a partir dos outros dois.
		switch {
		case !cols.Has(colGross):
			sale.GrossTotal = sale.NetTotal + sale.VATTotal
		case !cols.Has(colNet):
			sale.NetTotal = sale.GrossTotal - sale.VATTotal
		case !cols.Has(colVAT):
			sale.VATTotal = sale.GrossTotal - sale.NetTotal
		}

		if cols.Has(colAverageTicket) {
			sale.AverageTicket = cols.Float(row, colAverageTicket)
		} else {
			sale.AverageTicket = round2(divide(sale.GrossTotal, float64(sale.TicketCount)))
		}

		if cols.Has(colClosed) {
			sale.Closed = closedFlags[spreadsheet.Normalize(cols.Text(row, colClosed))]
		} else {
			sale.Closed = sale.TicketCount == 0 && sale.GrossTotal == 0
		}

		res.add(sale, storeID, date)
	}

	res.finish()
	return res
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
