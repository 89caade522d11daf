package parser

import (
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/spreadsheet"
)

// O layout antigo tinha 6 colunas (Loja, Data, Zona, s/ IVA, IVA, c/ IVA) e o atual tem 15;
// o mapa de colunas por nome serve os dois.
var zoneColumns = []spreadsheet.ColumnSpec{
	shareSpec,
	storeSpec,
	dateSpec,
	{Field: colZone, Patterns: []string{"zona", "canal"}, Required: true},
	averageTicketSpec,
	averageCustomerSpec,
	ticketsSpec,
	customersSpec,
	quantitySpec,
	netSpec,
	grossSpec,
	vatSpec,
}

// ZoneFile lê o relatório de vendas por zona (canal de venda).
func (p *Parser) ZoneFile(path string) (*Result[domain.ZoneSale], error) {
	grid, err := spreadsheet.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Zone(grid), nil
}

// Zone converte a grade do relatório por zona. A zona é normalizada para a forma canónica.
func (p *Parser) Zone(grid spreadsheet.Grid) *Result[domain.ZoneSale] {
	res := newResult[domain.ZoneSale](grid)

	headerIdx := spreadsheet.FindHeaderRow(grid, headerWindowStart, headerWindowEnd, "Zona")
	if headerIdx < 0 {
		return res.fail("cabeçalho do relatório por zona não encontrado (coluna Zona)")
	}

	cols, missing := spreadsheet.MapColumns(grid[headerIdx], zoneColumns)
	if len(missing) > 0 {
		return res.fail("colunas obrigatórias ausentes no relatório por zona: %v", missing)
	}
	if !cols.Has(colGross) && !cols.Has(colNet) {
		return res.fail("relatório por zona sem colunas de valor")
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

		sale := domain.ZoneSale{
			StoreID:       storeID,
			StoreName:     storeName,
			Date:          date,
			Zone:          spreadsheet.NormalizeZone(group.zoneName(cols, row)),
			TicketCount:   cols.Int(row, colTickets),
			CustomerCount: cols.Int(row, colCustomers),
			NetTotal:      cols.Float(row, colNet),
			GrossTotal:    cols.Float(row, colGross),
		}
		if !cols.Has(colGross) {
			sale.GrossTotal = sale.NetTotal + cols.Float(row, colVAT)
		}
		if !cols.Has(colNet) {
			sale.NetTotal = sale.GrossTotal - cols.Float(row, colVAT)
		}

		res.add(sale, storeID, date)
	}

	res.finish()
	return res
}
