package parser

import (
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/spreadsheet"
)

const colSlot = "slot"

var hourlyColumns = []spreadsheet.ColumnSpec{
	shareSpec,
	storeSpec,
	dateSpec,
	{Field: colZone, Patterns: []string{"zona", "canal"}},
	{Field: colSlot, Patterns: []string{"hora", "periodo", "intervalo"}, Required: true},
	averageTicketSpec,
	averageCustomerSpec,
	ticketsSpec,
	customersSpec,
	netSpec,
	grossSpec,
	vatSpec,
}

// HourlyFile lê o relatório de vendas por hora (faixas de 30 minutos).
func (p *Parser) HourlyFile(path string) (*Result[domain.HourlySale], error) {
	grid, err := spreadsheet.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Hourly(grid), nil
}

// Hourly converte a grade do relatório horário. A faixa é arredondada para HH:00 ou HH:30.
func (p *Parser) Hourly(grid spreadsheet.Grid) *Result[domain.HourlySale] {
	res := newResult[domain.HourlySale](grid)

	headerIdx := spreadsheet.FindHeaderRow(grid, headerWindowStart, headerWindowEnd, "Hora")
	if headerIdx < 0 {
		return res.fail("cabeçalho do relatório horário não encontrado (coluna Hora)")
	}

	cols, missing := spreadsheet.MapColumns(grid[headerIdx], hourlyColumns)
	if len(missing) > 0 {
		return res.fail("colunas obrigatórias ausentes no relatório horário: %v", missing)
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

		slot, ok := spreadsheet.TimeSlot(cols.Text(row, colSlot))
		if !ok {
			res.errorf(r, "hora inválida %q", cols.Text(row, colSlot))
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

		sale := domain.HourlySale{
			StoreID:       storeID,
			StoreName:     storeName,
			Date:          date,
			Zone:          spreadsheet.NormalizeZone(group.zoneName(cols, row)),
			TimeSlot:      slot,
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

		if cols.Has(colAverageTicket) {
			sale.AverageTicket = cols.Float(row, colAverageTicket)
		} else {
			sale.AverageTicket = round2(divide(sale.GrossTotal, float64(sale.TicketCount)))
		}
		if cols.Has(colAveragePerCustomer) {
			sale.AveragePerCustomer = cols.Float(row, colAveragePerCustomer)
		} else {
			sale.AveragePerCustomer = round2(divide(sale.GrossTotal, float64(sale.CustomerCount)))
		}

		res.add(sale, storeID, date)
	}

	res.finish()
	return res
}
