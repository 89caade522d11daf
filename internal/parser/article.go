package parser

import (
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/spreadsheet"
)

const (
	colCode      = "code"
	colName      = "name"
	colFamily    = "family"
	colSubfamily = "subfamily"
	colUnitPrice = "unit_price"
)

var (
	codeSpec = spreadsheet.ColumnSpec{
		Field:    colCode,
		Patterns: []string{"codigo", "cod. artigo", "cod artigo", "cod.", "cod", "referencia", "ref"},
		Required: true,
	}
	nameSpec = spreadsheet.ColumnSpec{
		Field:    colName,
		Patterns: []string{"artigo", "descricao", "designacao", "produto"},
		Required: true,
	}
	subfamilySpec = spreadsheet.ColumnSpec{Field: colSubfamily, Patterns: []string{"subfamilia", "sub-familia", "sub familia"}}
	familySpec    = spreadsheet.ColumnSpec{Field: colFamily, Patterns: []string{"familia", "categoria"}}
)

var articleColumns = []spreadsheet.ColumnSpec{
	shareSpec,
	storeSpec,
	dateSpec,
	codeSpec,
	nameSpec,
	subfamilySpec,
	familySpec,
	{Field: colUnitPrice, Patterns: []string{"preco medio", "preco unitario", "pvp"}},
	quantitySpec,
	netSpec,
	grossSpec,
	vatSpec,
}

// ArticleFile lê o relatório de vendas por artigo.
func (p *Parser) ArticleFile(path string) (*Result[domain.ArticleSale], error) {
	grid, err := spreadsheet.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Article(grid), nil
}

// Article converte a grade do relatório por artigo. O período de cada registro é o do relatório;
// quando o relatório vem desagregado por dia, o importador soma as linhas do mesmo artigo.
func (p *Parser) Article(grid spreadsheet.Grid) *Result[domain.ArticleSale] {
	res := newResult[domain.ArticleSale](grid)

	headerIdx := spreadsheet.FindHeaderRow(grid, headerWindowStart, headerWindowEnd, "Artigo")
	if headerIdx < 0 {
		return res.fail("cabeçalho do relatório por artigo não encontrado (coluna Artigo)")
	}

	cols, missing := spreadsheet.MapColumns(grid[headerIdx], articleColumns)
	if len(missing) > 0 {
		return res.fail("colunas obrigatórias ausentes no relatório por artigo: %v", missing)
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

		name := cols.Text(row, colName)
		if spreadsheet.IsModifierLabel(name) {
			continue
		}

		sale := domain.ArticleSale{
			ArticleCode: cols.Text(row, colCode),
			ArticleName: name,
			Family:      cols.Text(row, colFamily),
			Subfamily:   cols.Text(row, colSubfamily),
			Quantity:    cols.Float(row, colQuantity),
			NetTotal:    cols.Float(row, colNet),
			GrossTotal:  cols.Float(row, colGross),
		}
		if !cols.Has(colGross) {
			sale.GrossTotal = sale.NetTotal + cols.Float(row, colVAT)
		}
		if !cols.Has(colNet) {
			sale.NetTotal = sale.GrossTotal - cols.Float(row, colVAT)
		}

		if sale.GrossTotal == 0 && sale.NetTotal == 0 {
			continue
		}

		if sale.ArticleCode == "" {
			res.errorf(r, "artigo sem código (%q)", name)
			continue
		}

		sale.StoreName = group.storeName(cols, row)
		sale.StoreID = p.stores.Resolve(sale.StoreName)
		if sale.StoreID == "" {
			res.errorf(r, "loja não identificada para o artigo %s", sale.ArticleCode)
			continue
		}

		if cols.Has(colDate) || group.date != "" {
			date, err := rowDate(res, &group, cols, row)
			if err != nil {
				res.errorf(r, "%v", err)
				continue
			}
			sale.Date = date
		}

		res.add(sale, sale.StoreID, sale.Date)
	}

	res.finish()

	if res.PeriodFrom == "" {
		res.Rows = res.Rows[:0]
		res.Errors = append(res.Errors, "período do relatório por artigo não encontrado")
		return res
	}

	for i := range res.Rows {
		res.Rows[i].PeriodFrom = res.PeriodFrom
		res.Rows[i].PeriodTo = res.PeriodTo
	}

	return res
}
