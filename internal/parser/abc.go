package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/spreadsheet"
)

const (
	colValue          = "value"
	colValuePct       = "value_pct"
	colValueCumPct    = "value_cum_pct"
	colQuantityPct    = "quantity_pct"
	colQuantityCumPct = "quantity_cum_pct"
	colClass          = "class"
	colRank           = "rank"
)

var abcMarkerPattern = regexp.MustCompile(`\babc\b`)

var abcColumns = []spreadsheet.ColumnSpec{
	storeSpec,
	dateSpec,
	codeSpec,
	nameSpec,
	subfamilySpec,
	familySpec,
	{Field: colValueCumPct, Patterns: []string{"% acum. valor", "% acum valor", "% valor acumulado", "acum. valor", "valor acumulado"}},
	{Field: colQuantityCumPct, Patterns: []string{"% acum. qtd", "% acum qtd", "% acum. quantidade", "% qtd acumulada", "acum. qtd", "quantidade acumulada"}},
	{Field: colValuePct, Patterns: []string{"% valor", "% vendas"}},
	{Field: colQuantityPct, Patterns: []string{"% qtd", "% quantidade"}},
	{Field: colClass, Patterns: []string{"classe abc", "classe", "class", "abc"}},
	{Field: colRank, Patterns: []string{"posicao", "rank", "ordem"}},
	quantitySpec,
	{Field: colValue, Patterns: []string{"valor", "total c/ iva", "total", "vendas"}},
}

var (
	systemFeePrefixes = []string{"taxa", "portes", "gorjeta", "servico de entrega", "comissao"}

	thresholdA = decimal.NewFromFloat(domain.ABCThresholdA)
	thresholdB = decimal.NewFromFloat(domain.ABCThresholdB)
	hundred    = decimal.NewFromInt(100)
)

// HasABCMarker indica se a linha traz a marca do relatório de análise ABC.
func HasABCMarker(row []string) bool {
	for _, cell := range row {
		if abcMarkerPattern.MatchString(spreadsheet.Normalize(cell)) {
			return true
		}
	}
	return false
}

// ABCFile lê o relatório de análise ABC diária.
func (p *Parser) ABCFile(path string) (*Result[domain.ABCDaily], error) {
	grid, err := spreadsheet.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.ABC(grid), nil
}

type abcSource struct {
	class    string
	valueCum decimal.NullDecimal
	qtyCum   decimal.NullDecimal
}

// ABC converte a grade da análise ABC e classifica cada artigo em duas dimensões
// independentes (valor e quantidade) por loja e dia.
func (p *Parser) ABC(grid spreadsheet.Grid) *Result[domain.ABCDaily] {
	res := newResult[domain.ABCDaily](grid)

	headerIdx := spreadsheet.FindHeaderRow(grid, headerWindowStart, headerWindowEnd, "Artigo")
	if headerIdx < 0 {
		return res.fail("cabeçalho da análise ABC não encontrado (coluna Artigo)")
	}

	cols, missing := spreadsheet.MapColumns(grid[headerIdx], abcColumns)
	if len(missing) > 0 {
		return res.fail("colunas obrigatórias ausentes na análise ABC: %v", missing)
	}

	var (
		group   groupContext
		sources []abcSource
	)
	for r := headerIdx + 1; r < len(grid); r++ {
		row := grid[r]

		record, stop := group.scanRow(row)
		if stop {
			break
		}
		if !record {
			continue
		}

		item := domain.ABCDaily{
			ArticleCode: cols.Text(row, colCode),
			ArticleName: cols.Text(row, colName),
			Family:      cols.Text(row, colFamily),
			Quantity:    cols.Float(row, colQuantity),
			Value:       cols.Float(row, colValue),
		}
		if item.ArticleCode == "" {
			if spreadsheet.IsModifierLabel(item.ArticleName) {
				continue
			}
			res.errorf(r, "artigo sem código (%q)", item.ArticleName)
			continue
		}

		item.StoreName = group.storeName(cols, row)
		item.StoreID = p.stores.Resolve(item.StoreName)
		if item.StoreID == "" {
			res.errorf(r, "loja não identificada para o artigo %s", item.ArticleCode)
			continue
		}

		date, err := rowDate(res, &group, cols, row)
		if err != nil {
			res.errorf(r, "%v", err)
			continue
		}
		item.Date = date

		item.ExclusionReason = exclusionReason(item)
		item.Excluded = item.ExclusionReason != ""

		src := abcSource{class: strings.ToUpper(cols.Text(row, colClass))}
		if cols.Has(colValueCumPct) {
			src.valueCum = scaledPct(cols.Text(row, colValueCumPct))
		}
		if cols.Has(colQuantityCumPct) {
			src.qtyCum = scaledPct(cols.Text(row, colQuantityCumPct))
		}
		if cols.Has(colValuePct) {
			if pct := scaledPct(cols.Text(row, colValuePct)); pct.Valid {
				item.ValuePct = pct.Decimal.InexactFloat64()
			}
		}
		if cols.Has(colQuantityPct) {
			if pct := scaledPct(cols.Text(row, colQuantityPct)); pct.Valid {
				item.QuantityPct = pct.Decimal.InexactFloat64()
			}
		}

		res.add(item, item.StoreID, date)
		sources = append(sources, src)
	}

	classifyABC(res.Rows, sources)

	res.finish()
	return res
}

// exclusionReason aplica a prioridade: modificador > taxa de sistema > venda zerada > valor zerado.
func exclusionReason(item domain.ABCDaily) string {
	switch {
	case spreadsheet.IsModifierLabel(item.ArticleName):
		return domain.ExclusionModifier
	case isSystemFee(item):
		return domain.ExclusionSystemFee
	case item.Quantity == 0 && item.Value == 0:
		return domain.ExclusionZeroSale
	case item.Value == 0:
		return domain.ExclusionZeroValue
	}
	return ""
}

func isSystemFee(item domain.ABCDaily) bool {
	if strings.HasPrefix(item.ArticleCode, "-") || item.Value < 0 {
		return true
	}
	name := spreadsheet.Normalize(item.ArticleName)
	for _, prefix := range systemFeePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// scaledPct lê uma percentagem; valores acima de 1 vêm em escala 0-100 e são divididos por 100.
func scaledPct(raw string) decimal.NullDecimal {
	if strings.TrimSpace(raw) == "" {
		return decimal.NullDecimal{}
	}
	d := spreadsheet.ParseDecimal(raw)
	if d.GreaterThan(decimal.NewFromInt(1)) {
		d = d.Div(hundred)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func classLetter(share decimal.Decimal) string {
	switch {
	case share.LessThanOrEqual(thresholdA):
		return "A"
	case share.LessThanOrEqual(thresholdB):
		return "B"
	default:
		return "C"
	}
}

// classifyABC calcula ranking, percentagens e classe de cada linha, por (loja, dia).
// A classe do ficheiro prevalece; sem ela usa-se a percentagem acumulada do ficheiro e,
// na falta desta, a acumulada calculada sobre as linhas não excluídas.
func classifyABC(rows []domain.ABCDaily, sources []abcSource) {
	groups := make(map[string][]int)
	var order []string
	for i := range rows {
		key := rows[i].StoreID + "|" + rows[i].Date
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		if !rows[i].Excluded {
			groups[key] = append(groups[key], i)
		}
	}

	for _, key := range order {
		idx := groups[key]
		if len(idx) == 0 {
			continue
		}

		valueLetters := rankDimension(rows, idx, func(r *domain.ABCDaily) float64 { return r.Value },
			func(r *domain.ABCDaily, pct, cum float64) {
				if r.ValuePct == 0 {
					r.ValuePct = pct
				}
				r.ValueCumPct = cum
			},
			func(i int) decimal.NullDecimal { return sources[i].valueCum },
		)
		qtyLetters := rankDimension(rows, idx, func(r *domain.ABCDaily) float64 { return r.Quantity },
			func(r *domain.ABCDaily, pct, cum float64) {
				if r.QuantityPct == 0 {
					r.QuantityPct = pct
				}
				r.QuantityCumPct = cum
			},
			func(i int) decimal.NullDecimal { return sources[i].qtyCum },
		)

		// O ranking final é pela dimensão valor.
		byValue := sortedBy(rows, idx, func(r *domain.ABCDaily) float64 { return r.Value })
		for pos, i := range byValue {
			rows[i].Rank = pos + 1
		}

		for _, i := range idx {
			if domain.ValidABCClass(sources[i].class) {
				rows[i].ABCClass = sources[i].class
				continue
			}
			rows[i].ABCClass = valueLetters[i] + qtyLetters[i]
		}
	}
}

// rankDimension ordena as linhas por uma dimensão, grava participação e acumulada e devolve
// a letra de cada linha.
func rankDimension(
	rows []domain.ABCDaily,
	idx []int,
	metric func(*domain.ABCDaily) float64,
	store func(r *domain.ABCDaily, pct, cum float64),
	source func(i int) decimal.NullDecimal,
) map[int]string {
	total := decimal.Zero
	for _, i := range idx {
		total = total.Add(decimal.NewFromFloat(metric(&rows[i])))
	}

	letters := make(map[int]string, len(idx))
	running := decimal.Zero
	for _, i := range sortedBy(rows, idx, metric) {
		value := decimal.NewFromFloat(metric(&rows[i]))
		running = running.Add(value)

		share, cumulative := decimal.NewFromInt(1), decimal.NewFromInt(1)
		if !total.IsZero() {
			share = value.Div(total)
			cumulative = running.Div(total)
		}

		if src := source(i); src.Valid {
			cumulative = src.Decimal
		}

		store(&rows[i], share.InexactFloat64(), cumulative.InexactFloat64())
		letters[i] = classLetter(cumulative)
	}
	return letters
}

func sortedBy(rows []domain.ABCDaily, idx []int, metric func(*domain.ABCDaily) float64) []int {
	sorted := append([]int(nil), idx...)
	sort.SliceStable(sorted, func(a, b int) bool {
		ma, mb := metric(&rows[sorted[a]]), metric(&rows[sorted[b]])
		if ma != mb {
			return ma > mb
		}
		return rows[sorted[a]].ArticleCode < rows[sorted[b]].ArticleCode
	})
	return sorted
}
