// Package parser converte as grades das exportações do ZSBMS em registros tipados, um parser
// por formato de relatório. Linhas inválidas nunca interrompem a leitura: são ignoradas e o
// motivo é acumulado em Result.Errors.
package parser

import (
	"fmt"
	"sort"

	"github.com/vfg2006/restaurant-analytics-api/internal/spreadsheet"
)

const (
	headerWindowStart = 3
	headerWindowEnd   = 8
	metadataRows      = 5
)

// Nomes lógicos das colunas partilhadas entre os formatos.
const (
	colStore              = "store"
	colDate               = "date"
	colZone               = "zone"
	colTickets            = "tickets"
	colCustomers          = "customers"
	colAverageTicket      = "average_ticket"
	colAveragePerCustomer = "average_per_customer"
	colQuantity           = "quantity"
	colNet                = "net"
	colVAT                = "vat"
	colGross              = "gross"
	colShare              = "share"
)

var (
	storeSpec         = spreadsheet.ColumnSpec{Field: colStore, Patterns: []string{"loja", "estabelecimento"}}
	dateSpec          = spreadsheet.ColumnSpec{Field: colDate, Patterns: []string{"data"}}
	shareSpec         = spreadsheet.ColumnSpec{Field: colShare, Patterns: []string{"%"}}
	averageTicketSpec = spreadsheet.ColumnSpec{
		Field:    colAverageTicket,
		Patterns: []string{"ticket medio", "media ticket", "valor medio ticket", "media por ticket"},
	}
	averageCustomerSpec = spreadsheet.ColumnSpec{
		Field:    colAveragePerCustomer,
		Patterns: []string{"media cliente", "medio cliente", "media por cliente", "valor medio cliente"},
	}
	ticketsSpec   = spreadsheet.ColumnSpec{Field: colTickets, Patterns: []string{"tickets", "ticket", "documentos"}}
	customersSpec = spreadsheet.ColumnSpec{Field: colCustomers, Patterns: []string{"clientes", "pessoas", "cliente"}}
	quantitySpec  = spreadsheet.ColumnSpec{Field: colQuantity, Patterns: []string{"quantidade", "qtd", "quant"}}
	netSpec       = spreadsheet.ColumnSpec{
		Field:    colNet,
		Patterns: []string{"total s/ iva", "total sem iva", "valor liquido", "liquido", "s/ iva", "sem iva"},
	}
	grossSpec = spreadsheet.ColumnSpec{
		Field:    colGross,
		Patterns: []string{"total c/ iva", "total com iva", "valor bruto", "bruto", "c/ iva", "com iva", "total", "vendas"},
	}
	vatSpec = spreadsheet.ColumnSpec{Field: colVAT, Patterns: []string{"iva"}}
)

// Result é a saída comum dos parsers.
type Result[T any] struct {
	Rows       []T
	Errors     []string
	PeriodFrom string
	PeriodTo   string
	Stores     []string

	metaFrom string
	metaTo   string
	minDate  string
	maxDate  string
	seen     map[string]bool
}

func newResult[T any](grid spreadsheet.Grid) *Result[T] {
	from, to := spreadsheet.ExtractPeriod(grid, metadataRows)
	return &Result[T]{
		Rows:     []T{},
		Errors:   []string{},
		Stores:   []string{},
		metaFrom: from,
		metaTo:   to,
		seen:     make(map[string]bool),
	}
}

func (r *Result[T]) errorf(line int, format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf("linha %d: %s", line+1, fmt.Sprintf(format, args...)))
}

func (r *Result[T]) fail(format string, args ...any) *Result[T] {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.finish()
	return r
}

func (r *Result[T]) add(row T, storeID, date string) {
	r.Rows = append(r.Rows, row)
	if storeID != "" && !r.seen[storeID] {
		r.seen[storeID] = true
		r.Stores = append(r.Stores, storeID)
	}
	if date != "" {
		if r.minDate == "" || date < r.minDate {
			r.minDate = date
		}
		if date > r.maxDate {
			r.maxDate = date
		}
	}
}

// singleDay devolve a data do relatório quando o período declarado cobre um único dia.
func (r *Result[T]) singleDay() (string, bool) {
	if r.metaFrom != "" && r.metaFrom == r.metaTo {
		return r.metaFrom, true
	}
	return "", false
}

// finish fixa o período: o declarado no cabeçalho ou, na falta dele, o intervalo das linhas.
func (r *Result[T]) finish() {
	if r.metaFrom != "" {
		r.PeriodFrom, r.PeriodTo = r.metaFrom, r.metaTo
	} else {
		r.PeriodFrom, r.PeriodTo = r.minDate, r.maxDate
	}
	sort.Strings(r.Stores)
}

// Parser reúne os parsers de todos os formatos. O resolver de lojas é partilhado para que o
// mesmo nome dê sempre o mesmo identificador.
type Parser struct {
	stores *spreadsheet.StoreResolver
}

func New(stores *spreadsheet.StoreResolver) *Parser {
	if stores == nil {
		stores = spreadsheet.NewStoreResolver(nil)
	}
	return &Parser{stores: stores}
}

// groupContext acompanha as linhas de agrupamento ("Loja - X", "Zona - Y", "Data - Z") para
// relatórios que não repetem esses valores em colunas.
type groupContext struct {
	store string
	zone  string
	date  string
}

// scanRow classifica a linha. Devolve false quando ela não é um registro; stop indica o
// rodapé de total geral.
func (g *groupContext) scanRow(row []string) (record, stop bool) {
	if spreadsheet.IsEmptyRow(row) {
		return false, false
	}
	if kind, value, ok := spreadsheet.SubtotalLabel(row); ok {
		switch kind {
		case "loja":
			g.store = value
		case "zona":
			g.zone = value
		case "data":
			if d, ok := spreadsheet.ParseDate(value); ok {
				g.date = d
			}
		}
		return false, false
	}
	if spreadsheet.IsGrandTotalRow(row) {
		return false, true
	}
	if spreadsheet.IsCompanyFooterRow(row) {
		return false, false
	}
	return true, false
}

func (g *groupContext) storeName(cols spreadsheet.Columns, row []string) string {
	if name := cols.Text(row, colStore); name != "" {
		return name
	}
	return g.store
}

func (g *groupContext) zoneName(cols spreadsheet.Columns, row []string) string {
	if cols.Has(colZone) {
		return cols.Text(row, colZone)
	}
	return g.zone
}

// rowDate resolve a data da linha: coluna própria, linha de agrupamento ou período de um dia.
func rowDate[T any](res *Result[T], g *groupContext, cols spreadsheet.Columns, row []string) (string, error) {
	if cols.Has(colDate) {
		raw := cols.Text(row, colDate)
		if d, ok := spreadsheet.ParseDate(raw); ok {
			return d, nil
		}
		if raw == "" && g.date != "" {
			return g.date, nil
		}
		return "", fmt.Errorf("data inválida %q", raw)
	}
	if g.date != "" {
		return g.date, nil
	}
	if d, ok := res.singleDay(); ok {
		return d, nil
	}
	return "", fmt.Errorf("linha sem data")
}

func divide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
