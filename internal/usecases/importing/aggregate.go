package importing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

// Linhas de origem com a mesma chave natural (zonas que viram "Outros", o mesmo artigo em
// dias diferentes) são somadas antes do upsert.

type money struct {
	quantity decimal.Decimal
	net      decimal.Decimal
	gross    decimal.Decimal
}

func (m *money) add(quantity, net, gross float64) {
	m.quantity = m.quantity.Add(decimal.NewFromFloat(quantity))
	m.net = m.net.Add(decimal.NewFromFloat(net))
	m.gross = m.gross.Add(decimal.NewFromFloat(gross))
}

func (m *money) values() (quantity, net, gross float64) {
	return m.quantity.InexactFloat64(), m.net.Round(2).InexactFloat64(), m.gross.Round(2).InexactFloat64()
}

func aggregateArticles(rows []domain.ArticleSale) []domain.ArticleSale {
	type bucket struct {
		sale domain.ArticleSale
		sum  money
	}

	order := make([]string, 0, len(rows))
	buckets := make(map[string]*bucket, len(rows))
	for _, row := range rows {
		key := row.StoreID + "|" + row.PeriodFrom + "|" + row.PeriodTo + "|" + row.ArticleCode
		b, ok := buckets[key]
		if !ok {
			b = &bucket{sale: row}
			b.sale.Date = ""
			buckets[key] = b
			order = append(order, key)
		}
		fillArticleText(&b.sale, row)
		b.sum.add(row.Quantity, row.NetTotal, row.GrossTotal)
	}

	out := make([]domain.ArticleSale, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		b.sale.Quantity, b.sale.NetTotal, b.sale.GrossTotal = b.sum.values()
		out = append(out, b.sale)
	}
	return out
}

func fillArticleText(dst *domain.ArticleSale, src domain.ArticleSale) {
	if dst.ArticleName == "" {
		dst.ArticleName = src.ArticleName
	}
	if dst.Family == "" {
		dst.Family = src.Family
	}
	if dst.Subfamily == "" {
		dst.Subfamily = src.Subfamily
	}
}

func aggregateZones(rows []domain.ZoneSale) []domain.ZoneSale {
	type bucket struct {
		sale domain.ZoneSale
		sum  money
	}

	order := make([]string, 0, len(rows))
	buckets := make(map[string]*bucket, len(rows))
	for _, row := range rows {
		key := row.StoreID + "|" + row.Date + "|" + row.Zone
		b, ok := buckets[key]
		if !ok {
			b = &bucket{sale: row}
			b.sale.TicketCount, b.sale.CustomerCount = 0, 0
			buckets[key] = b
			order = append(order, key)
		}
		b.sale.TicketCount += row.TicketCount
		b.sale.CustomerCount += row.CustomerCount
		b.sum.add(0, row.NetTotal, row.GrossTotal)
	}

	out := make([]domain.ZoneSale, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		_, b.sale.NetTotal, b.sale.GrossTotal = b.sum.values()
		out = append(out, b.sale)
	}
	return out
}

func aggregateHourly(rows []domain.HourlySale) []domain.HourlySale {
	type bucket struct {
		sale domain.HourlySale
		sum  money
	}

	order := make([]string, 0, len(rows))
	buckets := make(map[string]*bucket, len(rows))
	for _, row := range rows {
		key := row.StoreID + "|" + row.Date + "|" + row.Zone + "|" + row.TimeSlot
		b, ok := buckets[key]
		if !ok {
			b = &bucket{sale: row}
			b.sale.TicketCount, b.sale.CustomerCount = 0, 0
			buckets[key] = b
			order = append(order, key)
		}
		b.sale.TicketCount += row.TicketCount
		b.sale.CustomerCount += row.CustomerCount
		b.sum.add(0, row.NetTotal, row.GrossTotal)
	}

	out := make([]domain.HourlySale, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		_, b.sale.NetTotal, b.sale.GrossTotal = b.sum.values()
		if b.sale.TicketCount > 0 {
			b.sale.AverageTicket = utils.RoundWithTwoDecimalPlace(b.sale.GrossTotal / float64(b.sale.TicketCount))
		}
		if b.sale.CustomerCount > 0 {
			b.sale.AveragePerCustomer = utils.RoundWithTwoDecimalPlace(b.sale.GrossTotal / float64(b.sale.CustomerCount))
		}
		out = append(out, b.sale)
	}
	return out
}

// dedupeABC mantém a primeira linha de cada (loja, dia, artigo). Ranking e classe já foram
// calculados por linha, por isso as repetições não são somadas e ficam como erro.
func dedupeABC(rows []domain.ABCDaily) ([]domain.ABCDaily, []string) {
	seen := make(map[string]bool, len(rows))
	out := make([]domain.ABCDaily, 0, len(rows))
	var errs []string
	for _, row := range rows {
		key := row.StoreID + "|" + row.Date + "|" + row.ArticleCode
		if seen[key] {
			errs = append(errs, fmt.Sprintf("%s %s %s: artigo repetido no ficheiro, mantida a primeira linha",
				row.StoreID, row.Date, row.ArticleCode))
			continue
		}
		seen[key] = true
		out = append(out, row)
	}
	return out, errs
}
