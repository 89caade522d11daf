package zsbmsdomain

import (
	"net/url"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

// Chaves dos relatórios exportados pelo portal.
const (
	ReportDailySales   = "daily_sales"
	ReportZoneSales    = "zone_sales"
	ReportArticleSales = "article_sales"
	ReportABCDaily     = "abc_daily"
	ReportHourlySales  = "hourly_sales"
)

// ReportDefinition descreve como pedir um relatório ao portal e como importá-lo.
type ReportDefinition struct {
	Key      string
	ReportID int
	FileType domain.FileType
	Params   url.Values
}

// ReportDefinitions devolve a tabela de relatórios na ordem em que são exportados.
func ReportDefinitions() []ReportDefinition {
	return []ReportDefinition{
		{
			Key:      ReportDailySales,
			ReportID: 104,
			FileType: domain.FileTypeDaily,
			Params:   url.Values{"group_by_store": {"1"}, "group_by_day": {"1"}},
		},
		{
			Key:      ReportZoneSales,
			ReportID: 112,
			FileType: domain.FileTypeZone,
			Params:   url.Values{"group_by_store": {"1"}, "group_by_day": {"1"}, "group_by_zone": {"1"}},
		},
		{
			Key:      ReportArticleSales,
			ReportID: 87,
			FileType: domain.FileTypeArticle,
			Params:   url.Values{"group_by_store": {"1"}, "group_by_family": {"1"}, "show_subfamily": {"1"}},
		},
		{
			Key:      ReportABCDaily,
			ReportID: 158,
			FileType: domain.FileTypeABC,
			Params:   url.Values{"group_by_store": {"1"}, "group_by_day": {"1"}, "abc_criteria": {"value"}},
		},
		{
			Key:      ReportHourlySales,
			ReportID: 121,
			FileType: domain.FileTypeHourly,
			Params:   url.Values{"group_by_store": {"1"}, "group_by_day": {"1"}, "group_by_zone": {"1"}, "interval": {"30"}},
		},
	}
}

// FindReport procura a definição pela chave.
func FindReport(key string) (ReportDefinition, bool) {
	for _, def := range ReportDefinitions() {
		if def.Key == key {
			return def, true
		}
	}
	return ReportDefinition{}, false
}

// Session é o estado autenticado no portal. Os cookies ficam no cookie jar do cliente.
type Session struct {
	SessionID string
	CSRFToken string
}

// ReportDownload é o resultado da exportação de um relatório.
type ReportDownload struct {
	Key      string
	FileType domain.FileType
	Data     []byte
	Err      error
}

func (d ReportDownload) OK() bool {
	return d.Err == nil && len(d.Data) > 0
}
