package domain

// Limites acumulados da classificação ABC (inclusivos).
const (
	ABCThresholdA = 0.70
	ABCThresholdB = 0.90
)

// Motivos de exclusão de uma linha da análise ABC, em ordem de prioridade.
const (
	ExclusionModifier  = "modifier"
	ExclusionSystemFee = "system_fee"
	ExclusionZeroSale  = "zero_sale"
	ExclusionZeroValue = "zero_value"
)

// ABCDaily é a linha da análise ABC de um artigo num dia.
// Chave natural: (store_id, date, article_code).
type ABCDaily struct {
	ID              int64   `json:"id" db:"id"`
	StoreID         string  `json:"store_id" db:"store_id"`
	StoreName       string  `json:"store_name" db:"store_name"`
	Date            string  `json:"date" db:"date"`
	ArticleCode     string  `json:"article_code" db:"article_code"`
	ArticleName     string  `json:"article_name" db:"article_name"`
	Family          string  `json:"family" db:"family"`
	Quantity        float64 `json:"quantity" db:"quantity"`
	Value           float64 `json:"value" db:"value"`
	ValuePct        float64 `json:"value_pct" db:"value_pct"`
	ValueCumPct     float64 `json:"value_cum_pct" db:"value_cum_pct"`
	QuantityPct     float64 `json:"quantity_pct" db:"quantity_pct"`
	QuantityCumPct  float64 `json:"quantity_cum_pct" db:"quantity_cum_pct"`
	Rank            int     `json:"rank" db:"rank"`
	ABCClass        string  `json:"abc_class" db:"abc_class"`
	Excluded        bool    `json:"excluded" db:"excluded"`
	ExclusionReason string  `json:"exclusion_reason" db:"exclusion_reason"`
}

// ClassifyShare devolve a letra ABC para uma participação acumulada (0..1).
func ClassifyShare(cumulative float64) string {
	switch {
	case cumulative <= ABCThresholdA:
		return "A"
	case cumulative <= ABCThresholdB:
		return "B"
	default:
		return "C"
	}
}

// ValidABCClass indica se o rótulo tem o formato valor+quantidade (ex.: "AB").
func ValidABCClass(class string) bool {
	if len(class) != 2 {
		return false
	}
	for _, c := range class {
		if c != 'A' && c != 'B' && c != 'C' {
			return false
		}
	}
	return true
}
