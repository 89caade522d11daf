package domain

// AnalyticsFilter restringe as consultas agregadas. Datas em ISO (YYYY-MM-DD).
type AnalyticsFilter struct {
	From   string
	To     string
	Stores []string
	Zone   string
}

type Store struct {
	ID   string `json:"id" db:"store_id"`
	Name string `json:"name" db:"store_name"`
}

type SalesTotals struct {
	GrossTotal    float64 `json:"gross_total" db:"gross_total"`
	NetTotal      float64 `json:"net_total" db:"net_total"`
	VATTotal      float64 `json:"vat_total" db:"vat_total"`
	TicketCount   int     `json:"ticket_count" db:"ticket_count"`
	CustomerCount int     `json:"customer_count" db:"customer_count"`
	ItemQuantity  float64 `json:"item_quantity" db:"item_quantity"`
	TargetRevenue float64 `json:"target_revenue" db:"target_revenue"`
	DaysOpen      int     `json:"days_open" db:"days_open"`
}

// KPISummary agrega os indicadores do período e a comparação com o período anterior de mesma duração.
type KPISummary struct {
	From               string      `json:"from"`
	To                 string      `json:"to"`
	Current            SalesTotals `json:"current"`
	Previous           SalesTotals `json:"previous"`
	AverageTicket      float64     `json:"average_ticket"`
	AveragePerCustomer float64     `json:"average_per_customer"`
	TargetAchievement  float64     `json:"target_achievement"`
	GrossGrowth        float64     `json:"gross_growth"`
	TicketGrowth       float64     `json:"ticket_growth"`
}

type TrendPoint struct {
	Period        string  `json:"period" db:"period"`
	GrossTotal    float64 `json:"gross_total" db:"gross_total"`
	NetTotal      float64 `json:"net_total" db:"net_total"`
	TicketCount   int     `json:"ticket_count" db:"ticket_count"`
	CustomerCount int     `json:"customer_count" db:"customer_count"`
	AverageTicket float64 `json:"average_ticket" db:"-"`
}

type ChannelShare struct {
	Zone        string  `json:"zone" db:"zone"`
	GrossTotal  float64 `json:"gross_total" db:"gross_total"`
	NetTotal    float64 `json:"net_total" db:"net_total"`
	TicketCount int     `json:"ticket_count" db:"ticket_count"`
	Share       float64 `json:"share" db:"-"`
}

// ArticleRanking é uma linha do ranking de artigos, já com os aliases consolidados.
type ArticleRanking struct {
	ArticleName string   `json:"article_name"`
	Family      string   `json:"family"`
	Quantity    float64  `json:"quantity"`
	NetTotal    float64  `json:"net_total"`
	GrossTotal  float64  `json:"gross_total"`
	Aliases     []string `json:"aliases,omitempty"`
}

// ArticleTotal é a linha bruta lida do banco antes da consolidação de aliases.
type ArticleTotal struct {
	ArticleName string  `db:"article_name"`
	Family      string  `db:"family"`
	Quantity    float64 `db:"quantity"`
	NetTotal    float64 `db:"net_total"`
	GrossTotal  float64 `db:"gross_total"`
}

type FamilyShare struct {
	Family     string  `json:"family" db:"family"`
	Quantity   float64 `json:"quantity" db:"quantity"`
	GrossTotal float64 `json:"gross_total" db:"gross_total"`
	Share      float64 `json:"share" db:"-"`
}

type ABCArticle struct {
	ArticleCode      string  `json:"article_code" db:"article_code"`
	ArticleName      string  `json:"article_name" db:"article_name"`
	Family           string  `json:"family" db:"family"`
	Quantity         float64 `json:"quantity" db:"quantity"`
	Value            float64 `json:"value" db:"value"`
	ValueShare       float64 `json:"value_share" db:"-"`
	ValueCumShare    float64 `json:"value_cum_share" db:"-"`
	QuantityCumShare float64 `json:"quantity_cum_share" db:"-"`
	Rank             int     `json:"rank" db:"-"`
	ABCClass         string  `json:"abc_class" db:"-"`
}

type ABCRanking struct {
	Articles     []*ABCArticle  `json:"articles"`
	Distribution map[string]int `json:"distribution"`
	TotalValue   float64        `json:"total_value"`
}

type HourlySlot struct {
	TimeSlot       string  `json:"time_slot" db:"time_slot"`
	Days           int     `json:"days" db:"days"`
	TicketCount    int     `json:"ticket_count" db:"ticket_count"`
	GrossTotal     float64 `json:"gross_total" db:"gross_total"`
	AverageTickets float64 `json:"average_tickets" db:"-"`
	AverageGross   float64 `json:"average_gross" db:"-"`
}

// StoreRanking é a posição de uma loja no ranking de faturamento.
type StoreRanking struct {
	Position    int     `json:"position" db:"-"`
	StoreID     string  `json:"store_id" db:"store_id"`
	StoreName   string  `json:"store_name" db:"store_name"`
	GrossTotal  float64 `json:"gross_total" db:"gross_total"`
	TicketCount int     `json:"ticket_count" db:"ticket_count"`
	Share       float64 `json:"share" db:"-"`
}
