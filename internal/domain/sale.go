package domain

// DailySale é o resumo diário de vendas de uma loja. Chave natural: (store_id, date).
type DailySale struct {
	ID            int64   `json:"id" db:"id"`
	StoreID       string  `json:"store_id" db:"store_id"`
	StoreName     string  `json:"store_name" db:"store_name"`
	Date          string  `json:"date" db:"date"`
	TicketCount   int     `json:"ticket_count" db:"ticket_count"`
	AverageTicket float64 `json:"average_ticket" db:"average_ticket"`
	CustomerCount int     `json:"customer_count" db:"customer_count"`
	ItemQuantity  float64 `json:"item_quantity" db:"item_quantity"`
	NetTotal      float64 `json:"net_total" db:"net_total"`
	VATTotal      float64 `json:"vat_total" db:"vat_total"`
	GrossTotal    float64 `json:"gross_total" db:"gross_total"`
	TargetRevenue float64 `json:"target_revenue" db:"target_revenue"`
	Closed        bool    `json:"closed" db:"closed"`
}

// ZoneSale são as vendas de uma loja num canal/zona. Chave natural: (store_id, date, zone).
type ZoneSale struct {
	ID            int64   `json:"id" db:"id"`
	StoreID       string  `json:"store_id" db:"store_id"`
	StoreName     string  `json:"store_name" db:"store_name"`
	Date          string  `json:"date" db:"date"`
	Zone          string  `json:"zone" db:"zone"`
	TicketCount   int     `json:"ticket_count" db:"ticket_count"`
	CustomerCount int     `json:"customer_count" db:"customer_count"`
	NetTotal      float64 `json:"net_total" db:"net_total"`
	GrossTotal    float64 `json:"gross_total" db:"gross_total"`
}

// ArticleSale são as vendas de um artigo num período.
// Chave natural: (store_id, period_from, period_to, article_code).
type ArticleSale struct {
	ID          int64   `json:"id" db:"id"`
	StoreID     string  `json:"store_id" db:"store_id"`
	StoreName   string  `json:"store_name" db:"store_name"`
	PeriodFrom  string  `json:"period_from" db:"period_from"`
	PeriodTo    string  `json:"period_to" db:"period_to"`
	ArticleCode string  `json:"article_code" db:"article_code"`
	ArticleName string  `json:"article_name" db:"article_name"`
	Family      string  `json:"family" db:"family"`
	Subfamily   string  `json:"subfamily" db:"subfamily"`
	Quantity    float64 `json:"quantity" db:"quantity"`
	NetTotal    float64 `json:"net_total" db:"net_total"`
	GrossTotal  float64 `json:"gross_total" db:"gross_total"`

	// Date é a data da linha de origem quando o relatório vem desagregado por dia.
	Date string `json:"-" db:"-"`
}

// HourlySale são as vendas de uma loja numa faixa de 30 minutos.
// Chave natural: (store_id, date, zone, time_slot).
type HourlySale struct {
	ID                 int64   `json:"id" db:"id"`
	StoreID            string  `json:"store_id" db:"store_id"`
	StoreName          string  `json:"store_name" db:"store_name"`
	Date               string  `json:"date" db:"date"`
	Zone               string  `json:"zone" db:"zone"`
	TimeSlot           string  `json:"time_slot" db:"time_slot"`
	TicketCount        int     `json:"ticket_count" db:"ticket_count"`
	CustomerCount      int     `json:"customer_count" db:"customer_count"`
	AverageTicket      float64 `json:"average_ticket" db:"average_ticket"`
	AveragePerCustomer float64 `json:"average_per_customer" db:"average_per_customer"`
	NetTotal           float64 `json:"net_total" db:"net_total"`
	GrossTotal         float64 `json:"gross_total" db:"gross_total"`
}
