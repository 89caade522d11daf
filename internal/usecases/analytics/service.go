package analytics

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/spreadsheet"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

const (
	OrderByGross    = "gross"
	OrderByQuantity = "quantity"

	defaultTopArticles = 20
	defaultListLimit   = 50
)

type Analyzer interface {
	GetKPIs(ctx context.Context, filter domain.AnalyticsFilter) (*domain.KPISummary, error)
	GetDailyTrend(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.TrendPoint, error)
	GetMonthlyTrend(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.TrendPoint, error)
	GetChannelSplit(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.ChannelShare, error)
	GetTopArticles(ctx context.Context, filter domain.AnalyticsFilter, limit int, orderBy string) ([]*domain.ArticleRanking, error)
	GetFamilySplit(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.FamilyShare, error)
	GetABCRanking(ctx context.Context, filter domain.AnalyticsFilter) (*domain.ABCRanking, error)
	GetHourlyProfile(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.HourlySlot, error)
	GetStoreRanking(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.StoreRanking, error)
	ListStores(ctx context.Context) ([]*domain.Store, error)
	ListSyncRuns(ctx context.Context, limit int) ([]*domain.SyncRun, error)
	GetSyncRun(ctx context.Context, id int64) (*domain.SyncRun, error)
}

type Service struct {
	analyticsRepo repository.AnalyticsRepository
	syncRunRepo   repository.SyncRunRepository
	aliases       *spreadsheet.ArticleAliases
}

func NewService(
	analyticsRepo repository.AnalyticsRepository,
	syncRunRepo repository.SyncRunRepository,
	aliases *spreadsheet.ArticleAliases,
) Analyzer {
	if aliases == nil {
		aliases = spreadsheet.NewArticleAliases(nil)
	}

	return &Service{
		analyticsRepo: analyticsRepo,
		syncRunRepo:   syncRunRepo,
		aliases:       aliases,
	}
}

// GetKPIs calcula os indicadores do período e compara com o período anterior de mesma duração.
func (s *Service) GetKPIs(ctx context.Context, filter domain.AnalyticsFilter) (*domain.KPISummary, error) {
	from, to, err := parsePeriod(filter)
	if err != nil {
		return nil, err
	}

	current, err := s.analyticsRepo.SalesTotals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar totais do período: %w", err)
	}

	previousFilter := filter
	previousFilter.From, previousFilter.To = previousPeriod(from, to)
	previous, err := s.analyticsRepo.SalesTotals(ctx, previousFilter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar totais do período anterior: %w", err)
	}

	summary := &domain.KPISummary{
		From:               filter.From,
		To:                 filter.To,
		Current:            *current,
		Previous:           *previous,
		AverageTicket:      ratio(current.GrossTotal, float64(current.TicketCount)),
		AveragePerCustomer: ratio(current.GrossTotal, float64(current.CustomerCount)),
		TargetAchievement:  ratio(current.GrossTotal*100, current.TargetRevenue),
		GrossGrowth:        growth(current.GrossTotal, previous.GrossTotal),
		TicketGrowth:       growth(float64(current.TicketCount), float64(previous.TicketCount)),
	}

	return summary, nil
}

func (s *Service) GetDailyTrend(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.TrendPoint, error) {
	if _, _, err := parsePeriod(filter); err != nil {
		return nil, err
	}

	points, err := s.analyticsRepo.DailyTrend(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar tendência diária: %w", err)
	}
	return withAverageTicket(points), nil
}

func (s *Service) GetMonthlyTrend(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.TrendPoint, error) {
	if _, _, err := parsePeriod(filter); err != nil {
		return nil, err
	}

	points, err := s.analyticsRepo.MonthlyTrend(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar tendência mensal: %w", err)
	}
	return withAverageTicket(points), nil
}

// GetChannelSplit devolve o faturamento por zona e a participação de cada uma (em %).
func (s *Service) GetChannelSplit(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.ChannelShare, error) {
	if _, _, err := parsePeriod(filter); err != nil {
		return nil, err
	}

	channels, err := s.analyticsRepo.ChannelTotals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas por zona: %w", err)
	}

	total := 0.0
	for _, c := range channels {
		total += c.GrossTotal
	}
	for _, c := range channels {
		c.Share = ratio(c.GrossTotal*100, total)
	}

	return channels, nil
}

// GetTopArticles consolida os aliases antes de ordenar, para que o mesmo produto vendido com
// nomes diferentes conte uma vez só.
func (s *Service) GetTopArticles(ctx context.Context, filter domain.AnalyticsFilter, limit int, orderBy string) ([]*domain.ArticleRanking, error) {
	if _, _, err := parsePeriod(filter); err != nil {
		return nil, err
	}

	switch orderBy {
	case "":
		orderBy = OrderByGross
	case OrderByGross, OrderByQuantity:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderBy, orderBy)
	}
	if limit <= 0 {
		limit = defaultTopArticles
	}

	totals, err := s.analyticsRepo.ArticleTotals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas por artigo: %w", err)
	}

	type bucket struct {
		ranking  *domain.ArticleRanking
		quantity decimal.Decimal
		net      decimal.Decimal
		gross    decimal.Decimal
		seen     map[string]bool
	}

	var order []string
	buckets := make(map[string]*bucket)
	for _, t := range totals {
		key := s.aliases.Key(t.ArticleName)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				ranking: &domain.ArticleRanking{ArticleName: s.aliases.Canonical(t.ArticleName), Family: t.Family},
				seen:    make(map[string]bool),
			}
			buckets[key] = b
			order = append(order, key)
		}
		if b.ranking.Family == "" {
			b.ranking.Family = t.Family
		}
		if t.ArticleName != b.ranking.ArticleName && !b.seen[t.ArticleName] {
			b.seen[t.ArticleName] = true
			b.ranking.Aliases = append(b.ranking.Aliases, t.ArticleName)
		}
		b.quantity = b.quantity.Add(decimal.NewFromFloat(t.Quantity))
		b.net = b.net.Add(decimal.NewFromFloat(t.NetTotal))
		b.gross = b.gross.Add(decimal.NewFromFloat(t.GrossTotal))
	}

	articles := make([]*domain.ArticleRanking, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		b.ranking.Quantity = b.quantity.InexactFloat64()
		b.ranking.NetTotal = b.net.Round(2).InexactFloat64()
		b.ranking.GrossTotal = b.gross.Round(2).InexactFloat64()
		articles = append(articles, b.ranking)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		a, b := articles[i], articles[j]
		if orderBy == OrderByQuantity && a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		if a.GrossTotal != b.GrossTotal {
			return a.GrossTotal > b.GrossTotal
		}
		return a.ArticleName < b.ArticleName
	})

	if len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

func (s *Service) GetFamilySplit(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.FamilyShare, error) {
	if _, _, err := parsePeriod(filter); err != nil {
		return nil, err
	}

	families, err := s.analyticsRepo.FamilyTotals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas por família: %w", err)
	}

	total := 0.0
	for _, f := range families {
		total += f.GrossTotal
	}
	for _, f := range families {
		f.Share = ratio(f.GrossTotal*100, total)
	}

	return families, nil
}

// GetABCRanking reclassifica os artigos sobre os valores agregados do período, com os mesmos
// limites da análise diária.
func (s *Service) GetABCRanking(ctx context.Context, filter domain.AnalyticsFilter) (*domain.ABCRanking, error) {
	if _, _, err := parsePeriod(filter); err != nil {
		return nil, err
	}

	articles, err := s.analyticsRepo.ABCArticles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar análise ABC: %w", err)
	}

	ranking := &domain.ABCRanking{
		Articles:     articles,
		Distribution: map[string]int{},
	}
	if len(articles) == 0 {
		return ranking, nil
	}

	valueLetters := classify(articles, func(a *domain.ABCArticle) float64 { return a.Value },
		func(a *domain.ABCArticle, share, cumulative float64) {
			a.ValueShare = share
			a.ValueCumShare = cumulative
		})
	quantityLetters := classify(articles, func(a *domain.ABCArticle) float64 { return a.Quantity },
		func(a *domain.ABCArticle, _, cumulative float64) {
			a.QuantityCumShare = cumulative
		})

	sortByMetric(articles, func(a *domain.ABCArticle) float64 { return a.Value })

	total := decimal.Zero
	for i, a := range articles {
		a.Rank = i + 1
		a.ABCClass = valueLetters[a] + quantityLetters[a]
		ranking.Distribution[a.ABCClass]++
		total = total.Add(decimal.NewFromFloat(a.Value))
	}
	ranking.TotalValue = total.Round(2).InexactFloat64()

	return ranking, nil
}

// GetHourlyProfile devolve a média por dia de tickets e faturamento em cada faixa horária.
func (s *Service) GetHourlyProfile(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.HourlySlot, error) {
	if _, _, err := parsePeriod(filter); err != nil {
		return nil, err
	}

	slots, err := s.analyticsRepo.HourlyTotals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas por hora: %w", err)
	}

	for _, slot := range slots {
		slot.AverageTickets = ratio(float64(slot.TicketCount), float64(slot.Days))
		slot.AverageGross = ratio(slot.GrossTotal, float64(slot.Days))
	}
	return slots, nil
}

func (s *Service) GetStoreRanking(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.StoreRanking, error) {
	if _, _, err := parsePeriod(filter); err != nil {
		return nil, err
	}

	stores, err := s.analyticsRepo.StoreTotals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ranking de lojas: %w", err)
	}

	sort.SliceStable(stores, func(i, j int) bool {
		if stores[i].GrossTotal != stores[j].GrossTotal {
			return stores[i].GrossTotal > stores[j].GrossTotal
		}
		return stores[i].StoreID < stores[j].StoreID
	})

	total := 0.0
	for _, store := range stores {
		total += store.GrossTotal
	}
	for i, store := range stores {
		store.Position = i + 1
		store.Share = ratio(store.GrossTotal*100, total)
	}

	return stores, nil
}

func (s *Service) ListStores(ctx context.Context) ([]*domain.Store, error) {
	return s.analyticsRepo.ListStores(ctx)
}

func (s *Service) ListSyncRuns(ctx context.Context, limit int) ([]*domain.SyncRun, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.syncRunRepo.ListRecent(ctx, limit)
}

func (s *Service) GetSyncRun(ctx context.Context, id int64) (*domain.SyncRun, error) {
	run, err := s.syncRunRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, ErrSyncRunNotFound
	}
	return run, nil
}

func parsePeriod(filter domain.AnalyticsFilter) (time.Time, time.Time, error) {
	from, err := time.Parse(time.DateOnly, filter.From)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: data inicial %q", ErrInvalidPeriod, filter.From)
	}
	to, err := time.Parse(time.DateOnly, filter.To)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: data final %q", ErrInvalidPeriod, filter.To)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s é anterior a %s", ErrInvalidPeriod, filter.To, filter.From)
	}
	return from, to, nil
}

// previousPeriod devolve o intervalo de mesma duração que termina na véspera de from.
func previousPeriod(from, to time.Time) (string, string) {
	days := int(to.Sub(from).Hours()/24) + 1
	prevTo := from.AddDate(0, 0, -1)
	prevFrom := prevTo.AddDate(0, 0, -(days - 1))
	return prevFrom.Format(time.DateOnly), prevTo.Format(time.DateOnly)
}

func withAverageTicket(points []*domain.TrendPoint) []*domain.TrendPoint {
	for _, p := range points {
		p.AverageTicket = ratio(p.GrossTotal, float64(p.TicketCount))
	}
	return points
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(numerator / denominator)
}

// growth devolve a variação percentual; sem base de comparação é 0.
func growth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

func sortByMetric(articles []*domain.ABCArticle, metric func(*domain.ABCArticle) float64) {
	sort.SliceStable(articles, func(i, j int) bool {
		mi, mj := metric(articles[i]), metric(articles[j])
		if mi != mj {
			return mi > mj
		}
		return articles[i].ArticleCode < articles[j].ArticleCode
	})
}

// classify ordena por uma dimensão e devolve a letra ABC de cada artigo pela participação acumulada.
func classify(
	articles []*domain.ABCArticle,
	metric func(*domain.ABCArticle) float64,
	store func(a *domain.ABCArticle, share, cumulative float64),
) map[*domain.ABCArticle]string {
	sorted := append([]*domain.ABCArticle(nil), articles...)
	sortByMetric(sorted, metric)

	total := decimal.Zero
	for _, a := range sorted {
		total = total.Add(decimal.NewFromFloat(metric(a)))
	}

	letters := make(map[*domain.ABCArticle]string, len(sorted))
	running := decimal.Zero
	for _, a := range sorted {
		value := decimal.NewFromFloat(metric(a))
		running = running.Add(value)

		share, cumulative := decimal.NewFromInt(1), decimal.NewFromInt(1)
		if !total.IsZero() {
			share = value.Div(total)
			cumulative = running.Div(total)
		}

		store(a, share.InexactFloat64(), cumulative.InexactFloat64())
		letters[a] = domain.ClassifyShare(cumulative.InexactFloat64())
	}
	return letters
}
