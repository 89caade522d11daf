package repository

//go:generate mockgen -source=analytics.go -destination=mocks/analytics.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/sqldb"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

// AnalyticsRepository concentra as leituras agregadas. Nenhum método altera dados.
type AnalyticsRepository interface {
	SalesTotals(ctx context.Context, filter domain.AnalyticsFilter) (*domain.SalesTotals, error)
	DailyTrend(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.TrendPoint, error)
	MonthlyTrend(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.TrendPoint, error)
	ChannelTotals(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.ChannelShare, error)
	ArticleTotals(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.ArticleTotal, error)
	FamilyTotals(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.FamilyShare, error)
	ABCArticles(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.ABCArticle, error)
	HourlyTotals(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.HourlySlot, error)
	StoreTotals(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.StoreRanking, error)
	ListStores(ctx context.Context) ([]*domain.Store, error)
}

type analyticsRepository struct {
	conn *sqldb.Connection
}

func NewAnalyticsRepository(conn *sqldb.Connection) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

func (r *analyticsRepository) SalesTotals(ctx context.Context, filter domain.AnalyticsFilter) (*domain.SalesTotals, error) {
	builder := r.conn.Builder().
		Select(
			"COALESCE(SUM(gross_total), 0) AS gross_total",
			"COALESCE(SUM(net_total), 0) AS net_total",
			"COALESCE(SUM(vat_total), 0) AS vat_total",
			"COALESCE(SUM(ticket_count), 0) AS ticket_count",
			"COALESCE(SUM(customer_count), 0) AS customer_count",
			"COALESCE(SUM(item_quantity), 0) AS item_quantity",
			"COALESCE(SUM(target_revenue), 0) AS target_revenue",
			"COALESCE(SUM(CASE WHEN closed THEN 0 ELSE 1 END), 0) AS days_open",
		).
		From(dailySalesTable)

	query, args, err := periodFilter(builder, "date", filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.SalesTotals{}
	if err := r.conn.GetContext(ctx, totals, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao consultar totais de vendas: %w", err)
	}

	return totals, nil
}

func (r *analyticsRepository) DailyTrend(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.TrendPoint, error) {
	return r.trend(ctx, "date", filter)
}

// MonthlyTrend agrupa por YYYY-MM (as datas são gravadas em ISO).
func (r *analyticsRepository) MonthlyTrend(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.TrendPoint, error) {
	return r.trend(ctx, "SUBSTR(date, 1, 7)", filter)
}

func (r *analyticsRepository) trend(ctx context.Context, periodExpr string, filter domain.AnalyticsFilter) ([]*domain.TrendPoint, error) {
	builder := r.conn.Builder().
		Select(
			periodExpr+" AS period",
			"COALESCE(SUM(gross_total), 0) AS gross_total",
			"COALESCE(SUM(net_total), 0) AS net_total",
			"COALESCE(SUM(ticket_count), 0) AS ticket_count",
			"COALESCE(SUM(customer_count), 0) AS customer_count",
		).
		From(dailySalesTable).
		GroupBy(periodExpr).
		OrderBy("period ASC")

	query, args, err := periodFilter(builder, "date", filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	points := make([]*domain.TrendPoint, 0)
	if err := r.conn.SelectContext(ctx, &points, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao consultar tendência: %w", err)
	}

	return points, nil
}

func (r *analyticsRepository) ChannelTotals(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.ChannelShare, error) {
	builder := r.conn.Builder().
		Select(
			"zone",
			"COALESCE(SUM(gross_total), 0) AS gross_total",
			"COALESCE(SUM(net_total), 0) AS net_total",
			"COALESCE(SUM(ticket_count), 0) AS ticket_count",
		).
		From(zoneSalesTable).
		GroupBy("zone").
		OrderBy("gross_total DESC")

	query, args, err := zoneFilter(periodFilter(builder, "date", filter), filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	channels := make([]*domain.ChannelShare, 0)
	if err := r.conn.SelectContext(ctx, &channels, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas por canal: %w", err)
	}

	return channels, nil
}

// ArticleTotals soma as vendas por nome e família dos relatórios cujo período intersecta o filtro.
func (r *analyticsRepository) ArticleTotals(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.ArticleTotal, error) {
	builder := r.conn.Builder().
		Select(
			"article_name",
			"family",
			"COALESCE(SUM(quantity), 0) AS quantity",
			"COALESCE(SUM(net_total), 0) AS net_total",
			"COALESCE(SUM(gross_total), 0) AS gross_total",
		).
		From(articleSalesTable).
		GroupBy("article_name", "family")

	query, args, err := articlePeriodFilter(builder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := make([]*domain.ArticleTotal, 0)
	if err := r.conn.SelectContext(ctx, &totals, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas por artigo: %w", err)
	}

	return totals, nil
}

func (r *analyticsRepository) FamilyTotals(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.FamilyShare, error) {
	builder := r.conn.Builder().
		Select(
			"family",
			"COALESCE(SUM(quantity), 0) AS quantity",
			"COALESCE(SUM(gross_total), 0) AS gross_total",
		).
		From(articleSalesTable).
		GroupBy("family").
		OrderBy("gross_total DESC")

	query, args, err := articlePeriodFilter(builder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	families := make([]*domain.FamilyShare, 0)
	if err := r.conn.SelectContext(ctx, &families, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas por família: %w", err)
	}

	return families, nil
}

// ABCArticles agrega as linhas ABC diárias por artigo, ignorando as linhas excluídas.
func (r *analyticsRepository) ABCArticles(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.ABCArticle, error) {
	builder := r.conn.Builder().
		Select(
			"article_code",
			"MAX(article_name) AS article_name",
			"MAX(family) AS family",
			"COALESCE(SUM(quantity), 0) AS quantity",
			"COALESCE(SUM(value), 0) AS value",
		).
		From(abcDailyTable).
		Where(squirrel.Eq{"excluded": false}).
		GroupBy("article_code")

	query, args, err := periodFilter(builder, "date", filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	articles := make([]*domain.ABCArticle, 0)
	if err := r.conn.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao consultar análise ABC: %w", err)
	}

	return articles, nil
}

// HourlyTotals soma por faixa horária e conta os dias de loja distintos em que a faixa aparece.
func (r *analyticsRepository) HourlyTotals(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.HourlySlot, error) {
	builder := r.conn.Builder().
		Select(
			"time_slot",
			"COUNT(DISTINCT store_id || '|' || date) AS days",
			"COALESCE(SUM(ticket_count), 0) AS ticket_count",
			"COALESCE(SUM(gross_total), 0) AS gross_total",
		).
		From(hourlySalesTable).
		GroupBy("time_slot").
		OrderBy("time_slot ASC")

	query, args, err := zoneFilter(periodFilter(builder, "date", filter), filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	slots := make([]*domain.HourlySlot, 0)
	if err := r.conn.SelectContext(ctx, &slots, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas por hora: %w", err)
	}

	return slots, nil
}

func (r *analyticsRepository) StoreTotals(ctx context.Context, filter domain.AnalyticsFilter) ([]*domain.StoreRanking, error) {
	builder := r.conn.Builder().
		Select(
			"store_id",
			"MAX(store_name) AS store_name",
			"COALESCE(SUM(gross_total), 0) AS gross_total",
			"COALESCE(SUM(ticket_count), 0) AS ticket_count",
		).
		From(dailySalesTable).
		GroupBy("store_id").
		OrderBy("gross_total DESC", "store_id ASC")

	query, args, err := periodFilter(builder, "date", filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	stores := make([]*domain.StoreRanking, 0)
	if err := r.conn.SelectContext(ctx, &stores, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao consultar ranking de lojas: %w", err)
	}

	return stores, nil
}

func (r *analyticsRepository) ListStores(ctx context.Context) ([]*domain.Store, error) {
	query, args, err := r.conn.Builder().
		Select("store_id", "MAX(store_name) AS store_name").
		From(dailySalesTable).
		GroupBy("store_id").
		OrderBy("store_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	stores := make([]*domain.Store, 0)
	if err := r.conn.SelectContext(ctx, &stores, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao listar lojas: %w", err)
	}

	return stores, nil
}

func periodFilter(builder squirrel.SelectBuilder, dateColumn string, filter domain.AnalyticsFilter) squirrel.SelectBuilder {
	if filter.From != "" {
		builder = builder.Where(squirrel.GtOrEq{dateColumn: filter.From})
	}
	if filter.To != "" {
		builder = builder.Where(squirrel.LtOrEq{dateColumn: filter.To})
	}
	if len(filter.Stores) > 0 {
		builder = builder.Where(squirrel.Eq{"store_id": filter.Stores})
	}
	return builder
}

// articlePeriodFilter seleciona os relatórios cujo intervalo [period_from, period_to] intersecta o filtro.
func articlePeriodFilter(builder squirrel.SelectBuilder, filter domain.AnalyticsFilter) squirrel.SelectBuilder {
	if filter.From != "" {
		builder = builder.Where(squirrel.GtOrEq{"period_to": filter.From})
	}
	if filter.To != "" {
		builder = builder.Where(squirrel.LtOrEq{"period_from": filter.To})
	}
	if len(filter.Stores) > 0 {
		builder = builder.Where(squirrel.Eq{"store_id": filter.Stores})
	}
	return builder
}

func zoneFilter(builder squirrel.SelectBuilder, filter domain.AnalyticsFilter) squirrel.SelectBuilder {
	if filter.Zone != "" {
		builder = builder.Where(squirrel.Eq{"zone": filter.Zone})
	}
	return builder
}
