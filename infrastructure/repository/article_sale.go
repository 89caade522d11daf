package repository

//go:generate mockgen -source=article_sale.go -destination=mocks/article_sale.go -package=mocks

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/sqldb"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const articleSalesTable = "article_sales"

type ArticleSaleRepository interface {
	Upsert(ctx context.Context, sale *domain.ArticleSale) (domain.UpsertOutcome, error)
}

type articleSaleRepository struct {
	conn *sqldb.Connection
}

func NewArticleSaleRepository(conn *sqldb.Connection) ArticleSaleRepository {
	return &articleSaleRepository{
		conn: conn,
	}
}

func (r *articleSaleRepository) Upsert(ctx context.Context, sale *domain.ArticleSale) (domain.UpsertOutcome, error) {
	return upsertRow(ctx, r.conn, articleSalesTable,
		squirrel.Eq{
			"store_id":     sale.StoreID,
			"period_from":  sale.PeriodFrom,
			"period_to":    sale.PeriodTo,
			"article_code": sale.ArticleCode,
		},
		map[string]interface{}{
			"store_name":   sale.StoreName,
			"article_name": sale.ArticleName,
			"family":       sale.Family,
			"subfamily":    sale.Subfamily,
			"quantity":     sale.Quantity,
			"net_total":    sale.NetTotal,
			"gross_total":  sale.GrossTotal,
		},
	)
}
