package repository

//go:generate mockgen -source=abc_daily.go -destination=mocks/abc_daily.go -package=mocks

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/sqldb"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const abcDailyTable = "abc_daily"

type ABCDailyRepository interface {
	Upsert(ctx context.Context, row *domain.ABCDaily) (domain.UpsertOutcome, error)
}

type abcDailyRepository struct {
	conn *sqldb.Connection
}

func NewABCDailyRepository(conn *sqldb.Connection) ABCDailyRepository {
	return &abcDailyRepository{
		conn: conn,
	}
}

func (r *abcDailyRepository) Upsert(ctx context.Context, row *domain.ABCDaily) (domain.UpsertOutcome, error) {
	return upsertRow(ctx, r.conn, abcDailyTable,
		squirrel.Eq{"store_id": row.StoreID, "date": row.Date, "article_code": row.ArticleCode},
		map[string]interface{}{
			"store_name":       row.StoreName,
			"article_name":     row.ArticleName,
			"family":           row.Family,
			"quantity":         row.Quantity,
			"value":            row.Value,
			"value_pct":        row.ValuePct,
			"value_cum_pct":    row.ValueCumPct,
			"quantity_pct":     row.QuantityPct,
			"quantity_cum_pct": row.QuantityCumPct,
			"rank":             row.Rank,
			"abc_class":        row.ABCClass,
			"excluded":         row.Excluded,
			"exclusion_reason": row.ExclusionReason,
		},
	)
}
