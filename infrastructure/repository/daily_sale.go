package repository

//go:generate mockgen -source=daily_sale.go -destination=mocks/daily_sale.go -package=mocks

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/sqldb"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const dailySalesTable = "daily_sales"

type DailySaleRepository interface {
	Upsert(ctx context.Context, sale *domain.DailySale) (domain.UpsertOutcome, error)
}

type dailySaleRepository struct {
	conn *sqldb.Connection
}

func NewDailySaleRepository(conn *sqldb.Connection) DailySaleRepository {
	return &dailySaleRepository{
		conn: conn,
	}
}

func (r *dailySaleRepository) Upsert(ctx context.Context, sale *domain.DailySale) (domain.UpsertOutcome, error) {
	return upsertRow(ctx, r.conn, dailySalesTable,
		squirrel.Eq{"store_id": sale.StoreID, "date": sale.Date},
		map[string]interface{}{
			"store_name":     sale.StoreName,
			"ticket_count":   sale.TicketCount,
			"average_ticket": sale.AverageTicket,
			"customer_count": sale.CustomerCount,
			"item_quantity":  sale.ItemQuantity,
			"net_total":      sale.NetTotal,
			"vat_total":      sale.VATTotal,
			"gross_total":    sale.GrossTotal,
			"target_revenue": sale.TargetRevenue,
			"closed":         sale.Closed,
		},
	)
}
