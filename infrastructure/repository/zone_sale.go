package repository

//go:generate mockgen -source=zone_sale.go -destination=mocks/zone_sale.go -package=mocks

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/sqldb"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const zoneSalesTable = "zone_sales"

type ZoneSaleRepository interface {
	Upsert(ctx context.Context, sale *domain.ZoneSale) (domain.UpsertOutcome, error)
}

type zoneSaleRepository struct {
	conn *sqldb.Connection
}

func NewZoneSaleRepository(conn *sqldb.Connection) ZoneSaleRepository {
	return &zoneSaleRepository{
		conn: conn,
	}
}

func (r *zoneSaleRepository) Upsert(ctx context.Context, sale *domain.ZoneSale) (domain.UpsertOutcome, error) {
	return upsertRow(ctx, r.conn, zoneSalesTable,
		squirrel.Eq{"store_id": sale.StoreID, "date": sale.Date, "zone": sale.Zone},
		map[string]interface{}{
			"store_name":     sale.StoreName,
			"ticket_count":   sale.TicketCount,
			"customer_count": sale.CustomerCount,
			"net_total":      sale.NetTotal,
			"gross_total":    sale.GrossTotal,
		},
	)
}
