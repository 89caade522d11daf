package repository

//go:generate mockgen -source=hourly_sale.go -destination=mocks/hourly_sale.go -package=mocks

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/sqldb"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const hourlySalesTable = "hourly_sales"

type HourlySaleRepository interface {
	Upsert(ctx context.Context, sale *domain.HourlySale) (domain.UpsertOutcome, error)
}

type hourlySaleRepository struct {
	conn *sqldb.Connection
}

func NewHourlySaleRepository(conn *sqldb.Connection) HourlySaleRepository {
	return &hourlySaleRepository{
		conn: conn,
	}
}

func (r *hourlySaleRepository) Upsert(ctx context.Context, sale *domain.HourlySale) (domain.UpsertOutcome, error) {
	return upsertRow(ctx, r.conn, hourlySalesTable,
		squirrel.Eq{
			"store_id":  sale.StoreID,
			"date":      sale.Date,
			"zone":      sale.Zone,
			"time_slot": sale.TimeSlot,
		},
		map[string]interface{}{
			"store_name":           sale.StoreName,
			"ticket_count":         sale.TicketCount,
			"customer_count":       sale.CustomerCount,
			"average_ticket":       sale.AverageTicket,
			"average_per_customer": sale.AveragePerCustomer,
			"net_total":            sale.NetTotal,
			"gross_total":          sale.GrossTotal,
		},
	)
}
