package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/sqldb"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

func newTestConnection(t *testing.T) *sqldb.Connection {
	t.Helper()

	ctx := context.Background()
	conn, err := sqldb.Open(ctx, sqldb.DriverSQLite, "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.Migrate(ctx))
	return conn
}

func countRows(t *testing.T, conn *sqldb.Connection, table string) int {
	t.Helper()
	var n int
	require.NoError(t, conn.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func TestDailySaleRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)
	repo := NewDailySaleRepository(conn)

	sale := &domain.DailySale{
		StoreID:     "alvalade",
		StoreName:   "Lupita Pizza Alvalade",
		Date:        "2025-03-01",
		TicketCount: 10,
		GrossTotal:  250.5,
		NetTotal:    203.66,
		VATTotal:    46.84,
	}

	outcome, err := repo.Upsert(ctx, sale)
	require.NoError(t, err)
	assert.Equal(t, domain.UpsertInserted, outcome)

	sale.TicketCount = 12
	sale.GrossTotal = 300
	outcome, err = repo.Upsert(ctx, sale)
	require.NoError(t, err)
	assert.Equal(t, domain.UpsertUpdated, outcome)

	assert.Equal(t, 1, countRows(t, conn, dailySalesTable))

	var stored domain.DailySale
	require.NoError(t, conn.Get(&stored, "SELECT id, store_id, store_name, date, ticket_count, average_ticket, customer_count, item_quantity, net_total, vat_total, gross_total, target_revenue, closed FROM daily_sales"))
	assert.Equal(t, 12, stored.TicketCount)
	assert.Equal(t, 300.0, stored.GrossTotal)
	assert.False(t, stored.Closed)
}

func TestFormatRepositories_UpsertNaturalKeys(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)

	tests := []struct {
		name     string
		table    string
		upsert   func() (domain.UpsertOutcome, error)
		expected int
	}{
		{
			name:  "zona diferente gera nova linha",
			table: zoneSalesTable,
			upsert: func() (domain.UpsertOutcome, error) {
				repo := NewZoneSaleRepository(conn)
				if _, err := repo.Upsert(ctx, &domain.ZoneSale{StoreID: "porto", Date: "2025-03-01", Zone: "Sala", GrossTotal: 10}); err != nil {
					return "", err
				}
				return repo.Upsert(ctx, &domain.ZoneSale{StoreID: "porto", Date: "2025-03-01", Zone: "Delivery", GrossTotal: 5})
			},
			expected: 2,
		},
		{
			name:  "mesmo artigo e período atualiza",
			table: articleSalesTable,
			upsert: func() (domain.UpsertOutcome, error) {
				repo := NewArticleSaleRepository(conn)
				sale := &domain.ArticleSale{StoreID: "porto", PeriodFrom: "2025-03-01", PeriodTo: "2025-03-31", ArticleCode: "101", ArticleName: "Margherita", Quantity: 3}
				if _, err := repo.Upsert(ctx, sale); err != nil {
					return "", err
				}
				sale.Quantity = 4
				return repo.Upsert(ctx, sale)
			},
			expected: 1,
		},
		{
			name:  "linha ABC excluída é gravada",
			table: abcDailyTable,
			upsert: func() (domain.UpsertOutcome, error) {
				repo := NewABCDailyRepository(conn)
				return repo.Upsert(ctx, &domain.ABCDaily{StoreID: "porto", Date: "2025-03-01", ArticleCode: "@1", Excluded: true, ExclusionReason: domain.ExclusionModifier})
			},
			expected: 1,
		},
		{
			name:  "faixa horária distinta gera nova linha",
			table: hourlySalesTable,
			upsert: func() (domain.UpsertOutcome, error) {
				repo := NewHourlySaleRepository(conn)
				if _, err := repo.Upsert(ctx, &domain.HourlySale{StoreID: "porto", Date: "2025-03-01", Zone: "Sala", TimeSlot: "12:00"}); err != nil {
					return "", err
				}
				return repo.Upsert(ctx, &domain.HourlySale{StoreID: "porto", Date: "2025-03-01", Zone: "Sala", TimeSlot: "12:30"})
			},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.upsert()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, countRows(t, conn, tt.table))
		})
	}
}

func TestImportLogRepository(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)
	repo := NewImportLogRepository(conn)

	require.NoError(t, repo.Create(ctx, &domain.ImportLog{FileName: "a.xls", ImportType: domain.FileTypeDaily, Source: domain.ImportSourceUpload}))
	entry := &domain.ImportLog{
		FileName:        "b.xls",
		ImportType:      domain.FileTypeZone,
		Source:          domain.ImportSourceSync,
		DateFrom:        "2025-01-01",
		DateTo:          "2025-01-31",
		RecordsInserted: 3,
		Errors:          []string{"linha 7: data inválida"},
		Stores:          []string{"porto"},
	}
	require.NoError(t, repo.Create(ctx, entry))
	assert.NotZero(t, entry.ID)

	logs, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "b.xls", logs[0].FileName)
	assert.Equal(t, domain.FileTypeZone, logs[0].ImportType)
	assert.Equal(t, []string{"linha 7: data inválida"}, logs[0].Errors)
	assert.Equal(t, []string{"porto"}, logs[0].Stores)
	assert.Empty(t, logs[1].Errors)
	assert.False(t, logs[0].CreatedAt.IsZero())
}

func TestSyncRunRepository(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)
	repo := NewSyncRunRepository(conn)

	t.Run("deve criar e finalizar uma execução", func(t *testing.T) {
		run := &domain.SyncRun{Trigger: domain.SyncTriggerManual, DateFrom: "2025-01-01", DateTo: "2025-03-01"}
		id, err := repo.Create(ctx, run)
		require.NoError(t, err)
		assert.NotZero(t, id)

		run.Status = domain.SyncStatusPartial
		run.ReportsOK = 4
		run.ReportsFailed = 1
		run.RecordsInserted = 20
		run.Details = []domain.SyncReportDetail{
			{ReportKey: "daily_sales", Success: true, Inserted: 20},
			{ReportKey: "abc_daily", Success: false, Error: "resposta HTML"},
		}
		require.NoError(t, repo.Finish(ctx, run))

		stored, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, domain.SyncStatusPartial, stored.Status)
		assert.Equal(t, 4, stored.ReportsOK)
		assert.Len(t, stored.Details, 2)
		assert.NotNil(t, stored.FinishedAt)
	})

	t.Run("deve marcar execuções presas como failed", func(t *testing.T) {
		_, err := repo.Create(ctx, &domain.SyncRun{Trigger: domain.SyncTriggerCron})
		require.NoError(t, err)

		affected, err := repo.MarkStaleRunning(ctx, "interrompida")
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		runs, err := repo.ListRecent(ctx, 1)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, domain.SyncStatusFailed, runs[0].Status)
		assert.Equal(t, "interrompida", runs[0].Error)
	})

	t.Run("deve devolver nil para id inexistente", func(t *testing.T) {
		run, err := repo.GetByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, run)
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)
	repo := NewUserRepository(conn)

	created, err := repo.CreateUser(ctx, &domain.User{Name: "Ana", Email: "ana@lupita.pt", PasswordHash: "hash", Active: true, RoleID: domain.RoleAdmin})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	user, err := repo.GetUserByEmail(ctx, "ana@lupita.pt")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.RoleAdmin, user.RoleID)
	assert.True(t, user.Active)

	missing, err := repo.GetUserByEmail(ctx, "outro@lupita.pt")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.CreateUser(ctx, &domain.User{Name: "Ana 2", Email: "ana@lupita.pt", PasswordHash: "hash", RoleID: domain.RoleViewer})
	assert.Error(t, err)
}

func TestAnalyticsRepository(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)
	daily := NewDailySaleRepository(conn)
	zones := NewZoneSaleRepository(conn)
	abc := NewABCDailyRepository(conn)
	repo := NewAnalyticsRepository(conn)

	for _, s := range []*domain.DailySale{
		{StoreID: "porto", StoreName: "Porto", Date: "2025-02-28", TicketCount: 5, GrossTotal: 100},
		{StoreID: "porto", StoreName: "Porto", Date: "2025-03-01", TicketCount: 10, GrossTotal: 200},
		{StoreID: "alvalade", StoreName: "Alvalade", Date: "2025-03-01", TicketCount: 20, GrossTotal: 500},
		{StoreID: "alvalade", StoreName: "Alvalade", Date: "2025-03-02", Closed: true},
	} {
		_, err := daily.Upsert(ctx, s)
		require.NoError(t, err)
	}
	for _, z := range []*domain.ZoneSale{
		{StoreID: "porto", Date: "2025-03-01", Zone: "Sala", GrossTotal: 150},
		{StoreID: "porto", Date: "2025-03-01", Zone: "Delivery", GrossTotal: 50},
	} {
		_, err := zones.Upsert(ctx, z)
		require.NoError(t, err)
	}
	for _, a := range []*domain.ABCDaily{
		{StoreID: "porto", Date: "2025-03-01", ArticleCode: "1", ArticleName: "Pizza", Value: 80, Quantity: 4},
		{StoreID: "porto", Date: "2025-03-02", ArticleCode: "1", ArticleName: "Pizza", Value: 20, Quantity: 1},
		{StoreID: "porto", Date: "2025-03-01", ArticleCode: "@9", ArticleName: "@Extra", Value: 1, Excluded: true, ExclusionReason: domain.ExclusionModifier},
	} {
		_, err := abc.Upsert(ctx, a)
		require.NoError(t, err)
	}

	march := domain.AnalyticsFilter{From: "2025-03-01", To: "2025-03-31"}

	t.Run("totais do período", func(t *testing.T) {
		totals, err := repo.SalesTotals(ctx, march)
		require.NoError(t, err)
		assert.Equal(t, 700.0, totals.GrossTotal)
		assert.Equal(t, 30, totals.TicketCount)
		assert.Equal(t, 2, totals.DaysOpen)
	})

	t.Run("filtro por loja", func(t *testing.T) {
		totals, err := repo.SalesTotals(ctx, domain.AnalyticsFilter{Stores: []string{"porto"}})
		require.NoError(t, err)
		assert.Equal(t, 300.0, totals.GrossTotal)
	})

	t.Run("tendência mensal", func(t *testing.T) {
		points, err := repo.MonthlyTrend(ctx, domain.AnalyticsFilter{})
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, "2025-02", points[0].Period)
		assert.Equal(t, "2025-03", points[1].Period)
		assert.Equal(t, 700.0, points[1].GrossTotal)
	})

	t.Run("vendas por canal", func(t *testing.T) {
		channels, err := repo.ChannelTotals(ctx, march)
		require.NoError(t, err)
		require.Len(t, channels, 2)
		assert.Equal(t, "Sala", channels[0].Zone)
	})

	t.Run("ABC ignora linhas excluídas", func(t *testing.T) {
		articles, err := repo.ABCArticles(ctx, march)
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, 100.0, articles[0].Value)
		assert.Equal(t, 5.0, articles[0].Quantity)
	})

	t.Run("ranking e lista de lojas", func(t *testing.T) {
		ranking, err := repo.StoreTotals(ctx, march)
		require.NoError(t, err)
		require.Len(t, ranking, 2)
		assert.Equal(t, "alvalade", ranking[0].StoreID)

		stores, err := repo.ListStores(ctx)
		require.NoError(t, err)
		assert.Equal(t, []*domain.Store{{ID: "alvalade", Name: "Alvalade"}, {ID: "porto", Name: "Porto"}}, stores)
	})
}
