package queries_test

import (
	"context"
	"testing"
	"time"

	"roomservice/internal/adapters/out/postgres/orderrepo"
	"roomservice/internal/adapters/out/postgres/pgtest"
	"roomservice/internal/core/application/usecases/queries"
	"roomservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type OrderQueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	repo     *orderrepo.GormOrderRepository
	base     time.Time
}

func (suite *OrderQueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.base = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
}

func (suite *OrderQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repo = orderrepo.NewGormOrderRepository(suite.database.DB)
}

func (suite *OrderQueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderQueriesIntegrationTestSuite) TestActiveOrders_OldestFirstWithItems() {
	ctx := context.Background()
	late := suite.place("Ali Veli", "12", 2*time.Minute, "Tea", "Simit")
	early := suite.place("Ayşe", "7", time.Minute, "Coffee")
	done := suite.place("Ali Veli", "12", 0, "Water")
	suite.complete(done, time.Hour)

	handler := queries.NewGetActiveOrdersQueryHandler(suite.database.DB)
	result, err := handler.Handle(ctx, queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(early.ID(), result[0].ID)
	suite.Equal(late.ID(), result[1].ID)
	suite.Equal("Ayşe", result[0].UserName)
	suite.Equal("active", result[1].Status)
	suite.Nil(result[1].CompletedAt)
	suite.Equal([]queries.ItemView{{Product: "Tea", Quantity: 1}, {Product: "Simit", Quantity: 2}}, result[1].Items)
}

func (suite *OrderQueriesIntegrationTestSuite) TestActiveOrders_SameCreatedAtTieBrokenById() {
	first := suite.place("Ali Veli", "12", 0, "Tea")
	second := suite.place("Ali Veli", "12", 0, "Tea")

	handler := queries.NewGetActiveOrdersQueryHandler(suite.database.DB)
	result, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(first.ID(), result[0].ID)
	suite.Equal(second.ID(), result[1].ID)
}

func (suite *OrderQueriesIntegrationTestSuite) TestCompletedOrders_MostRecentlyCompletedFirst() {
	ctx := context.Background()
	a := suite.place("Ali Veli", "12", 0, "Tea")
	b := suite.place("Ali Veli", "12", time.Minute, "Tea")
	suite.place("Ali Veli", "12", 2*time.Minute, "Tea")
	suite.complete(b, time.Hour)
	suite.complete(a, 2*time.Hour)

	handler := queries.NewGetCompletedOrdersQueryHandler(suite.database.DB)
	result, err := handler.Handle(ctx, queries.NewGetCompletedOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(a.ID(), result[0].ID)
	suite.Equal(b.ID(), result[1].ID)
	suite.Require().NotNil(result[0].CompletedAt)
	suite.True(suite.base.Add(2 * time.Hour).Equal(*result[0].CompletedAt))
}

func (suite *OrderQueriesIntegrationTestSuite) TestUserOrders_NewestFirstAndFiltered() {
	ctx := context.Background()
	older := suite.place("Ali Veli", "12", 0, "Tea")
	newer := suite.place("Ali Veli", "14", time.Minute, "Coffee", "Water")
	suite.place("Ayşe", "7", 2*time.Minute, "Tea")
	suite.complete(older, time.Hour)

	handler := queries.NewGetUserOrdersQueryHandler(suite.database.DB)

	all, err := queries.NewGetUserOrdersQuery("Ali Veli", "")
	suite.Require().NoError(err)
	result, err := handler.Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID(), result[0].ID)
	suite.Len(result[0].Items, 2)
	suite.Equal(older.ID(), result[1].ID)

	active, err := queries.NewGetUserOrdersQuery("Ali Veli", "active")
	suite.Require().NoError(err)
	result, err = handler.Handle(ctx, active)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(newer.ID(), result[0].ID)

	completed, err := queries.NewGetUserOrdersQuery("Ali Veli", "completed")
	suite.Require().NoError(err)
	result, err = handler.Handle(ctx, completed)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(older.ID(), result[0].ID)

	bogus, err := queries.NewGetUserOrdersQuery("Ali Veli", "bogus")
	suite.Require().NoError(err)
	result, err = handler.Handle(ctx, bogus)
	suite.Require().NoError(err)
	suite.Len(result, 2, "unknown filter lists every order")
}

func (suite *OrderQueriesIntegrationTestSuite) TestUserOrders_DuplicateCarriesOriginalID() {
	ctx := context.Background()
	source := suite.place("Ali Veli", "12", 0, "Tea")
	dup, err := source.Duplicate(suite.base.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, dup))

	query, err := queries.NewGetUserOrdersQuery("Ali Veli", "")
	suite.Require().NoError(err)
	result, err := queries.NewGetUserOrdersQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Require().NotNil(result[0].OriginalOrderID)
	suite.Equal(source.ID(), *result[0].OriginalOrderID)
	suite.Nil(result[1].OriginalOrderID)
}

func (suite *OrderQueriesIntegrationTestSuite) TestEmptyDatabase_ReturnsEmptySlices() {
	ctx := context.Background()

	active, err := queries.NewGetActiveOrdersQueryHandler(suite.database.DB).Handle(ctx, queries.NewGetActiveOrdersQuery())
	suite.Require().NoError(err)
	suite.NotNil(active)
	suite.Empty(active)

	stats, err := queries.NewGetOrderStatsQueryHandler(suite.database.DB).Handle(ctx, queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)
	suite.Zero(stats.Active)
	suite.Zero(stats.Completed)
}

func (suite *OrderQueriesIntegrationTestSuite) TestOrderStats() {
	a := suite.place("Ali Veli", "12", 0, "Tea")
	suite.place("Ali Veli", "12", 0, "Tea")
	suite.place("Ayşe", "7", 0, "Tea")
	suite.complete(a, time.Hour)

	stats, err := queries.NewGetOrderStatsQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewGetOrderStatsQuery())

	suite.Require().NoError(err)
	suite.Equal(int64(2), stats.Active)
	suite.Equal(int64(1), stats.Completed)
}

func (suite *OrderQueriesIntegrationTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := queries.NewGetActiveOrdersQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.GetActiveOrdersQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

func (suite *OrderQueriesIntegrationTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.place("Ali Veli", "12", 0, "Tea")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := queries.NewGetActiveOrdersQueryHandler(suite.database.DB).Handle(ctx, queries.NewGetActiveOrdersQuery())

	suite.Require().Error(err)
	suite.Nil(result)
}

// place stores an order created offset after the suite's base time with one
// item per product, quantities counting up from 1.
func (suite *OrderQueriesIntegrationTestSuite) place(
	userName, room string,
	offset time.Duration,
	products ...string,
) *order.Order {
	items := make([]order.Item, 0, len(products))
	for idx, product := range products {
		item, err := order.NewItem(product, idx+1)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	o, err := order.NewOrder(userName, room, "", items, suite.base.Add(offset))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), o))
	return o
}

func (suite *OrderQueriesIntegrationTestSuite) complete(o *order.Order, offset time.Duration) {
	suite.Require().NoError(suite.repo.MarkCompleted(context.Background(), o.ID(), suite.base.Add(offset)))
}

func TestOrderQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesIntegrationTestSuite))
}
