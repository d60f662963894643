package queries_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlersIntegrationTestSuite exercises the read side against a real
// PostgreSQL instance, seeding data through the write-side repository.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.ApprovalDTO{},
		&orderrepo.HistoryDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_approvals").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_status_histories").Error)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) seedOrder(seq int64, price float64, submit bool) *order.Order {
	item, err := order.NewItem("Widget", "a widget", decimal.NewFromFloat(price), 1)
	suite.Require().NoError(err)

	number, err := order.NumberFromSequence(seq)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), number, "seeded", []*order.Item{item}, "alice")
	suite.Require().NoError(err)
	if submit {
		suite.Require().NoError(aggregate.SubmitForApproval("alice"))
	}

	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(context.Background(), aggregate))
	return aggregate
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_FullReadModel() {
	seeded := suite.seedOrder(1, 1500, true)

	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(result.ID.IsEqual(seeded.ID()))
	suite.Equal("ORD000001", result.Number)
	suite.Equal("pending_approval", result.Status)
	suite.Equal("seeded", result.Notes)
	suite.True(result.TotalAmount.Equal(decimal.NewFromInt(1500)))

	suite.Require().Len(result.Items, 1)
	suite.Equal("Widget", result.Items[0].ProductName)
	suite.True(result.Items[0].Subtotal.Equal(decimal.NewFromInt(1500)))

	suite.Require().Len(result.Approvals, 2)
	suite.Equal("first", result.Approvals[0].Level)
	suite.Equal("pending", result.Approvals[0].Status)
	suite.Nil(result.Approvals[0].ApprovedAt)

	// newest first
	suite.Require().Len(result.History, 2)
	suite.Equal("pending_approval", result.History[0].Status)
	suite.Equal("draft", result.History[1].Status)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrders_PaginatesNewestFirst() {
	for seq := int64(1); seq <= 15; seq++ {
		suite.seedOrder(seq, 100, false)
	}

	query, err := queries.NewGetOrdersQuery(1, 10, "")
	suite.Require().NoError(err)

	page, err := queries.NewGetOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(15), page.Total)
	suite.Len(page.Orders, 10)
	suite.Equal("ORD000015", page.Orders[0].Number)

	query2, err := queries.NewGetOrdersQuery(2, 10, "")
	suite.Require().NoError(err)
	page2, err := queries.NewGetOrdersQueryHandler(suite.db).Handle(context.Background(), query2)
	suite.Require().NoError(err)
	suite.Equal(int64(15), page2.Total)
	suite.Len(page2.Orders, 5)
	suite.Equal("ORD000005", page2.Orders[0].Number)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrders_StatusFilter() {
	suite.seedOrder(1, 100, false)  // draft
	suite.seedOrder(2, 2000, true)  // pending_approval
	suite.seedOrder(3, 100, true)   // approved (below threshold)

	query, err := queries.NewGetOrdersQuery(1, 10, "pending_approval")
	suite.Require().NoError(err)

	page, err := queries.NewGetOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Require().Len(page.Orders, 1)
	suite.Equal("ORD000002", page.Orders[0].Number)
	suite.Equal("pending_approval", page.Orders[0].Status)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderHistory_NewestFirst() {
	seeded := suite.seedOrder(1, 100, true) // draft then auto-approved

	query, err := queries.NewGetOrderHistoryQuery(seeded.ID())
	suite.Require().NoError(err)

	history, err := queries.NewGetOrderHistoryQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	// created, submitted, auto-approved
	suite.Require().Len(history, 3)
	suite.Equal("approved", history[0].Status)
	suite.Equal("pending_approval", history[1].Status)
	suite.Equal("draft", history[2].Status)
	suite.Equal("alice", history[0].ChangedBy)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderHistory_UnknownOrder() {
	query, err := queries.NewGetOrderHistoryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderHistoryQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPendingApprovals_OnlyUndecided() {
	suite.seedOrder(1, 100, false) // draft, no approvals
	pending := suite.seedOrder(2, 3000, true)

	decided := suite.seedOrder(3, 2000, true)
	suite.Require().NoError(decided.ProcessApproval(order.LevelFirst, order.ApprovalApproved, "carol", ""))
	suite.Require().NoError(suite.factory.Create().OrderRepository().Update(context.Background(), decided))

	result, err := queries.NewGetPendingApprovalsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetPendingApprovalsQuery())
	suite.Require().NoError(err)

	// two undecided on the untouched order, one remaining on the decided one
	suite.Require().Len(result, 3)
	for _, entry := range result {
		suite.NotEmpty(entry.OrderNumber)
		suite.Contains([]string{"first", "second"}, entry.Level)
	}

	counts := map[string]int{}
	for _, entry := range result {
		counts[entry.OrderNumber]++
	}
	suite.Equal(2, counts[pending.Number().String()])
	suite.Equal(1, counts[decided.Number().String()])
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPendingApprovals_EmptyQueue() {
	result, err := queries.NewGetPendingApprovalsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetPendingApprovalsQuery())
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
