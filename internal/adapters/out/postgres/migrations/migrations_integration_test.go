package migrations_test

import (
	"context"
	"testing"
	"time"

	"roomservice/internal/adapters/out/postgres/migrations"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MigrationsIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	dsn       string
	db        *gorm.DB
}

func (suite *MigrationsIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)
	suite.dsn = dsn

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *MigrationsIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MigrationsIntegrationTestSuite) TestUpDownUp() {
	suite.Require().NoError(migrations.Up(suite.dsn))

	version, dirty, err := migrations.Version(suite.dsn)
	suite.Require().NoError(err)
	suite.False(dirty)
	suite.Equal(uint(2), version)

	suite.Require().NoError(migrations.Up(suite.dsn), "second run is a no-op")

	suite.Require().NoError(migrations.Down(suite.dsn, 1))
	version, _, err = migrations.Version(suite.dsn)
	suite.Require().NoError(err)
	suite.Equal(uint(1), version)
	suite.False(suite.db.Migrator().HasTable("users"))
	suite.True(suite.db.Migrator().HasTable("orders"))

	suite.Require().NoError(migrations.Up(suite.dsn))
	suite.True(suite.db.Migrator().HasTable("users"))
	suite.True(suite.db.Migrator().HasColumn("orders", "user_id"))
}

func (suite *MigrationsIntegrationTestSuite) TestConstraints() {
	suite.Require().NoError(migrations.Up(suite.dsn))
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders, users CASCADE").Error)

	err := suite.db.Exec(`INSERT INTO orders (user_name, room, status, completed_at) VALUES ('Ali', '1', 'active', now())`).Error
	suite.Require().Error(err, "active order must not carry a completion time")

	err = suite.db.Exec(`INSERT INTO orders (user_name, room, status) VALUES ('Ali', '1', 'completed')`).Error
	suite.Require().Error(err, "completed order must carry a completion time")

	var id int64
	suite.Require().NoError(suite.db.Raw(
		`INSERT INTO orders (user_name, room) VALUES ('Ali', '1') RETURNING id`,
	).Scan(&id).Error)

	err = suite.db.Exec(`INSERT INTO order_items (order_id, product_name, quantity) VALUES (?, 'Tea', 0)`, id).Error
	suite.Require().Error(err, "quantity must be at least 1")

	err = suite.db.Exec(`INSERT INTO users (full_name, role) VALUES ('Ali', 'root')`).Error
	suite.Require().Error(err, "unknown role")
}

func (suite *MigrationsIntegrationTestSuite) TestDown_InvalidSteps() {
	suite.Require().Error(migrations.Down(suite.dsn, 0))
}

func TestMigrationsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MigrationsIntegrationTestSuite))
}
