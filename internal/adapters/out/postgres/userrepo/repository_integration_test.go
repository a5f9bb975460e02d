package userrepo_test

import (
	"context"
	"sync"
	"testing"

	"roomservice/internal/adapters/out/postgres/pgtest"
	"roomservice/internal/adapters/out/postgres/userrepo"
	"roomservice/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
)

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = userrepo.NewGormUserRepository(suite.database.DB)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpsert_InsertsThenUpdatesRole() {
	ctx := context.Background()

	first, err := user.NewUser("Ali Veli", user.Regular)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, first))
	suite.Positive(first.ID())

	second, err := user.NewUser("Ali Veli", user.Admin)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, second))
	suite.Equal(first.ID(), second.ID(), "same name resolves to the same identity")

	stored := suite.storedUser("Ali Veli")
	suite.Equal(first.ID(), stored.ID)
	suite.Equal("admin", stored.Role, "role is recomputed on every upsert")
}

func (suite *UserRepositoryIntegrationTestSuite) storedUser(fullName string) userrepo.UserDTO {
	var dto userrepo.UserDTO
	suite.Require().NoError(suite.database.DB.First(&dto, "full_name = ?", fullName).Error)
	return dto
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpsert_ConcurrentSameName() {
	ctx := context.Background()

	const callers = 10
	ids := make(chan int64, callers)
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u, err := user.NewUser("Ayşe", user.Regular)
			suite.NoError(err)
			suite.NoError(suite.repository.Upsert(ctx, u))
			ids <- u.ID()
		}()
	}
	wg.Wait()
	close(ids)

	var first int64
	for id := range ids {
		if first == 0 {
			first = id
		}
		suite.Equal(first, id)
	}

	var count int64
	suite.Require().NoError(suite.database.DB.Table("users").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpsert_NotConstructed() {
	err := suite.repository.Upsert(context.Background(), &user.User{})
	suite.Require().ErrorIs(err, user.ErrUserIsNotConstructed)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
