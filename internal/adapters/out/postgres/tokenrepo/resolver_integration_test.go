package tokenrepo_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/tokenrepo"
	"fooddelivery/internal/core/domain/model/auth"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type IdentityResolverIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	resolver  *tokenrepo.GormIdentityResolver
}

func (suite *IdentityResolverIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	suite.Require().NoError(postgresadapter.Migrate(connStr))

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db
	suite.resolver = tokenrepo.NewGormIdentityResolver(db)
}

func (suite *IdentityResolverIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE access_tokens").Error)
}

func (suite *IdentityResolverIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *IdentityResolverIntegrationTestSuite) seedToken(
	token string, kind auth.PrincipalKind, principalID kernel.UUID, expiresAt time.Time,
) {
	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO access_tokens (token, principal_kind, principal_id, expires_at) VALUES (?, ?, ?, ?)",
		token, string(kind), principalID.Bytes(), expiresAt).Error)
}

func (suite *IdentityResolverIntegrationTestSuite) TestResolve_ValidToken() {
	now := time.Now().UTC()
	customerID := kernel.NewUUID()
	suite.seedToken("customer-token", auth.KindCustomer, customerID, now.Add(time.Hour))

	principal, err := suite.resolver.Resolve(context.Background(), "customer-token", now)

	suite.Require().NoError(err)
	suite.Equal(auth.KindCustomer, principal.Kind)
	suite.True(principal.ID.IsEqual(customerID))
}

func (suite *IdentityResolverIntegrationTestSuite) TestResolve_EachKind() {
	now := time.Now().UTC()
	for _, kind := range []auth.PrincipalKind{auth.KindCustomer, auth.KindDriver, auth.KindRestaurant} {
		suite.seedToken("token-"+string(kind), kind, kernel.NewUUID(), now.Add(time.Hour))

		principal, err := suite.resolver.Resolve(context.Background(), "token-"+string(kind), now)

		suite.Require().NoError(err)
		suite.Equal(kind, principal.Kind)
	}
}

func (suite *IdentityResolverIntegrationTestSuite) TestResolve_EmptyToken() {
	_, err := suite.resolver.Resolve(context.Background(), "", time.Now().UTC())

	suite.Require().ErrorIs(err, errs.ErrAuthFailed)
}

func (suite *IdentityResolverIntegrationTestSuite) TestResolve_UnknownToken() {
	_, err := suite.resolver.Resolve(context.Background(), "no-such-token", time.Now().UTC())

	suite.Require().ErrorIs(err, errs.ErrAuthFailed)
}

// An expired token must be indistinguishable from one that never existed.
func (suite *IdentityResolverIntegrationTestSuite) TestResolve_ExpiredToken_SameErrorAsUnknown() {
	now := time.Now().UTC()
	suite.seedToken("stale-token", auth.KindDriver, kernel.NewUUID(), now.Add(-time.Minute))

	_, expiredErr := suite.resolver.Resolve(context.Background(), "stale-token", now)
	_, unknownErr := suite.resolver.Resolve(context.Background(), "no-such-token", now)

	suite.Require().ErrorIs(expiredErr, errs.ErrAuthFailed)
	suite.Require().ErrorIs(unknownErr, errs.ErrAuthFailed)
	suite.Equal(unknownErr.Error(), expiredErr.Error())
}

func (suite *IdentityResolverIntegrationTestSuite) TestResolve_TokenExpiringExactlyNow() {
	now := time.Now().UTC()
	suite.seedToken("borderline-token", auth.KindCustomer, kernel.NewUUID(), now)

	_, err := suite.resolver.Resolve(context.Background(), "borderline-token", now)

	suite.Require().ErrorIs(err, errs.ErrAuthFailed)
}

func (suite *IdentityResolverIntegrationTestSuite) TestDeleteExpired() {
	now := time.Now().UTC()
	suite.seedToken("expired-1", auth.KindCustomer, kernel.NewUUID(), now.Add(-time.Hour))
	suite.seedToken("expired-2", auth.KindDriver, kernel.NewUUID(), now.Add(-time.Minute))
	suite.seedToken("live-token", auth.KindRestaurant, kernel.NewUUID(), now.Add(time.Hour))

	deleted, err := suite.resolver.DeleteExpired(context.Background(), now)

	suite.Require().NoError(err)
	suite.Equal(int64(2), deleted)

	_, err = suite.resolver.Resolve(context.Background(), "live-token", now)
	suite.Require().NoError(err)
}

func (suite *IdentityResolverIntegrationTestSuite) TestDeleteExpired_NothingToDelete() {
	deleted, err := suite.resolver.DeleteExpired(context.Background(), time.Now().UTC())

	suite.Require().NoError(err)
	suite.Equal(int64(0), deleted)
}

func TestIdentityResolverIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityResolverIntegrationTestSuite))
}
