//go:build integration

package repository

import (
	"context"
	"testing"

	"channel-relay/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// BindingRepositoryTestSuite tests the source and destination binding repositories
type BindingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	sources       *SourceBindingRepository
	destinations  *DestinationBindingRepository
	factory       *testutils.BindingFactory
	ctx           context.Context
}

func (suite *BindingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.sources = NewSourceBindingRepository(suite.baseTestSuite.DB)
	suite.destinations = NewDestinationBindingRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewBindingFactory()
	suite.ctx = context.Background()
}

func (suite *BindingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *BindingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *BindingRepositoryTestSuite) TestSourceUpsert_IsIdempotent() {
	tenantID := uuid.New()

	first := suite.factory.Source(tenantID, 100, "news")
	suite.Require().NoError(suite.sources.Upsert(suite.ctx, first))
	second := suite.factory.Source(tenantID, 100, "news (renamed)")
	suite.Require().NoError(suite.sources.Upsert(suite.ctx, second))

	bindings, err := suite.sources.GetByTenantID(suite.ctx, tenantID)
	suite.NoError(err)
	suite.Require().Len(bindings, 1)
	suite.Equal("news (renamed)", bindings[0].Title)
}

func (suite *BindingRepositoryTestSuite) TestGetTenantIDsByChatID() {
	t1, t2, t3 := uuid.New(), uuid.New(), uuid.New()
	suite.Require().NoError(suite.sources.Upsert(suite.ctx, suite.factory.Source(t1, 100, "")))
	suite.Require().NoError(suite.sources.Upsert(suite.ctx, suite.factory.Source(t2, 100, "")))
	suite.Require().NoError(suite.sources.Upsert(suite.ctx, suite.factory.Source(t3, 300, "")))

	ids, err := suite.sources.GetTenantIDsByChatID(suite.ctx, 100)
	suite.NoError(err)
	suite.ElementsMatch([]uuid.UUID{t1, t2}, ids)

	ids, err = suite.sources.GetTenantIDsByChatID(suite.ctx, 999)
	suite.NoError(err)
	suite.Empty(ids)
}

func (suite *BindingRepositoryTestSuite) TestSourceDelete() {
	tenantID := uuid.New()
	suite.Require().NoError(suite.sources.Upsert(suite.ctx, suite.factory.Source(tenantID, 100, "")))

	suite.NoError(suite.sources.Delete(suite.ctx, tenantID, 100))
	ids, err := suite.sources.GetTenantIDsByChatID(suite.ctx, 100)
	suite.NoError(err)
	suite.Empty(ids)
}

func (suite *BindingRepositoryTestSuite) TestSourceDelete_Absent() {
	suite.NoError(suite.sources.Delete(suite.ctx, uuid.New(), 12345))
}

func (suite *BindingRepositoryTestSuite) TestDestinations_ScopedPerTenant() {
	t1, t2 := uuid.New(), uuid.New()
	suite.Require().NoError(suite.destinations.Upsert(suite.ctx, suite.factory.Destination(t1, 200, "a")))
	suite.Require().NoError(suite.destinations.Upsert(suite.ctx, suite.factory.Destination(t1, 201, "b")))
	suite.Require().NoError(suite.destinations.Upsert(suite.ctx, suite.factory.Destination(t2, 300, "c")))

	bindings, err := suite.destinations.GetByTenantID(suite.ctx, t1)
	suite.NoError(err)
	chats := make([]int64, 0, len(bindings))
	for _, b := range bindings {
		chats = append(chats, b.ChatID)
	}
	suite.ElementsMatch([]int64{200, 201}, chats)
}

func (suite *BindingRepositoryTestSuite) TestDestinationDelete_LeavesOthers() {
	tenantID := uuid.New()
	suite.Require().NoError(suite.destinations.Upsert(suite.ctx, suite.factory.Destination(tenantID, 200, "")))
	suite.Require().NoError(suite.destinations.Upsert(suite.ctx, suite.factory.Destination(tenantID, 201, "")))

	suite.NoError(suite.destinations.Delete(suite.ctx, tenantID, 200))
	suite.NoError(suite.destinations.Delete(suite.ctx, tenantID, 200))

	bindings, err := suite.destinations.GetByTenantID(suite.ctx, tenantID)
	suite.NoError(err)
	suite.Require().Len(bindings, 1)
	suite.Equal(int64(201), bindings[0].ChatID)
}

func TestBindingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BindingRepositoryTestSuite))
}
