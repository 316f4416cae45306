package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-gm-api/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	server *miniredis.Miniredis
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	_, err := redisclient.NewClient(nil, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = redisclient.NewClient([]string{""}, nil)
	s.Require().Error(err)
}

func (s *ClientTestSuite) TestPing() {
	client, err := redisclient.NewClient([]string{s.server.Addr()}, &redisclient.Options{PoolSize: 2})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(redisclient.Ping(context.Background(), client))
}

func (s *ClientTestSuite) TestPingUnavailable() {
	client, err := redisclient.NewClient([]string{s.server.Addr()}, nil)
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.server.Close()
	err = redisclient.Ping(context.Background(), client)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}
