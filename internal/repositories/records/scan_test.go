package records_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/phnks/webfg-app-sub004/internal/redis"
	"github.com/phnks/webfg-app-sub004/internal/repositories/records"
	"github.com/phnks/webfg-app-sub004/internal/testutils"
)

type ScanTestSuite struct {
	suite.Suite
	client  redis.Client
	cleanup func()
	ctx     context.Context
}

func (s *ScanTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClientWithContext(s.T(), func(mr *miniredis.Miniredis) {
		_ = mr.Set(records.Key("item", "item-bad"), "{not json")
		_ = mr.Set(records.Key("action", "act-moved"), `{"id":"act-other","name":"Moved"}`)
		_ = mr.Set("webfg:attempts:char-brakka", "unrelated")
	})
	s.ctx = context.Background()

	repo, err := records.NewRedis(&records.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.Require().NoError(records.Seed(s.ctx, repo, testutils.CreateTestBundle()))
}

func (s *ScanTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *ScanTestSuite) TestScanFindsCorruptRecords() {
	bundle := testutils.CreateTestBundle()
	seeded := len(bundle.Characters) + len(bundle.Items) + len(bundle.Conditions) + len(bundle.Actions)

	out, err := records.ScanRedis(s.ctx, s.client)
	s.Require().NoError(err)

	s.Equal(seeded+2, out.Checked)
	s.Require().Len(out.Corrupt, 2)

	byKey := make(map[string]records.Corrupt)
	for _, c := range out.Corrupt {
		byKey[c.Key] = c
	}

	bad := byKey[records.Key("item", "item-bad")]
	s.Equal("item", bad.Kind)
	s.Contains(bad.Reason, "undecodable")

	moved := byKey[records.Key("action", "act-moved")]
	s.Equal("action", moved.Kind)
	s.Equal("id act-other does not match key", moved.Reason)
}

func (s *ScanTestSuite) TestDeleteKeys() {
	out, err := records.ScanRedis(s.ctx, s.client)
	s.Require().NoError(err)

	keys := make([]string, 0, len(out.Corrupt))
	for _, c := range out.Corrupt {
		keys = append(keys, c.Key)
	}

	deleted, err := records.DeleteKeys(s.ctx, s.client, keys)
	s.Require().NoError(err)
	s.Equal(2, deleted)

	again, err := records.ScanRedis(s.ctx, s.client)
	s.Require().NoError(err)
	s.Empty(again.Corrupt)
}

func TestScanTestSuite(t *testing.T) {
	suite.Run(t, new(ScanTestSuite))
}
