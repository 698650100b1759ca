package ledgerstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pokerledger/internal/dependencies/mocks"
	"github.com/mcoot/pokerledger/internal/model"
	"github.com/mcoot/pokerledger/internal/storage/memory"
	"github.com/mcoot/pokerledger/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func amount(v float64) *float64 { return &v }

func (s *ServiceSuite) sampleSession() *model.Session {
	session := model.NewSession(s.clock.Now())
	session.Players = append(session.Players,
		model.Player{
			ID:        "abc12345lqz",
			Name:      "Alice",
			BuyIns:    []float64{50, 25},
			CashOut:   amount(75),
			CreatedAt: s.clock.Now(),
		},
		model.Player{
			ID:        "def67890lr0",
			Name:      "Bob",
			BuyIns:    []float64{40},
			CreatedAt: s.clock.Now().Add(time.Minute),
		},
	)
	return session
}

// Load tests

func (s *ServiceSuite) TestLoadAbsentKeyReturnsEmptySession() {
	session := s.service.Load(s.ctx)

	s.Empty(session.Players)
	s.NotNil(session.Players)
	s.Equal(s.clock.Now(), session.CreatedAt)
	s.Equal(s.clock.Now(), session.UpdatedAt)
}

func (s *ServiceSuite) TestLoadMalformedTextReturnsEmptySession() {
	_ = s.storage.Set(s.ctx, SessionKey, "{not json")

	session := s.service.Load(s.ctx)

	s.Empty(session.Players)
	s.Equal(s.clock.Now(), session.CreatedAt)
}

func (s *ServiceSuite) TestLoadRecordWithoutPlayersReturnsEmptySession() {
	cases := []string{
		`{"createdAt":1,"updatedAt":2}`,
		`{"players":null,"createdAt":1}`,
		`null`,
	}
	for _, raw := range cases {
		_ = s.storage.Set(s.ctx, SessionKey, raw)

		session := s.service.Load(s.ctx)

		s.Empty(session.Players, raw)
		s.Equal(s.clock.Now(), session.CreatedAt, raw)
	}
}

func (s *ServiceSuite) TestLoadWrongShapeReturnsEmptySession() {
	_ = s.storage.Set(s.ctx, SessionKey, `{"players":"lots"}`)

	session := s.service.Load(s.ctx)

	s.Empty(session.Players)
}

func (s *ServiceSuite) TestLoadReadsPersistedFormat() {
	raw := `{"players":[{"id":"p1","name":"Carol","buyIns":[20,10.5],"cashOut":null,"createdAt":1704139200000}],` +
		`"createdAt":1704139200000,"updatedAt":1704139260000}`
	_ = s.storage.Set(s.ctx, SessionKey, raw)

	session := s.service.Load(s.ctx)

	s.Require().Len(session.Players, 1)
	p := session.Players[0]
	s.Equal(model.PlayerID("p1"), p.ID)
	s.Equal("Carol", p.Name)
	s.Equal([]float64{20, 10.5}, p.BuyIns)
	s.Nil(p.CashOut)
	s.Equal(time.UnixMilli(1704139200000).UTC(), p.CreatedAt)
	s.Equal(time.UnixMilli(1704139260000).UTC(), session.UpdatedAt)
}

// Save tests

func (s *ServiceSuite) TestSaveStampsUpdatedAt() {
	session := s.sampleSession()
	s.clock.Advance(5 * time.Minute)

	s.Require().NoError(s.service.Save(s.ctx, session))

	s.Equal(s.clock.Now(), session.UpdatedAt)
}

func (s *ServiceSuite) TestSaveWritesNullCashOut() {
	session := s.sampleSession()
	s.Require().NoError(s.service.Save(s.ctx, session))

	raw, err := s.storage.Get(s.ctx, SessionKey)
	s.Require().NoError(err)
	s.Contains(raw, `"cashOut":null`)
	s.Contains(raw, `"cashOut":75`)
	s.Contains(raw, `"buyIns":[50,25]`)
}

func (s *ServiceSuite) TestSaveThenLoadRoundTrips() {
	session := s.sampleSession()
	s.clock.Advance(time.Hour)
	s.Require().NoError(s.service.Save(s.ctx, session))

	loaded := s.service.Load(s.ctx)

	s.Equal(session, loaded)
}

func (s *ServiceSuite) TestSaveReturnsWriteFailure() {
	quota := errors.New("quota exceeded")
	s.storage.FailWrites(quota)

	err := s.service.Save(s.ctx, s.sampleSession())

	s.ErrorIs(err, quota)
}

// Clear tests

func (s *ServiceSuite) TestClearRemovesRecord() {
	s.Require().NoError(s.service.Save(s.ctx, s.sampleSession()))

	s.Require().NoError(s.service.Clear(s.ctx))

	_, err := s.storage.Get(s.ctx, SessionKey)
	s.ErrorIs(err, model.ErrKeyNotFound)
	s.Empty(s.service.Load(s.ctx).Players)
}

func (s *ServiceSuite) TestClearAbsentKeySucceeds() {
	s.NoError(s.service.Clear(s.ctx))
}

func (s *ServiceSuite) TestClearReturnsWriteFailure() {
	quota := errors.New("quota exceeded")
	s.storage.FailWrites(quota)

	s.ErrorIs(s.service.Clear(s.ctx), quota)
}
