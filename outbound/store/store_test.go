package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"ticket-scan/common/errs"
	"ticket-scan/model"
)

type StoreTestSuite struct {
	suite.Suite

	ctx   context.Context
	store *Store
	event model.Event
}

func (s *StoreTestSuite) SetupTest() {
	st, err := NewStore(s.T().TempDir())
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.store = st
	s.event = model.Event{Slug: "demo-event", Name: "Demo Event"}

	s.Require().NoError(st.Open(s.ctx, s.event))
}

func (s *StoreTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestOpenIsIdempotent() {
	s.Require().NoError(s.store.Open(s.ctx, s.event))
	s.Require().NoError(s.store.Open(s.ctx, s.event))

	counts, err := s.store.Counts(s.ctx, s.event)
	s.Require().NoError(err)
	s.Equal(ResourceCounts{}, counts)
}

func (s *StoreTestSuite) TestOpenRequiresEvent() {
	err := s.store.Open(s.ctx, model.Event{})

	var cfgErr *errs.ConfigError
	s.Require().ErrorAs(err, &cfgErr)
}

func (s *StoreTestSuite) TestUpsertIsIdempotent() {
	page := model.CategoryResource([]model.ItemCategory{
		{ID: 1, Name: "Tickets", Position: 1},
		{ID: 2, Name: "Add-ons", Position: 2, IsAddon: true},
	})

	s.Require().NoError(s.store.Upsert(s.ctx, s.event, page))
	s.Require().NoError(s.store.Upsert(s.ctx, s.event, page))

	counts, err := s.store.Counts(s.ctx, s.event)
	s.Require().NoError(err)
	s.Equal(2, counts.Categories)
}

func (s *StoreTestSuite) TestUpsertReplacesByIdentifier() {
	item := model.Item{
		ID:   10,
		Name: "Standard Ticket",
		Questions: []model.Question{
			{ID: 100, Type: model.QuestionTypeBoolean, Question: "Over 18?", Required: true, AskDuringCheckIn: true, Position: 1},
			{ID: 101, Type: model.QuestionTypeString, Question: "Badge name", Required: true, AskDuringCheckIn: true, Position: 2},
		},
	}
	s.Require().NoError(s.store.Upsert(s.ctx, s.event, model.ItemResource([]model.Item{item})))

	item.Name = "Standard Ticket (renamed)"
	item.Questions = item.Questions[:1]
	s.Require().NoError(s.store.Upsert(s.ctx, s.event, model.ItemResource([]model.Item{item})))

	got, err := s.store.GetItem(s.ctx, s.event, 10)
	s.Require().NoError(err)
	s.Equal("Standard Ticket (renamed)", got.Name)
	s.Require().Len(got.Questions, 1)
	s.Equal(int64(100), got.Questions[0].ID)

	counts, err := s.store.Counts(s.ctx, s.event)
	s.Require().NoError(err)
	s.Equal(1, counts.Items)
}

func (s *StoreTestSuite) TestUpsertUnknownResourceType() {
	err := s.store.Upsert(s.ctx, s.event, model.Resource{Type: "bogus"})

	var storeErr *errs.StoreError
	s.Require().ErrorAs(err, &storeErr)
	s.False(storeErr.Fatal)
}

func (s *StoreTestSuite) TestGetQuestions() {
	item := model.Item{
		ID: 10,
		Questions: []model.Question{
			{ID: 101, Type: model.QuestionTypeString, Question: "Badge name", Position: 2},
			{ID: 100, Type: model.QuestionTypeBoolean, Question: "Over 18?", Position: 1},
		},
	}
	s.Require().NoError(s.store.Upsert(s.ctx, s.event, model.ItemResource([]model.Item{item})))

	questions, err := s.store.GetQuestions(s.ctx, s.event, 10)
	s.Require().NoError(err)
	s.Require().Len(questions, 2)
	// Position order, not insertion order.
	s.Equal(int64(100), questions[0].ID)
	s.Equal(int64(101), questions[1].ID)
}

func (s *StoreTestSuite) TestGetQuestionsZeroQuestionsIsSuccess() {
	item := model.Item{ID: 11, Name: "Plain Ticket"}
	s.Require().NoError(s.store.Upsert(s.ctx, s.event, model.ItemResource([]model.Item{item})))

	questions, err := s.store.GetQuestions(s.ctx, s.event, 11)
	s.Require().NoError(err)
	s.Empty(questions)
}

func (s *StoreTestSuite) TestGetQuestionsMissingItemIsError() {
	_, err := s.store.GetQuestions(s.ctx, s.event, 999)

	var storeErr *errs.StoreError
	s.Require().ErrorAs(err, &storeErr)
}

func (s *StoreTestSuite) TestCheckpoints() {
	_, exists, err := s.store.GetCheckpoint(s.ctx, s.event, model.ResourceItems)
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.store.SetCheckpoint(s.ctx, s.event, model.ResourceItems, "2025-05-01T10:00:00Z"))

	marker, exists, err := s.store.GetCheckpoint(s.ctx, s.event, model.ResourceItems)
	s.Require().NoError(err)
	s.True(exists)
	s.Equal("2025-05-01T10:00:00Z", marker)

	// Checkpoints are independent per resource type.
	_, exists, err = s.store.GetCheckpoint(s.ctx, s.event, model.ResourceOrders)
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.store.SetCheckpoint(s.ctx, s.event, model.ResourceItems, "2025-05-02T10:00:00Z"))

	marker, _, err = s.store.GetCheckpoint(s.ctx, s.event, model.ResourceItems)
	s.Require().NoError(err)
	s.Equal("2025-05-02T10:00:00Z", marker)
}

func (s *StoreTestSuite) TestReset() {
	s.Require().NoError(s.store.Upsert(s.ctx, s.event, model.CategoryResource([]model.ItemCategory{{ID: 1, Name: "Tickets"}})))
	s.Require().NoError(s.store.SetCheckpoint(s.ctx, s.event, model.ResourceCategories, "2025-05-01T10:00:00Z"))

	s.Require().NoError(s.store.Reset(s.ctx, s.event))

	counts, err := s.store.Counts(s.ctx, s.event)
	s.Require().NoError(err)
	s.Equal(ResourceCounts{}, counts)

	_, exists, err := s.store.GetCheckpoint(s.ctx, s.event, model.ResourceCategories)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StoreTestSuite) TestSwitchingEventsKeepsDataApart() {
	other := model.Event{Slug: "other-event"}

	s.Require().NoError(s.store.Upsert(s.ctx, s.event, model.CategoryResource([]model.ItemCategory{{ID: 1, Name: "Tickets"}})))

	// Switching events opens a fresh database.
	counts, err := s.store.Counts(s.ctx, other)
	s.Require().NoError(err)
	s.Equal(0, counts.Categories)

	// Switching back sees the original rows again.
	counts, err = s.store.Counts(s.ctx, s.event)
	s.Require().NoError(err)
	s.Equal(1, counts.Categories)
}

func (s *StoreTestSuite) TestOrdersCascadePositions() {
	order := model.Order{
		Code:   "ABC12",
		Status: model.OrderStatusPaid,
		Positions: []model.OrderPosition{
			{ID: 1, OrderCode: "ABC12", PositionID: 1, ItemID: 10, Secret: "s-1", AttendeeName: "Jane Doe"},
			{ID: 2, OrderCode: "ABC12", PositionID: 2, ItemID: 10, Secret: "s-2", AttendeeName: "John Doe"},
		},
	}
	s.Require().NoError(s.store.Upsert(s.ctx, s.event, model.OrderResource([]model.Order{order})))

	counts, err := s.store.Counts(s.ctx, s.event)
	s.Require().NoError(err)
	s.Equal(1, counts.Orders)
	s.Equal(2, counts.Positions)

	position, err := s.store.PositionBySecret(s.ctx, s.event, "s-2")
	s.Require().NoError(err)
	s.Equal("John Doe", position.AttendeeName)

	_, err = s.store.PositionBySecret(s.ctx, s.event, "missing")
	var storeErr *errs.StoreError
	s.Require().ErrorAs(err, &storeErr)

	// A re-synced order without a position drops it from the cache.
	order.Positions = order.Positions[:1]
	s.Require().NoError(s.store.Upsert(s.ctx, s.event, model.OrderResource([]model.Order{order})))

	counts, err = s.store.Counts(s.ctx, s.event)
	s.Require().NoError(err)
	s.Equal(1, counts.Positions)

	_, err = s.store.PositionBySecret(s.ctx, s.event, "s-2")
	s.Require().ErrorAs(err, &storeErr)
}

func (s *StoreTestSuite) TestSearchOrderPositions() {
	order := model.Order{
		Code:   "XYZ99",
		Status: model.OrderStatusPaid,
		Positions: []model.OrderPosition{
			{ID: 1, PositionID: 1, ItemID: 10, Secret: "s-1", AttendeeName: "Jane Doe", AttendeeEmail: "jane@example.com"},
			{ID: 2, PositionID: 2, ItemID: 10, Secret: "s-2", AttendeeName: "Someone Else", AttendeeEmail: "someone@example.com"},
		},
	}
	s.Require().NoError(s.store.Upsert(s.ctx, s.event, model.OrderResource([]model.Order{order})))

	matches, err := s.store.SearchOrderPositions(s.ctx, s.event, "jane")
	s.Require().NoError(err)
	s.Require().Len(matches, 1)
	s.Equal("Jane Doe", matches[0].AttendeeName)

	matches, err = s.store.SearchOrderPositions(s.ctx, s.event, "XYZ99")
	s.Require().NoError(err)
	s.Len(matches, 2)
}

func (s *StoreTestSuite) TestRedemptionQueue() {
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	s.Require().NoError(s.store.EnqueueRedemptionRequest(s.ctx, s.event, model.QueuedRedemptionRequest{
		ID: "01A", Secret: "s-1", Datetime: base,
		Answers: []model.Answer{{QuestionID: 100, Answer: "true"}},
	}))
	s.Require().NoError(s.store.EnqueueRedemptionRequest(s.ctx, s.event, model.QueuedRedemptionRequest{
		ID: "01B", Secret: "s-2", Datetime: base.Add(time.Minute),
	}))

	length, err := s.store.RedemptionQueueLength(s.ctx, s.event)
	s.Require().NoError(err)
	s.Equal(2, length)

	next, found, err := s.store.NextRedemptionRequest(s.ctx, s.event)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal("01A", next.ID)
	s.Equal("s-1", next.Secret)
	s.Require().Len(next.Answers, 1)
	s.Equal("true", next.Answers[0].Answer)

	s.Require().NoError(s.store.DeleteRedemptionRequest(s.ctx, s.event, next.ID))

	next, found, err = s.store.NextRedemptionRequest(s.ctx, s.event)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal("01B", next.ID)

	s.Require().NoError(s.store.DeleteRedemptionRequest(s.ctx, s.event, next.ID))

	_, found, err = s.store.NextRedemptionRequest(s.ctx, s.event)
	s.Require().NoError(err)
	s.False(found)
}

func (s *StoreTestSuite) TestSaveCheckIn() {
	checkIn := model.CheckIn{
		ID:       "01C",
		Secret:   "s-1",
		ListID:   1,
		Type:     model.CheckInTypeEntry,
		Datetime: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.store.SaveCheckIn(s.ctx, s.event, checkIn))

	// Same id twice is a write failure, not a silent drop.
	err := s.store.SaveCheckIn(s.ctx, s.event, checkIn)
	var storeErr *errs.StoreError
	s.Require().ErrorAs(err, &storeErr)
}

func TestNewStoreRequiresDir(t *testing.T) {
	_, err := NewStore("")

	var cfgErr *errs.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}
