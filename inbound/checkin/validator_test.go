package checkin

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ticket-scan/common/contract/mocks"
	"ticket-scan/common/errs"
	"ticket-scan/model"
)

type ValidatorTestSuite struct {
	suite.Suite

	ctx       context.Context
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	validator *Validator
	event     model.Event
	item      model.Item
	ticket    model.SignedTicketData
}

func (s *ValidatorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)

	validator, err := NewValidator(s.store)
	s.Require().NoError(err)
	s.validator = validator

	s.event = model.Event{Slug: "demo-event"}
	s.item = model.Item{ID: 10, Name: "Standard"}
	s.ticket = model.SignedTicketData{Secret: "s-1"}
}

func (s *ValidatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func TestNewValidatorRequiresStore(t *testing.T) {
	_, err := NewValidator(nil)
	if err == nil {
		t.Fatal("expected error for nil store")
	}
}

func boolQuestion(id int64) model.Question {
	return model.Question{ID: id, Type: model.QuestionTypeBoolean, Question: "Over 18?", Required: true, AskDuringCheckIn: true}
}

func textQuestion(id int64) model.Question {
	return model.Question{ID: id, Type: model.QuestionTypeText, Question: "Badge name", Required: true, AskDuringCheckIn: true}
}

func (s *ValidatorTestSuite) TestCheck() {
	tests := []struct {
		name       string
		questions  []model.Question
		answers    []model.Answer
		wantStatus model.CheckStatus
		wantUnmet  []int64
	}{
		{
			name:       "no questions admits",
			questions:  nil,
			answers:    nil,
			wantStatus: model.StatusAdmit,
		},
		{
			name:       "boolean answered true",
			questions:  []model.Question{boolQuestion(100)},
			answers:    []model.Answer{{QuestionID: 100, Answer: "True"}},
			wantStatus: model.StatusAdmit,
		},
		{
			name:       "boolean answered false",
			questions:  []model.Question{boolQuestion(100)},
			answers:    []model.Answer{{QuestionID: 100, Answer: "false"}},
			wantStatus: model.StatusIncomplete,
			wantUnmet:  []int64{100},
		},
		{
			name:       "boolean answered garbage",
			questions:  []model.Question{boolQuestion(100)},
			answers:    []model.Answer{{QuestionID: 100, Answer: "yes"}},
			wantStatus: model.StatusIncomplete,
			wantUnmet:  []int64{100},
		},
		{
			name:       "boolean unanswered",
			questions:  []model.Question{boolQuestion(100)},
			answers:    []model.Answer{{QuestionID: 999, Answer: "true"}},
			wantStatus: model.StatusIncomplete,
			wantUnmet:  []int64{100},
		},
		{
			name:       "text answered",
			questions:  []model.Question{textQuestion(101)},
			answers:    []model.Answer{{QuestionID: 101, Answer: "Jane"}},
			wantStatus: model.StatusAdmit,
		},
		{
			name:       "text answered empty",
			questions:  []model.Question{textQuestion(101)},
			answers:    []model.Answer{{QuestionID: 101, Answer: ""}},
			wantStatus: model.StatusIncomplete,
			wantUnmet:  []int64{101},
		},
		{
			name:       "text whitespace counts as answered",
			questions:  []model.Question{textQuestion(101)},
			answers:    []model.Answer{{QuestionID: 101, Answer: " "}},
			wantStatus: model.StatusAdmit,
		},
		{
			name:       "first matching answer wins",
			questions:  []model.Question{boolQuestion(100)},
			answers:    []model.Answer{{QuestionID: 100, Answer: "false"}, {QuestionID: 100, Answer: "true"}},
			wantStatus: model.StatusIncomplete,
			wantUnmet:  []int64{100},
		},
		{
			name:       "nil answers leaves every question unmet in order",
			questions:  []model.Question{boolQuestion(100), textQuestion(101)},
			answers:    nil,
			wantStatus: model.StatusIncomplete,
			wantUnmet:  []int64{100, 101},
		},
		{
			name: "not-required and not-asked questions are skipped",
			questions: []model.Question{
				{ID: 102, Type: model.QuestionTypeText, Required: true, AskDuringCheckIn: false},
				{ID: 103, Type: model.QuestionTypeText, Required: false, AskDuringCheckIn: true},
			},
			answers:    nil,
			wantStatus: model.StatusAdmit,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.store.EXPECT().
				GetQuestions(gomock.Any(), s.event, s.item.ID).
				Return(tt.questions, nil)

			outcome := s.validator.Check(s.ctx, s.event, s.ticket, s.item, tt.answers)

			s.Equal(tt.wantStatus, outcome.Status)

			gotUnmet := make([]int64, 0, len(outcome.Unmet))
			for _, question := range outcome.Unmet {
				gotUnmet = append(gotUnmet, question.ID)
			}
			if len(tt.wantUnmet) == 0 {
				s.Empty(gotUnmet)
			} else {
				s.Equal(tt.wantUnmet, gotUnmet)
			}
		})
	}
}

func (s *ValidatorTestSuite) TestCheckStoreFailureNeverAdmits() {
	s.store.EXPECT().
		GetQuestions(gomock.Any(), s.event, s.item.ID).
		Return(nil, &errs.StoreError{Op: "get questions", Err: fmt.Errorf("corrupted cache")})

	outcome := s.validator.Check(s.ctx, s.event, s.ticket, s.item, []model.Answer{{QuestionID: 100, Answer: "true"}})

	s.Equal(model.StatusUnknownError, outcome.Status)
	s.Empty(outcome.Unmet)
}
