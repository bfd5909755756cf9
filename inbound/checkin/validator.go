package checkin

import (
	"context"
	"log/slog"
	"strings"

	"ticket-scan/common"
	"ticket-scan/common/constant"
	"ticket-scan/common/contract"
	"ticket-scan/common/errs"
	"ticket-scan/model"
)

// Validator performs the dataless entry-requirements check: given an item
// and the answers collected at scan time, it decides from the local cache
// alone whether every check-in-required question is satisfied. It never
// touches the network and never writes.
type Validator struct {
	Store contract.Store
}

// NewValidator rejects a missing store at construction time; a validator
// must never outlive or outrun the store it reads from.
func NewValidator(store contract.Store) (*Validator, error) {
	if store == nil {
		return nil, &errs.ConfigError{Field: "store", Message: "validator requires a store"}
	}

	return &Validator{Store: store}, nil
}

// Check returns Admit when no required check-in question of the ticket's
// item is left unanswered, Incomplete with the unmet questions (in the
// item's question order) otherwise. A cache read failure yields
// UnknownError, never an admit. The signed ticket data is already verified
// upstream and only identifies the position being checked.
func (in *Validator) Check(ctx context.Context, event model.Event, ticket model.SignedTicketData, item model.Item, answers []model.Answer) model.ValidationOutcome {
	questions, err := in.Store.GetQuestions(ctx, event, item.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get questions during ticket validation",
			slog.String(constant.LogFieldEvent, event.Slug),
			slog.Int64("item", item.ID),
			slog.Any(constant.LogFieldErr, err),
			common.ExtractTraceIDFromCtx(ctx))
		return model.UnknownErrorOutcome()
	}

	var unmet []model.Question
	for _, question := range questions {
		if !question.AskDuringCheckIn || !question.Required {
			continue
		}
		if !questionAnswered(question, answers) {
			unmet = append(unmet, question)
		}
	}

	if len(unmet) == 0 {
		return model.AdmitOutcome()
	}

	return model.IncompleteOutcome(unmet)
}

// questionAnswered reports whether the question has a meaningful answer.
// Boolean questions must be answered "true" (case-insensitive); any other
// type needs a non-empty raw value. The first answer matching the question
// identifier wins; later duplicates are ignored.
func questionAnswered(question model.Question, answers []model.Answer) bool {
	if answers == nil {
		return false
	}

	for _, answer := range answers {
		if answer.QuestionID != question.ID {
			continue
		}

		if question.Type == model.QuestionTypeBoolean {
			return strings.EqualFold(answer.Answer, "true")
		}

		return answer.Answer != ""
	}

	return false
}
