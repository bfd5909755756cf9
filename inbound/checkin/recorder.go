package checkin

import (
	"context"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"ticket-scan/common"
	"ticket-scan/common/constant"
	"ticket-scan/common/contract"
	"ticket-scan/common/errs"
	"ticket-scan/common/otel"
	"ticket-scan/model"
)

// Recorder persists an admission locally and queues the redemption for
// upload once the device is back online. The upload itself is a separate
// concern.
type Recorder struct {
	Store  contract.RedemptionStore
	ListID int64

	TimeNow func() time.Time
}

func NewRecorder(store contract.RedemptionStore, listID int64) (*Recorder, error) {
	if store == nil {
		return nil, &errs.ConfigError{Field: "store", Message: "recorder requires a store"}
	}

	return &Recorder{Store: store, ListID: listID, TimeNow: time.Now}, nil
}

// Redeem resolves the scanned secret to its cached position, writes the
// check-in record and enqueues the matching redemption request, returning
// the recorded check-in.
func (in *Recorder) Redeem(ctx context.Context, event model.Event, ticket model.SignedTicketData, answers []model.Answer) (model.CheckIn, error) {
	ctx, span := otel.Tracer.Start(ctx, "Recorder.Redeem")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	position, err := in.Store.PositionBySecret(ctx, event, ticket.Secret)
	if err != nil {
		common.UtilSpanError(span, err)
		slog.ErrorContext(ctx, "failed to resolve ticket secret",
			slog.String(constant.LogFieldEvent, event.Slug),
			slog.Any(constant.LogFieldErr, err),
			traceIdAttr)
		return model.CheckIn{}, err
	}

	now := in.TimeNow()
	checkIn := model.CheckIn{
		ID:       ulid.Make().String(),
		Secret:   position.Secret,
		ListID:   in.ListID,
		Type:     model.CheckInTypeEntry,
		Datetime: now,
	}

	if err := in.Store.SaveCheckIn(ctx, event, checkIn); err != nil {
		common.UtilSpanError(span, err)
		return model.CheckIn{}, err
	}

	err = in.Store.EnqueueRedemptionRequest(ctx, event, model.QueuedRedemptionRequest{
		ID:       ulid.Make().String(),
		Secret:   position.Secret,
		Datetime: now,
		Answers:  answers,
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return model.CheckIn{}, err
	}

	slog.InfoContext(ctx, "check-in recorded",
		slog.String(constant.LogFieldEvent, event.Slug),
		slog.Int64("position", position.ID),
		traceIdAttr)

	return checkIn, nil
}
