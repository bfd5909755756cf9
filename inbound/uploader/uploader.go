package uploader

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"ticket-scan/common"
	"ticket-scan/common/constant"
	"ticket-scan/common/contract"
	"ticket-scan/common/errs"
	"ticket-scan/model"
)

// Uploader drains the offline redemption queue to the remote check-in list.
// It runs on a ticker so scans made while offline reach the server shortly
// after connectivity returns.
type Uploader struct {
	Cfg    *viper.Viper
	Queue  contract.RedemptionQueue
	Remote contract.Redeemer
	Event  model.Event
	ListID int64
}

func (in Uploader) Start(ctx context.Context) {
	uploadTicker := time.NewTicker(in.Cfg.GetDuration("upload.interval"))
	defer uploadTicker.Stop()

	// Run initial drain
	in.drain(ctx)

	slog.Info("redemption uploader started")

	// Block in the main function, not in a goroutine
	for {
		select {
		case <-uploadTicker.C:
			in.drain(ctx)
		case <-ctx.Done():
			slog.Info("redemption uploader stopped")
			return
		}
	}
}

// drain pops queued requests oldest-first until the queue is empty or the
// server becomes unreachable. A rejected request is dropped so it cannot
// block everything behind it.
func (in Uploader) drain(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, in.Cfg.GetDuration("upload.timeout"))
	defer cancel()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.DebugContext(ctx, "draining redemption queue", traceIdAttr)

	for {
		queued, ok, err := in.Queue.NextRedemptionRequest(ctx, in.Event)
		if err != nil {
			slog.ErrorContext(ctx, "failed to read redemption queue", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			return
		}
		if !ok {
			slog.DebugContext(ctx, "redemption queue drained", traceIdAttr)
			return
		}

		if err := in.Remote.PostRedemption(ctx, in.Event, in.ListID, queued); err != nil {
			var rejected *errs.RedemptionRejectedError
			if !errors.As(err, &rejected) {
				slog.WarnContext(ctx, "failed to upload redemption, will retry", traceIdAttr, slog.Any(constant.LogFieldErr, err))
				return
			}
			slog.WarnContext(ctx, "redemption rejected by server, dropping", traceIdAttr,
				slog.String(constant.LogFieldPayload, queued.ID), slog.Any(constant.LogFieldErr, rejected))
		}

		if err := in.Queue.DeleteRedemptionRequest(ctx, in.Event, queued.ID); err != nil {
			slog.ErrorContext(ctx, "failed to delete uploaded redemption", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			return
		}
	}
}
