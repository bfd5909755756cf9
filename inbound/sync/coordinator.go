package sync

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"ticket-scan/common"
	"ticket-scan/common/constant"
	"ticket-scan/common/contract"
	"ticket-scan/common/errs"
	"ticket-scan/common/otel"
	"ticket-scan/model"
)

// Coordinator brings one event's local cache up to date with the remote
// service, resource type by resource type. Within a type, pages are applied
// strictly in server order; across types, the dependency order in
// constant.SyncResourceOrder is honored on every run so referenced records
// always land before their referrers.
//
// Progress and OnProgress are both optional observation-only signals. A slow
// or absent listener never blocks or fails a sync.
type Coordinator struct {
	Store   contract.Store
	Fetcher contract.Fetcher

	Progress   chan model.SyncProgress
	OnProgress func(model.SyncProgress)
}

// Run executes one full sync session. The first failing resource type stops
// the session; types already completed keep their advanced checkpoints, the
// failing type keeps the checkpoint it had before its pull started.
func (in *Coordinator) Run(ctx context.Context, event model.Event) error {
	if event.Slug == "" {
		return &errs.ConfigError{Field: "event", Message: "must be set before syncing"}
	}

	ctx, span := otel.Tracer.Start(ctx, "Coordinator.Run")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "sync session started", slog.String(constant.LogFieldEvent, event.Slug), traceIdAttr)

	for _, resourceType := range constant.SyncResourceOrder {
		if err := in.SyncResource(ctx, event, resourceType); err != nil {
			common.UtilSpanError(span, err)
			slog.ErrorContext(ctx, "sync session aborted",
				slog.String(constant.LogFieldEvent, event.Slug),
				slog.String(constant.LogFieldResource, string(resourceType)),
				slog.Any(constant.LogFieldErr, err),
				traceIdAttr)
			return fmt.Errorf("sync %s: %w", resourceType, err)
		}
	}

	slog.InfoContext(ctx, "sync session completed", slog.String(constant.LogFieldEvent, event.Slug), traceIdAttr)
	return nil
}

// SyncResource pulls every page of one resource type. The checkpoint is
// advanced to the server's generation marker only after the final page is
// durably stored; any fetch, parse, store or cancellation error before that
// leaves the checkpoint untouched.
func (in *Coordinator) SyncResource(ctx context.Context, event model.Event, resourceType model.ResourceType) error {
	ctx, span := otel.Tracer.Start(ctx, "Coordinator.SyncResource")
	defer span.End()
	span.SetAttributes(attribute.String("resource.type", string(resourceType)))

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	marker, exists, err := in.Store.GetCheckpoint(ctx, event, resourceType)
	if err != nil {
		common.UtilSpanError(span, err)
		return err
	}

	var since *string
	if exists {
		since = &marker
	}

	var cursor *string
	for {
		// Cancellation between pages keeps the same guarantee as a failure.
		if err := ctx.Err(); err != nil {
			common.UtilSpanError(span, err)
			return err
		}

		page, err := in.Fetcher.FetchPage(ctx, event, resourceType, since, cursor)
		if err != nil {
			common.UtilSpanError(span, err)
			return err
		}

		if err := in.Store.Upsert(ctx, event, page.Results); err != nil {
			common.UtilSpanError(span, err)
			return err
		}

		isLastPage := page.NextCursor == nil
		in.emit(model.SyncProgress{
			ResourceType: resourceType,
			Loaded:       page.Results.Len(),
			Total:        page.TotalCount,
			IsLastPage:   isLastPage,
		})

		slog.DebugContext(ctx, "page stored",
			slog.String(constant.LogFieldResource, string(resourceType)),
			slog.Int("loaded", page.Results.Len()),
			slog.Int("total", page.TotalCount),
			slog.Bool("last_page", isLastPage),
			traceIdAttr)

		if isLastPage {
			if err := in.Store.SetCheckpoint(ctx, event, resourceType, page.GeneratedAt); err != nil {
				common.UtilSpanError(span, err)
				return err
			}

			slog.InfoContext(ctx, "resource up to date",
				slog.String(constant.LogFieldResource, string(resourceType)),
				traceIdAttr)
			return nil
		}

		cursor = page.NextCursor
	}
}

func (in *Coordinator) emit(progress model.SyncProgress) {
	if in.OnProgress != nil {
		in.OnProgress(progress)
	}

	if in.Progress == nil {
		return
	}

	select {
	case in.Progress <- progress:
	default:
	}
}
