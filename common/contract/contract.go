package contract

import (
	"context"

	"ticket-scan/model"
)

// Fetcher yields one page of a resource type per call. since carries the
// checkpoint of the last completed pull (nil on first sync), cursor the
// next-page token from the previous page of the current pull.
type Fetcher interface {
	FetchPage(ctx context.Context, event model.Event, resourceType model.ResourceType, since, cursor *string) (model.Page, error)
}

// Store is the slice of the local store that the sync coordinator and the
// entry validator depend on.
type Store interface {
	Upsert(ctx context.Context, event model.Event, res model.Resource) error
	GetQuestions(ctx context.Context, event model.Event, itemID int64) ([]model.Question, error)
	GetCheckpoint(ctx context.Context, event model.Event, resourceType model.ResourceType) (string, bool, error)
	SetCheckpoint(ctx context.Context, event model.Event, resourceType model.ResourceType, marker string) error
}

// RedemptionStore is the slice of the local store that the check-in recorder
// writes through.
type RedemptionStore interface {
	PositionBySecret(ctx context.Context, event model.Event, secret string) (model.OrderPosition, error)
	SaveCheckIn(ctx context.Context, event model.Event, checkIn model.CheckIn) error
	EnqueueRedemptionRequest(ctx context.Context, event model.Event, req model.QueuedRedemptionRequest) error
}

// RedemptionQueue is the slice of the local store that the queue uploader
// drains, oldest request first.
type RedemptionQueue interface {
	NextRedemptionRequest(ctx context.Context, event model.Event) (model.QueuedRedemptionRequest, bool, error)
	DeleteRedemptionRequest(ctx context.Context, event model.Event, id string) error
	RedemptionQueueLength(ctx context.Context, event model.Event) (int, error)
}

// Redeemer posts one queued redemption to the server-side check-in list.
type Redeemer interface {
	PostRedemption(ctx context.Context, event model.Event, listID int64, req model.QueuedRedemptionRequest) error
}
