package model

import "time"

// SignedTicketData is an opaque, already-verified handle to an order
// position's secret. Signature verification happens upstream; this core
// never parses or re-checks it.
type SignedTicketData struct {
	Secret string
}

// Answer is a scan-time response to one check-in question. Answers arrive
// from the ticket-decoding layer and are never persisted by this core.
type Answer struct {
	QuestionID int64  `json:"question"`
	Answer     string `json:"answer"`
}

type CheckInType string

const (
	CheckInTypeEntry CheckInType = "entry"
	CheckInTypeExit  CheckInType = "exit"
)

// CheckIn records that a position was admitted at the door.
type CheckIn struct {
	ID       string      `json:"id"`
	Secret   string      `json:"secret"`
	ListID   int64       `json:"list"`
	Type     CheckInType `json:"type"`
	Datetime time.Time   `json:"datetime"`
}

// QueuedRedemptionRequest is an offline redemption waiting to be uploaded
// once the device is back online.
type QueuedRedemptionRequest struct {
	ID       string    `json:"id"`
	Secret   string    `json:"secret"`
	Datetime time.Time `json:"datetime"`
	Answers  []Answer  `json:"answers,omitempty"`
}
