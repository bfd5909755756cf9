package model

// SubEvent is one date of a multi-date event series.
type SubEvent struct {
	ID    int64  `json:"id" validate:"required"`
	Name  string `json:"name"`
	Event string `json:"event"`
}
