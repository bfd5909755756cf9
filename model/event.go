package model

// Event is the tenant boundary: every cached resource, checkpoint and
// check-in belongs to exactly one event, keyed by its slug.
type Event struct {
	Slug string `json:"slug" validate:"required"`
	Name string `json:"name"`
}
