package errs

import "fmt"

// ConfigError marks a missing or invalid precondition (no active event, no
// data dir). Fatal to the calling operation, raised before any I/O.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

// FetchError kinds. A response that cannot be decoded into the expected page
// shape counts as an empty response, same non-advancing behavior as a
// transport failure.
const (
	FetchKindTransport     = "transport"
	FetchKindEmptyResponse = "empty_response"
)

// FetchError is a transport or parse failure from the paged fetcher. It
// never advances a checkpoint; retry policy belongs to the caller.
type FetchError struct {
	Resource string
	Kind     string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.Resource, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// RedemptionRejectedError reports that the server refused a queued
// redemption. The refusal is final, so the queued request must be dropped
// rather than retried.
type RedemptionRejectedError struct {
	Status int
	Reason string
}

func (e *RedemptionRejectedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("redemption rejected (status %d)", e.Status)
	}
	return fmt.Sprintf("redemption rejected (status %d): %s", e.Status, e.Reason)
}

// StoreError is a read or write failure in the local store. Fatal is set for
// schema-initialization failures, which make the event's handle unusable.
type StoreError struct {
	Op    string
	Fatal bool
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
