package constant

const (
	LogFieldTraceId  = "trace_id"
	LogFieldErr      = "error"
	LogFieldPayload  = "payload"
	LogFieldResponse = "response"
	LogFieldEvent    = "event"
	LogFieldResource = "resource"
)
