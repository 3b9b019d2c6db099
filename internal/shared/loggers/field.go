package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldUserAgent  = "user_agent"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldFetchID     = "fetch_id"
	FieldZoneID      = "zone_id"
	FieldPeriod      = "period"
	FieldMode        = "mode"
	FieldChunkIndex  = "chunk_index"
	FieldWindowStart = "window_start"
	FieldWindowEnd   = "window_end"
)
