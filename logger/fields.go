package logger

// Standard field names used across the connector packages.
const (
	FieldComponent = "component"
	FieldDevice    = "device"
	FieldAlias     = "alias"
	FieldMethod    = "method"
	FieldURL       = "url"
	FieldStatus    = "status"
	FieldRequestID = "request_id"
)
