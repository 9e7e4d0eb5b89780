package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldStage      = "stage"
	FieldTranscript = "transcript"
	FieldAmount     = "amount"
	FieldCurrency   = "currency"
	FieldType       = "transaction_type"
	FieldCategory   = "category"
	FieldMatched    = "matched"
	FieldOccurredAt = "occurred_at"
	FieldStrategy   = "strategy"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldAttempt    = "attempt"
	FieldOperation  = "operation"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
