package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output easy to filter.
const (
	FieldFile       = "file_path"
	FieldCategory   = "category"
	FieldKeyword    = "keyword"
	FieldCount      = "count"
	FieldRow        = "row"
	FieldStatus     = "status"
	FieldFlow       = "flow"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
