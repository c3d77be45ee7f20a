package logging

// Field names shared by every component so log output can be filtered on them.
const (
	FieldOperation  = "operation"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldBackend    = "backend"
	FieldStorageKey = "storage_key"
	FieldPath       = "path"
	FieldLanguage   = "language"
	FieldDarkMode   = "dark_mode"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldComponent  = "component"
)
