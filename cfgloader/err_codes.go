package cfgloader

// Error codes returned by Load.
const (
	CodeInvalidEnvironment = "CONFIG_INVALID_ENVIRONMENT"
	CodeFileNotFound       = "CONFIG_FILE_NOT_FOUND"
	CodeInvalidConfig      = "CONFIG_INVALID"
)
