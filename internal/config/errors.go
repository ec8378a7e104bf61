package config

import "errors"

// Resolution errors returned while selecting a base configuration or
// merging overrides onto it. All are fatal to the current invocation.
var (
	// ErrUnknownBaseName indicates that the requested base-configuration
	// name is not present in the registry. The error message lists the
	// valid names.
	ErrUnknownBaseName = errors.New("unknown base configuration")
	// ErrMissingRequiredField indicates that one or more fields remained
	// without a concrete value after merging. The error message names
	// every unresolved field.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrVariantSwitchDisabled indicates that overrides attempted to
	// replace the prototype's optimizer case while switching is disabled.
	ErrVariantSwitchDisabled = errors.New("optimizer switch disabled")
	// ErrInvalidEnumValue indicates a value outside a field's closed set
	// (dataset, optimizer type). The error message lists accepted values.
	ErrInvalidEnumValue = errors.New("invalid enum value")
	// ErrInvalidNumericValue indicates input that cannot be converted to
	// the field's declared numeric type (for example a fractional value
	// supplied for an integer field).
	ErrInvalidNumericValue = errors.New("invalid numeric value")
)
