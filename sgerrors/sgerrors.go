package sgerrors

import "errors"

// configuration errors, detected before any discovery runs
var (
	MissingTargetColumn = errors.New("missing target column in dataset")
	MissingClassColumn  = errors.New("missing class column in errors table")
	ClassNotPresent     = errors.New("class does not appear in the dataset target column")
	MisalignedTables    = errors.New("dataset and errors tables have a different number of rows")
	InvalidTargetValue  = errors.New("error values must be finite numbers")
)

var (
	// UnsupportedSelector is returned when plot bounds are requested for a selector that is
	// neither an interval nor a numeric equality.
	UnsupportedSelector = errors.New("unsupported feature kind")

	// MalformedRow is returned when a discovery row cannot act as an equivalence class key.
	MalformedRow = errors.New("malformed discovery row")
)
