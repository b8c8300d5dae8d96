package diversity

import "errors"

// Sentinel errors returned (wrapped) by the public entry points. Match with
// errors.Is.
var (
	// ErrInvalidInput indicates malformed input: bad matrix shape,
	// inconsistent IDs, an invalid pair set, or mutually exclusive
	// arguments supplied together.
	ErrInvalidInput = errors.New("diversity: invalid input")

	// ErrUnknownMetric indicates a metric name that is not registered.
	ErrUnknownMetric = errors.New("diversity: unknown metric")

	// ErrParameter indicates a metric-specific parameter that the resolved
	// metric does not accept, or a parameter supplied to a metric family
	// that takes none. Parameters are never silently dropped.
	ErrParameter = errors.New("diversity: invalid metric parameter")

	// ErrLookup indicates a tree reference that cannot be resolved: an OTU
	// absent from the tree, or duplicate tip names.
	ErrLookup = errors.New("diversity: tree lookup")
)
