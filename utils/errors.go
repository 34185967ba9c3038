package utils

import "errors"

// Error taxonomy. Services wrap these with fmt.Errorf("%w: ...") so callers
// can branch with errors.Is while still seeing the underlying cause.
var (
	// ErrValidation marks malformed or missing record fields caught before
	// anything reaches persistence or aggregation.
	ErrValidation = errors.New("validation failed")

	// ErrClassification marks an unreachable AI gateway or an unparseable
	// model response. No partial record is ever persisted on this path.
	ErrClassification = errors.New("classification failed")

	// ErrStorage marks a persistence failure. Retryable; in-memory state is
	// unchanged because nothing is updated before the store confirms.
	ErrStorage = errors.New("storage failed")

	// ErrInsufficientData marks a policy precondition (e.g. profile export
	// needs a minimum history), checked by callers, not by the exporters.
	ErrInsufficientData = errors.New("insufficient data")
)
