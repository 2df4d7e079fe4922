package engine

import "github.com/pkg/errors"

var (
	// ErrUnsupportedSport is returned for a sport identifier the registry
	// does not know.
	ErrUnsupportedSport = errors.New("sport not supported")

	// ErrCorruptProfile is returned when a sport profile fails validation
	// at load time, e.g. dimension weights not summing to 1.0.
	ErrCorruptProfile = errors.New("corrupt sport profile")

	// ErrInvalidState is returned when a session operation is attempted
	// outside its valid lifecycle state.
	ErrInvalidState = errors.New("invalid session state for operation")

	// ErrInsufficientData marks a computation attempted with too few
	// samples. It is always recovered locally into a neutral or omitted
	// value and never crosses the engine boundary.
	ErrInsufficientData = errors.New("insufficient data")
)
