package mine

import "github.com/pkg/errors"

// Sentinel error kinds surfaced by the core, per spec.md §7.
var (
	// ErrOutOfMemory is returned when an arena allocation would exceed
	// Options.MaxArenaBytes (see SPEC_FULL.md §5 for why this stands in for
	// the source's malloc-failure path, which has no Go analogue).
	ErrOutOfMemory = errors.New("borgelt: arena allocation exceeds configured budget")
	// ErrReporter is returned when the reporter sink refuses an emission.
	ErrReporter = errors.New("borgelt: reporter sink refused an emission")
	// ErrInvalidConfig is returned by Options.Validate.
	ErrInvalidConfig = errors.New("borgelt: invalid mining configuration")
)

func errWrap(sentinel error, context string) error {
	return errors.Wrap(sentinel, context)
}
