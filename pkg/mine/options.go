package mine

import "github.com/faraday/borgelt/pkg/tract"

// Target selects which patterns the engine reports, per spec.md §6.
type Target int

const (
	// TargetAll reports every frequent pattern.
	TargetAll Target = iota
	// TargetClosed reports only closed patterns: those with no frequent
	// proper superset of identical support.
	TargetClosed
)

// Options carries the configuration spec.md §6 enumerates. It is loadable
// either as a struct literal (library use) or via
// envconfig.Process("BORGELT", &opts) (CLI use), matching the teacher's
// habit of keeping both a programmatic Configuration and an environment-
// driven entry point side by side.
type Options struct {
	Target     Target        `envconfig:"TARGET" default:"0"`
	MinSupport tract.Support `envconfig:"MIN_SUPPORT" default:"1"`
	// MaxLength (zmax) bounds how deep Mine/MineWeighted recurse; the
	// ceiling on reported prefix length is enforced by the reporter (see
	// report.NewBoundedCollector), as for MinLength. -1 means unbounded;
	// Validate rejects values below -1.
	MaxLength int `envconfig:"MAX_LENGTH" default:"-1"`
	// MinLength (zmin) is enforced by the reporter, not the core engine,
	// per spec.md §6 — Options carries it only so a single envconfig block
	// can configure both layers from the same environment.
	MinLength int `envconfig:"MIN_LENGTH" default:"0"`
	// MaxArenaBytes bounds the size of any single conditional extension
	// arena, as the synthetic OutOfMemory policy described in SPEC_FULL.md
	// §5. Zero means unbounded.
	MaxArenaBytes int64 `envconfig:"MAX_ARENA_BYTES" default:"0"`
}

// Validate rejects configurations spec.md §7 calls InvalidConfig before the
// core ever sees them. MinSupport is not one of them: spec.md §6 has smin
// clamped to >= 1 rather than rejected, matching sequoia.c's unconditional
// "rd->smin = (smin > 0) ? smin : 1;" — Mine/MineWeighted perform that
// clamp themselves.
func (o Options) Validate() error {
	if o.MaxLength < -1 {
		return errWrap(ErrInvalidConfig, "max length must be -1 (unbounded) or non-negative")
	}
	if o.MinLength < 0 {
		return errWrap(ErrInvalidConfig, "min length must not be negative")
	}
	if o.MaxArenaBytes < 0 {
		return errWrap(ErrInvalidConfig, "max arena bytes must not be negative")
	}
	return nil
}

func (o Options) zmax() int {
	if o.MaxLength < 0 {
		return int(^uint(0) >> 1) // unbounded: treat as max int
	}
	return o.MaxLength
}
