package curveplate

import "errors"

// Validation sentinels returned by BuildOutline and BuildSolid before any
// geometry is computed. Callers match them with errors.Is; the wrapped
// message carries the offending value.
var (
	// ErrInvalidGauge reports a gauge that is not strictly positive.
	ErrInvalidGauge = errors.New("curveplate: gauge must be positive")

	// ErrInvalidLength reports a length that is not strictly positive.
	ErrInvalidLength = errors.New("curveplate: length must be positive")

	// ErrInvalidRadius reports a radius that is not strictly positive.
	ErrInvalidRadius = errors.New("curveplate: radius must be positive")

	// ErrInvalidArcAngle reports an arc angle outside (0, 360] degrees.
	ErrInvalidArcAngle = errors.New("curveplate: arc angle must be in (0, 360] degrees")

	// ErrAmbiguousCurveSpec reports a curve given both an arc length and an
	// arc angle. The two are mutually derivable; accepting both silently
	// would hide a mismatch between them, so the spec is rejected instead.
	ErrAmbiguousCurveSpec = errors.New("curveplate: both arc length and arc angle supplied")

	// ErrMissingCurveSpec reports a curve given neither an arc length nor an
	// arc angle.
	ErrMissingCurveSpec = errors.New("curveplate: neither arc length nor arc angle supplied")

	// ErrMissingDirection reports a transition without a curve direction.
	ErrMissingDirection = errors.New("curveplate: transition requires a left or right direction")

	// ErrInvalidHeight reports an extrusion height that is not strictly
	// positive.
	ErrInvalidHeight = errors.New("curveplate: extrusion height must be positive")

	// ErrIntegrationDiverged reports that the spiral integration refinement
	// check failed. This does not occur for physically sane inputs, but it is
	// reported rather than silently approximated.
	ErrIntegrationDiverged = errors.New("curveplate: spiral integration failed to converge")
)
