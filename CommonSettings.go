package farseer

import "math"

func Assert(a bool) {
	if !a {
		panic("Assert")
	}
}

const MaxFloat = math.MaxFloat64
const Pi = math.Pi

/// Single-precision machine epsilon. Constraint and force code compares
/// small lengths against this so that degenerate geometry degrades to
/// "no force this step" instead of dividing by zero.
const Epsilon = 1.1920928955078125e-7

/// @file
/// Global tuning constants based on meters-kilograms-seconds (MKS) units.
///

/// The maximum number of vertices on a convex polygon.
const MaxPolygonVertices = 8

/// A small length used as a constraint tolerance. Usually it is
/// chosen to be numerically significant, but visually insignificant.
const LinearSlop = 0.005

/// A small angle used as a constraint tolerance. Usually it is
/// chosen to be numerically significant, but visually insignificant.
const AngularSlop = (2.0 / 180.0 * Pi)

/// The maximum linear position correction used when solving constraints. This helps to
/// prevent overshoot.
const MaxLinearCorrection = 0.2

/// The maximum angular position correction used when solving constraints. This helps to
/// prevent overshoot.
const MaxAngularCorrection = (8.0 / 180.0 * Pi)

/// The maximum linear velocity of a body. This limit is very large and is used
/// to prevent numerical problems. You shouldn't need to adjust this.
const MaxTranslation = 2.0
const MaxTranslationSquared = (MaxTranslation * MaxTranslation)

/// The maximum angular velocity of a body. This limit is very large and is used
/// to prevent numerical problems. You shouldn't need to adjust this.
const MaxRotation = (0.5 * Pi)
const MaxRotationSquared = (MaxRotation * MaxRotation)

/// This scale factor controls how fast positional overlap is resolved. Ideally this
/// would be 1 so that overlap is removed in one time step. However using values close
/// to 1 often lead to overshoot.
const Baumgarte = 0.2

/// Default solver iteration counts per step.
const DefaultVelocityIterations = 8
const DefaultPositionIterations = 3

/// Fraction of a shape's vertices that must be inside a fluid region for
/// the shape to count as submerged. Hysteresis against numeric noise at
/// the fluid boundary.
const FluidSubmergedFractionMin = 0.15

/// Submerged polygon areas at or below this produce no buoyancy or drag.
const FluidAreaMin = 1e-4
