package ecc

import "errors"

// Common errors returned by the elliptic curve arithmetic layer.
var (
	// ErrFieldMismatch is returned when an operation combines field elements
	// that belong to fields with different prime moduli.
	ErrFieldMismatch = errors.New("field elements have different prime moduli")

	// ErrDivisionByZero is returned when dividing by the additive identity.
	ErrDivisionByZero = errors.New("division by the zero field element")

	// ErrValueOutOfRange is returned when constructing a field element whose
	// value does not lie in [0, prime).
	ErrValueOutOfRange = errors.New("value outside the field range [0, prime)")

	// ErrInvalidPoint is returned when coordinates do not satisfy the curve
	// equation y^2 = x^3 + a*x + b.
	ErrInvalidPoint = errors.New("coordinates are not on the curve")

	// ErrCurveMismatch is returned when combining points that belong to
	// different curves.
	ErrCurveMismatch = errors.New("points belong to different curves")

	// ErrNoSquareRoot is returned when a field element has no square root,
	// or when the field prime does not support the sqrt shortcut (p % 4 != 3).
	ErrNoSquareRoot = errors.New("no square root exists for the value")
)
