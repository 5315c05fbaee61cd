package ecc

import (
	"fmt"
	"math/big"
)

// Point is a point on a short Weierstrass curve, held in affine coordinates,
// or the point at infinity (the group identity) when both coordinates are
// absent. Points are immutable values: Add and ScalarMult return new points.
type Point struct {
	curve *CurveParams
	x, y  *FieldElement // both nil for the point at infinity
}

// NewPoint constructs a point from affine coordinates and validates it
// against the curve equation. Coordinates off the curve are rejected with
// ErrInvalidPoint.
func NewPoint(curve *CurveParams, x, y *big.Int) (Point, error) {
	fx, err := NewFieldElement(x, curve.P)
	if err != nil {
		return Point{}, fmt.Errorf("x coordinate: %w", err)
	}
	fy, err := NewFieldElement(y, curve.P)
	if err != nil {
		return Point{}, fmt.Errorf("y coordinate: %w", err)
	}

	onCurve, err := satisfiesCurve(curve, fx, fy)
	if err != nil {
		return Point{}, err
	}
	if !onCurve {
		return Point{}, fmt.Errorf("%w: (%s, %s) on %s", ErrInvalidPoint, x, y, curve.Name)
	}
	return Point{curve: curve, x: &fx, y: &fy}, nil
}

// NewInfinity returns the point at infinity, the identity of the curve group.
func NewInfinity(curve *CurveParams) Point {
	return Point{curve: curve}
}

// satisfiesCurve checks y^2 == x^3 + a*x + b in the field.
func satisfiesCurve(curve *CurveParams, x, y FieldElement) (bool, error) {
	a := newReduced(new(big.Int).Mod(curve.A, curve.P), curve.P)
	b := newReduced(new(big.Int).Mod(curve.B, curve.P), curve.P)

	lhs, err := y.Mul(y)
	if err != nil {
		return false, err
	}
	x3 := x.Pow(big.NewInt(3))
	ax, err := a.Mul(x)
	if err != nil {
		return false, err
	}
	rhs, err := x3.Add(ax)
	if err != nil {
		return false, err
	}
	rhs, err = rhs.Add(b)
	if err != nil {
		return false, err
	}
	return lhs.Equal(rhs), nil
}

// IsInfinity reports whether the point is the group identity.
func (p Point) IsInfinity() bool {
	return p.x == nil
}

// Curve returns the parameters of the curve the point lies on.
func (p Point) Curve() *CurveParams {
	return p.curve
}

// X returns a copy of the x coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int {
	if p.x == nil {
		return nil
	}
	return p.x.Num()
}

// Y returns a copy of the y coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int {
	if p.y == nil {
		return nil
	}
	return p.y.Num()
}

// Equal reports whether two points are the same point on the same curve.
// The curves are compared by parameter values, not descriptor identity.
func (p Point) Equal(q Point) bool {
	if !p.curve.matches(q.curve) {
		return false
	}
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.x.Equal(*q.x) && p.y.Equal(*q.y)
}

// Neg returns the point reflected over the x axis, i.e. the additive inverse.
func (p Point) Neg() Point {
	if p.IsInfinity() {
		return p
	}
	ny := p.y.Neg()
	return Point{curve: p.curve, x: p.x, y: &ny}
}

// Add computes the elliptic curve group law. The cases are:
//
//  1. either operand is the identity: the other is returned unchanged;
//  2. same x, opposite y (a vertical line): the identity;
//  3. doubling, where the tangent slope is (3*x^2 + a) / (2*y), with the
//     special sub-case y == 0 where the tangent is vertical;
//  4. distinct x, where the chord slope is (y2 - y1) / (x2 - x1).
//
// In the slope cases the result is x3 = s^2 - x1 - x2, y3 = s*(x1 - x3) - y1.
func (p Point) Add(q Point) (Point, error) {
	if !p.curve.matches(q.curve) {
		return Point{}, ErrCurveMismatch
	}
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}

	if p.x.Equal(*q.x) {
		if !p.y.Equal(*q.y) {
			// Vertical line through inverse points.
			return NewInfinity(p.curve), nil
		}
		if p.y.IsZero() {
			// Doubling a point with a vertical tangent.
			return NewInfinity(p.curve), nil
		}
		return p.double()
	}

	num, err := q.y.Sub(*p.y)
	if err != nil {
		return Point{}, err
	}
	den, err := q.x.Sub(*p.x)
	if err != nil {
		return Point{}, err
	}
	s, err := num.Div(den)
	if err != nil {
		return Point{}, err
	}
	return p.chord(q, s)
}

// double computes 2p for a point with nonzero y.
func (p Point) double() (Point, error) {
	a := newReduced(new(big.Int).Mod(p.curve.A, p.curve.P), p.curve.P)

	num, err := p.x.Pow(big.NewInt(2)).Scale(3).Add(a)
	if err != nil {
		return Point{}, err
	}
	s, err := num.Div(p.y.Scale(2))
	if err != nil {
		return Point{}, err
	}
	return p.chord(p, s)
}

// chord completes the addition p + q given the slope s of the line through
// them (the tangent when p == q).
func (p Point) chord(q Point, s FieldElement) (Point, error) {
	x3, err := s.Pow(big.NewInt(2)).Sub(*p.x)
	if err != nil {
		return Point{}, err
	}
	x3, err = x3.Sub(*q.x)
	if err != nil {
		return Point{}, err
	}

	dx, err := p.x.Sub(x3)
	if err != nil {
		return Point{}, err
	}
	y3, err := s.Mul(dx)
	if err != nil {
		return Point{}, err
	}
	y3, err = y3.Sub(*p.y)
	if err != nil {
		return Point{}, err
	}
	return Point{curve: p.curve, x: &x3, y: &y3}, nil
}

// ScalarMult returns k*p using the binary double-and-add method. The scalar
// is first reduced modulo the subgroup order N, and the loop always walks
// the full bit width of N so the iteration count does not depend on k.
func (p Point) ScalarMult(k *big.Int) (Point, error) {
	coef := new(big.Int).Mod(k, p.curve.N)

	result := NewInfinity(p.curve)
	current := p
	var err error
	for i := 0; i < p.curve.N.BitLen(); i++ {
		if coef.Bit(i) == 1 {
			result, err = result.Add(current)
			if err != nil {
				return Point{}, err
			}
		}
		current, err = current.Add(current)
		if err != nil {
			return Point{}, err
		}
	}
	return result, nil
}

// String implements fmt.Stringer.
func (p Point) String() string {
	if p.IsInfinity() {
		return fmt.Sprintf("Point(infinity) on %s", p.curve.Name)
	}
	return fmt.Sprintf("Point(%x, %x) on %s", p.x.num, p.y.num, p.curve.Name)
}
