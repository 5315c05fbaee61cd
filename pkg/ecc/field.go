package ecc

import (
	"fmt"
	"math/big"
)

// FieldElement represents an element of the finite field of integers modulo a
// prime. Elements are immutable: every operation returns a fresh element and
// never mutates its operands, so values can be shared freely across
// goroutines.
//
// Two elements are only combinable when they share the same prime; mixing
// moduli is a programming error and is rejected with ErrFieldMismatch rather
// than producing a silently wrong result.
type FieldElement struct {
	num   *big.Int
	prime *big.Int
}

// NewFieldElement constructs a field element from a value and a prime
// modulus. The value must already be reduced, i.e. 0 <= num < prime,
// otherwise ErrValueOutOfRange is returned.
func NewFieldElement(num, prime *big.Int) (FieldElement, error) {
	if num.Sign() < 0 || num.Cmp(prime) >= 0 {
		return FieldElement{}, fmt.Errorf("%w: %s not in [0, %s)", ErrValueOutOfRange, num, prime)
	}
	return FieldElement{
		num:   new(big.Int).Set(num),
		prime: new(big.Int).Set(prime),
	}, nil
}

// newReduced builds an element from a value that is known to be reduced.
// Ownership of num transfers to the element; prime is shared read-only.
func newReduced(num, prime *big.Int) FieldElement {
	return FieldElement{num: num, prime: prime}
}

// Num returns a copy of the element's value.
func (e FieldElement) Num() *big.Int {
	return new(big.Int).Set(e.num)
}

// Prime returns a copy of the field's prime modulus.
func (e FieldElement) Prime() *big.Int {
	return new(big.Int).Set(e.prime)
}

// IsZero reports whether the element is the additive identity.
func (e FieldElement) IsZero() bool {
	return e.num.Sign() == 0
}

// Equal reports whether two elements have the same value and modulus.
// Elements of different fields are never equal.
func (e FieldElement) Equal(other FieldElement) bool {
	return e.prime.Cmp(other.prime) == 0 && e.num.Cmp(other.num) == 0
}

func (e FieldElement) sameField(other FieldElement) error {
	if e.prime.Cmp(other.prime) != 0 {
		return fmt.Errorf("%w: %s vs %s", ErrFieldMismatch, e.prime, other.prime)
	}
	return nil
}

// Add returns e + other mod prime.
func (e FieldElement) Add(other FieldElement) (FieldElement, error) {
	if err := e.sameField(other); err != nil {
		return FieldElement{}, err
	}
	num := new(big.Int).Add(e.num, other.num)
	num.Mod(num, e.prime)
	return newReduced(num, e.prime), nil
}

// Sub returns e - other mod prime.
func (e FieldElement) Sub(other FieldElement) (FieldElement, error) {
	if err := e.sameField(other); err != nil {
		return FieldElement{}, err
	}
	num := new(big.Int).Sub(e.num, other.num)
	num.Mod(num, e.prime) // big.Int.Mod is Euclidean, result is never negative
	return newReduced(num, e.prime), nil
}

// Mul returns e * other mod prime.
func (e FieldElement) Mul(other FieldElement) (FieldElement, error) {
	if err := e.sameField(other); err != nil {
		return FieldElement{}, err
	}
	num := new(big.Int).Mul(e.num, other.num)
	num.Mod(num, e.prime)
	return newReduced(num, e.prime), nil
}

// Div returns e / other mod prime. The inverse of the divisor is computed as
// other^(p-2) via Fermat's little theorem, so no separate inversion routine
// is needed. Dividing by the zero element returns ErrDivisionByZero.
func (e FieldElement) Div(other FieldElement) (FieldElement, error) {
	if err := e.sameField(other); err != nil {
		return FieldElement{}, err
	}
	if other.num.Sign() == 0 {
		return FieldElement{}, ErrDivisionByZero
	}
	exp := new(big.Int).Sub(e.prime, big.NewInt(2))
	return e.Mul(other.Pow(exp))
}

// Pow returns e^exp mod prime. Negative exponents are supported: the exponent
// is first reduced modulo p-1 (a^(p-1) = 1 for nonzero a), which maps any
// integer exponent onto [0, p-1). The exponentiation itself is a
// square-and-multiply loop with an iteration count fixed by the bit width of
// p-1 rather than by the exponent's value.
func (e FieldElement) Pow(exp *big.Int) FieldElement {
	pMinusOne := new(big.Int).Sub(e.prime, big.NewInt(1))
	k := new(big.Int).Mod(exp, pMinusOne)

	result := big.NewInt(1)
	for i := pMinusOne.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, e.prime)
		if k.Bit(i) == 1 {
			result.Mul(result, e.num)
			result.Mod(result, e.prime)
		}
	}
	return newReduced(result, e.prime)
}

// Neg returns the additive inverse -e mod prime.
func (e FieldElement) Neg() FieldElement {
	if e.num.Sign() == 0 {
		return newReduced(new(big.Int), e.prime)
	}
	return newReduced(new(big.Int).Sub(e.prime, e.num), e.prime)
}

// Scale returns e multiplied by a plain integer coefficient. It is a
// convenience for the small constant factors in the group law slopes.
func (e FieldElement) Scale(c int64) FieldElement {
	num := new(big.Int).Mul(e.num, big.NewInt(c))
	num.Mod(num, e.prime)
	return newReduced(num, e.prime)
}

// Sqrt returns a square root of e, valid only for fields whose prime
// satisfies p % 4 == 3 (true for secp256k1). In that case a root of a
// quadratic residue is e^((p+1)/4). If e is not a quadratic residue, or the
// prime does not support the shortcut, ErrNoSquareRoot is returned.
func (e FieldElement) Sqrt() (FieldElement, error) {
	if new(big.Int).Mod(e.prime, big.NewInt(4)).Int64() != 3 {
		return FieldElement{}, fmt.Errorf("%w: prime %% 4 != 3", ErrNoSquareRoot)
	}
	exp := new(big.Int).Add(e.prime, big.NewInt(1))
	exp.Rsh(exp, 2)
	root := e.Pow(exp)

	check, err := root.Mul(root)
	if err != nil {
		return FieldElement{}, err
	}
	if !check.Equal(e) {
		return FieldElement{}, ErrNoSquareRoot
	}
	return root, nil
}

// String implements fmt.Stringer.
func (e FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", e.prime, e.num)
}
