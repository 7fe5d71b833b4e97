package bigint

import "errors"

var (
	// ErrDivisionByZero is returned when dividing by a zero divisor.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrNonPositiveModulus is returned when a modular operation is given a
	// modulus that is zero or negative.
	ErrNonPositiveModulus = errors.New("bigint: modulus not positive")

	// ErrNoInverse is returned by ModInverse when the receiver and the
	// modulus are not coprime.
	ErrNoInverse = errors.New("bigint: no modular inverse")

	// ErrInvalidNumber is returned when parsing a malformed numeric string.
	ErrInvalidNumber = errors.New("bigint: invalid number")

	// ErrInvalidRadix is returned for radixes outside [2, 36].
	ErrInvalidRadix = errors.New("bigint: radix out of range")

	// ErrInvalidBitLength is returned when a prime of fewer than 2 bits is
	// requested.
	ErrInvalidBitLength = errors.New("bigint: bit length too small")

	// ErrNoPrimeFound is returned when the candidate retry cap is exhausted
	// without finding a probable prime. This indicates a broken random
	// source rather than bad luck.
	ErrNoPrimeFound = errors.New("bigint: no probable prime found")
)
