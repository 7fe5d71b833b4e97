// Package bigint implements arbitrary-precision signed integer arithmetic
// on base-2^32 limbs, built from first principles with no dependency on
// math/big.
//
// Values are immutable: every operation returns a new *Int and never
// modifies its receiver or arguments. The internal representation is
// canonical — a sign in {-1, 0, +1} and a little-endian limb slice with no
// high-order zero limbs; the zero value has sign 0 and an empty magnitude.
//
// The package provides the modular operations needed for RSA (ModPow,
// ModInverse, ProbablePrime) alongside radix conversion and two's-complement
// byte encoding compatible with Java's BigInteger.toByteArray.
//
// Basic usage:
//
//	a, err := bigint.Parse("123456789012345678901234567890")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b := bigint.New(497)
//	r, err := bigint.New(4).ModPow(bigint.New(13), b)
//	// r.String() == "445"
package bigint
