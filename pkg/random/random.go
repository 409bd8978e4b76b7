// Package random draws uniformly distributed integers from a
// cryptographically strong entropy source.
package random

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

var (
	// ErrConfig is returned when a sampling request describes an empty or
	// invalid range.
	ErrConfig = errors.New("invalid sampling range")

	// ErrEntropy is returned when the entropy source fails. There is no
	// point retrying, no identifier can be produced without entropy.
	ErrEntropy = errors.New("entropy source unavailable")
)

// Reader is the entropy source used by this package. It defaults to the OS
// CSPRNG and may be replaced in tests.
var Reader io.Reader = cryptorand.Reader

// Uint64 reads numBytes bytes of entropy and interprets them as a big-endian
// base-256 integer. numBytes must be between 1 and 8.
func Uint64(numBytes int) (uint64, error) {
	if numBytes < 1 || numBytes > 8 {
		return 0, errors.Wrapf(ErrConfig, "numBytes must be between 1 and 8, got %d", numBytes)
	}
	var buf [8]byte
	if _, err := io.ReadFull(Reader, buf[8-numBytes:]); err != nil {
		return 0, errors.Wrapf(ErrEntropy, "reading %d bytes: %s", numBytes, err)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// UniformRange returns an integer uniformly distributed over the inclusive
// range [minValue, maxValue]. maxValue of 0 selects the default upper bound
// of 2^64-1. Every value in the range has exactly equal selection
// probability, rejection sampling removes the modulo bias a plain remainder
// would introduce.
func UniformRange(minValue, maxValue uint64) (uint64, error) {
	if maxValue == 0 {
		maxValue = math.MaxUint64
	}
	if minValue > maxValue {
		return 0, errors.Wrapf(ErrConfig, "empty range [%d, %d]", minValue, maxValue)
	}

	bitLength := bits.Len64(maxValue)
	randMax := uint64(math.MaxUint64)
	if bitLength < 64 {
		randMax = 1<<uint(bitLength) - 1
	}
	valueRange := maxValue - minValue + 1

	// The draw space matches the range exactly, masked bits are already
	// uniform over it.
	if valueRange == 0 || valueRange-1 == randMax {
		base, err := drawBits(bitLength)
		if err != nil {
			return 0, err
		}
		return minValue + base, nil
	}

	bucket := randMax / valueRange
	remainder := randMax % valueRange
	for {
		base, err := drawBits(bitLength)
		if err != nil {
			return 0, err
		}
		if base == randMax {
			continue
		}
		// randMax-remainder == valueRange*bucket, so accepted draws
		// fill the buckets evenly.
		if base < randMax-remainder {
			return minValue + base/bucket, nil
		}
	}
}

// drawBits returns a uniformly random integer of at most bitLength bits.
func drawBits(bitLength int) (uint64, error) {
	numBytes := (bitLength + 7) / 8
	base, err := Uint64(numBytes)
	if err != nil {
		return 0, err
	}
	if bitLength < 64 {
		base &= 1<<uint(bitLength) - 1
	}
	return base, nil
}
