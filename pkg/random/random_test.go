package random

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint64(t *testing.T) {
	requireT := require.New(t)

	old := Reader
	defer func() { Reader = old }()

	Reader = bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07})
	n, err := Uint64(7)
	requireT.NoError(err)
	requireT.EqualValues(0x01020304050607, n)

	Reader = bytes.NewReader([]byte{0xff})
	n, err = Uint64(1)
	requireT.NoError(err)
	requireT.EqualValues(0xff, n)

	_, err = Uint64(0)
	requireT.ErrorIs(err, ErrConfig)
	_, err = Uint64(9)
	requireT.ErrorIs(err, ErrConfig)

	Reader = bytes.NewReader(nil)
	_, err = Uint64(4)
	requireT.ErrorIs(err, ErrEntropy)
}

func TestUniformRangeBounds(t *testing.T) {
	requireT := require.New(t)

	seen := map[uint64]bool{}
	for range 1000 {
		v, err := UniformRange(5, 8)
		requireT.NoError(err)
		requireT.GreaterOrEqual(v, uint64(5))
		requireT.LessOrEqual(v, uint64(8))
		seen[v] = true
	}
	requireT.Len(seen, 4)
}

func TestUniformRangeDegenerate(t *testing.T) {
	requireT := require.New(t)

	for range 10 {
		v, err := UniformRange(5, 5)
		requireT.NoError(err)
		requireT.EqualValues(5, v)
	}

	_, err := UniformRange(6, 5)
	requireT.ErrorIs(err, ErrConfig)
}

func TestUniformRangeDefaultAndFull(t *testing.T) {
	requireT := require.New(t)

	// maxValue of 0 selects 2^64-1
	_, err := UniformRange(10, 0)
	requireT.NoError(err)

	_, err = UniformRange(0, math.MaxUint64)
	requireT.NoError(err)

	// power-of-two span, draw space matches range exactly
	v, err := UniformRange(0, 15)
	requireT.NoError(err)
	requireT.LessOrEqual(v, uint64(15))
}

func TestUniformRangeEntropyFailure(t *testing.T) {
	requireT := require.New(t)

	old := Reader
	defer func() { Reader = old }()

	Reader = bytes.NewReader(nil)
	_, err := UniformRange(0, 9)
	requireT.ErrorIs(err, ErrEntropy)
}

func TestUniformRangeUniformity(t *testing.T) {
	requireT := require.New(t)

	const draws = 100000
	const buckets = 10

	var counts [buckets]int
	for range draws {
		v, err := UniformRange(0, buckets-1)
		requireT.NoError(err)
		counts[v]++
	}

	// chi-square against uniform, 9 degrees of freedom;
	// 33.72 is the critical value at p=0.0001
	const expected = float64(draws) / buckets
	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	requireT.Less(chi2, 33.72)
}
