package uniqueid

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/uid/pkg/basen"
	"github.com/outofforest/uid/pkg/random"
)

func TestRandomID(t *testing.T) {
	requireT := require.New(t)

	id, err := RandomID()
	requireT.NoError(err)
	requireT.Less(id, uint64(1)<<56)
}

func TestRandomIDString(t *testing.T) {
	requireT := require.New(t)

	id, err := RandomIDString("")
	requireT.NoError(err)
	decoded, err := basen.MustNew(62, basen.Base62).DecodeUint64(id)
	requireT.NoError(err)
	requireT.Less(decoded, uint64(1)<<56)

	id, err = RandomIDString(basen.Base85)
	requireT.NoError(err)
	_, err = basen.MustNew(85, basen.Base85).DecodeUint64(id)
	requireT.NoError(err)

	_, err = RandomIDString("aa")
	requireT.ErrorIs(err, basen.ErrConfig)
}

func TestUniqueIDAvoidsUsedSet(t *testing.T) {
	requireT := require.New(t)

	old := random.Reader
	defer func() { random.Reader = old }()

	// pre-fill the used set with the first candidate the seeded stream
	// yields, forcing at least one retry
	random.Reader = rand.New(rand.NewSource(42))
	first, err := RandomID()
	requireT.NoError(err)

	random.Reader = rand.New(rand.NewSource(42))
	used := map[uint64]bool{first: true}
	id, err := UniqueID(func(id uint64) (bool, error) {
		return !used[id], nil
	})
	requireT.NoError(err)
	requireT.NotEqual(first, id)
	requireT.False(used[id])
}

func TestUniqueIDLiveness(t *testing.T) {
	requireT := require.New(t)

	var calls int
	id, err := UniqueID(func(id uint64) (bool, error) {
		calls++
		return calls > 5, nil
	})
	requireT.NoError(err)
	requireT.Equal(6, calls)
	requireT.Less(id, uint64(1)<<56)
}

func TestUniqueIDPredicateErrorAborts(t *testing.T) {
	requireT := require.New(t)

	errBoom := errors.New("boom")
	var calls int
	_, err := UniqueID(func(id uint64) (bool, error) {
		calls++
		return false, errBoom
	})
	requireT.ErrorIs(err, errBoom)
	requireT.Equal(1, calls)
}

func TestUniqueIDNilPredicate(t *testing.T) {
	requireT := require.New(t)

	_, err := UniqueID(nil)
	requireT.Error(err)
}

func TestUniqueBigID(t *testing.T) {
	requireT := require.New(t)

	id, err := UniqueBigID()
	requireT.NoError(err)
	requireT.LessOrEqual(id.BitLen(), 128)
	requireT.Greater(id.BitLen(), 64)
}

func TestUniqueIDString(t *testing.T) {
	requireT := require.New(t)

	// without predicate IDs are UUID-backed, 128 bits is at most 22 base62
	// characters
	id, err := UniqueIDString(nil, "")
	requireT.NoError(err)
	requireT.LessOrEqual(len(id), 22)
	_, err = basen.MustNew(62, basen.Base62).DecodeBig(id)
	requireT.NoError(err)

	used := map[string]bool{}
	var calls int
	id, err = UniqueIDString(func(id string) (bool, error) {
		calls++
		if calls < 3 {
			used[id] = true
			return false, nil
		}
		return !used[id], nil
	}, basen.Base32)
	requireT.NoError(err)
	requireT.False(used[id])
	_, err = basen.MustNew(32, basen.Base32).DecodeUint64(id)
	requireT.NoError(err)

	errBoom := errors.New("boom")
	_, err = UniqueIDString(func(string) (bool, error) {
		return false, errBoom
	}, "")
	requireT.ErrorIs(err, errBoom)
}

func TestEntropyFailure(t *testing.T) {
	requireT := require.New(t)

	old := random.Reader
	defer func() { random.Reader = old }()

	random.Reader = failingReader{}
	_, err := RandomID()
	requireT.ErrorIs(err, random.ErrEntropy)

	_, err = UniqueID(func(uint64) (bool, error) { return true, nil })
	requireT.ErrorIs(err, random.ErrEntropy)

	_, err = RandomIDString("")
	requireT.ErrorIs(err, random.ErrEntropy)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}
