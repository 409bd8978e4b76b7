package uniqueid

import (
	"math/big"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/outofforest/uid/pkg/basen"
	"github.com/outofforest/uid/pkg/random"
)

// RandomIDBytes is the number of entropy bytes in a short identifier.
const RandomIDBytes = 7

var base62 = basen.MustNew(62, basen.Base62)

// IsUnique decides whether a candidate integer identifier is free to use,
// e.g. by checking a datastore. Errors abort allocation immediately.
type IsUnique func(id uint64) (bool, error)

// IsUniqueString is IsUnique for string identifiers.
type IsUniqueString func(id string) (bool, error)

// RandomID returns a random 56-bit integer. It is a raw entropy draw, no
// uniqueness check is performed.
func RandomID() (uint64, error) {
	return random.Uint64(RandomIDBytes)
}

// RandomIDString returns a random 56-bit integer encoded with the given
// alphabet. An empty alphabet selects basen.Base62.
func RandomIDString(alphabet string) (string, error) {
	c, err := codecFor(alphabet)
	if err != nil {
		return "", err
	}
	id, err := random.Uint64(RandomIDBytes)
	if err != nil {
		return "", err
	}
	return c.EncodeUint64(id), nil
}

// UniqueID draws 56-bit candidates until isUnique accepts one. The loop is
// unbounded, termination relies on the predicate's acceptance rate staying
// away from zero. A caller wanting bounded retries must cap inside the
// predicate. Use UniqueBigID when no predicate is available.
func UniqueID(isUnique IsUnique) (uint64, error) {
	if isUnique == nil {
		return 0, errors.New("nil uniqueness predicate, use UniqueBigID instead")
	}
	for {
		id, err := RandomID()
		if err != nil {
			return 0, err
		}
		ok, err := isUnique(id)
		if err != nil {
			return 0, err
		}
		if ok {
			return id, nil
		}
	}
}

// UniqueBigID returns the 128-bit integer value of a version 4 UUID.
func UniqueBigID() (*big.Int, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return nil, errors.Wrapf(random.ErrEntropy, "generating uuid: %s", err)
	}
	return new(big.Int).SetBytes(u[:]), nil
}

// UniqueIDString returns a string identifier encoded with the given alphabet
// (basen.Base62 when empty). With a predicate it loops over 56-bit draws
// until one is accepted, under the same liveness assumption as UniqueID.
// Without a predicate it encodes a 128-bit UUID instead.
func UniqueIDString(isUnique IsUniqueString, alphabet string) (string, error) {
	c, err := codecFor(alphabet)
	if err != nil {
		return "", err
	}
	if isUnique == nil {
		id, err := UniqueBigID()
		if err != nil {
			return "", err
		}
		return c.EncodeBig(id)
	}
	for {
		n, err := random.Uint64(RandomIDBytes)
		if err != nil {
			return "", err
		}
		id := c.EncodeUint64(n)
		ok, err := isUnique(id)
		if err != nil {
			return "", err
		}
		if ok {
			return id, nil
		}
	}
}

func codecFor(alphabet string) (*basen.Codec, error) {
	if alphabet == "" {
		return base62, nil
	}
	return basen.New(len(alphabet), alphabet)
}
