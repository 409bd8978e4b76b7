// Package checksum implements small checksum and validation routines:
// CRC-16, the Luhn algorithm and salted hex digests.
package checksum

import (
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"hash"

	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
)

// crc16Poly is the reflected form of the CRC-16/ARC polynomial 0x8005.
const crc16Poly = 0xA001

// CRC16 computes the CRC-16 of data, continuing from seed. A zero seed gives
// the CRC-16/ARC checksum.
func CRC16(data []byte, seed uint16) uint16 {
	crc := seed
	for _, b := range data {
		ch := uint16(b)
		for range 8 {
			if (crc^ch)&1 == 1 {
				crc = crc>>1 ^ crc16Poly
			} else {
				crc >>= 1
			}
			ch >>= 1
		}
	}
	return crc
}

// sum of digits of index*2
var luhnOddLookup = [10]int{0, 2, 4, 6, 8, 1, 3, 5, 7, 9}

// Luhn checks a candidate number for validity according to the Luhn
// algorithm (used in validation of, for example, credit cards).
// Candidates containing non-digit characters are invalid.
func Luhn(candidate string) bool {
	sum := 0
	for pos, i := 0, len(candidate)-1; i >= 0; pos, i = pos+1, i-1 {
		digit := int(candidate[i]) - '0'
		if digit < 0 || digit > 9 {
			return false
		}
		if pos%2 == 0 {
			sum += digit
		} else {
			sum += luhnOddLookup[digit]
		}
	}
	return sum%10 == 0
}

// Hexdigest returns the hex digest of salt+s using the given algorithm,
// "md5" or "sha1". Weak algorithms kept for compatibility with digests
// persisted by legacy systems.
func Hexdigest(algorithm, salt, s string) (string, error) {
	var h hash.Hash
	switch algorithm {
	case "md5":
		h = md5.New() //nolint:gosec
	case "sha1":
		h = sha1.New() //nolint:gosec
	default:
		return "", errors.Errorf("unknown algorithm type %q", algorithm)
	}
	_, _ = h.Write([]byte(salt))
	_, _ = h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Sum64 returns a fast non-cryptographic 64-bit digest of data. Not suitable
// where collision resistance matters.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
