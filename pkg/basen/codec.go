package basen

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	// ErrConfig is returned when a codec is constructed with an invalid
	// radix or alphabet.
	ErrConfig = errors.New("invalid codec configuration")

	// ErrInput is returned when a value passed to Encode* or Decode* does
	// not fit the codec's radix and alphabet.
	ErrInput = errors.New("invalid input")
)

// Codec converts non-negative integers to and from strings in a fixed radix.
// It is immutable after construction and safe for concurrent use.
type Codec struct {
	radix    int
	alphabet string
	digits   map[byte]uint64
}

// New creates a codec for the given radix and alphabet. The alphabet may be
// longer than the radix, only its first radix symbols are used for encoding.
func New(radix int, alphabet string) (*Codec, error) {
	if radix < 2 || radix > len(alphabet) {
		return nil, errors.Wrapf(ErrConfig, "radix must be >= 2 and <= %d, got %d", len(alphabet), radix)
	}
	digits := make(map[byte]uint64, len(alphabet))
	for i := range len(alphabet) {
		if _, exists := digits[alphabet[i]]; exists {
			return nil, errors.Wrapf(ErrConfig, "duplicate symbols found in %q", alphabet)
		}
		digits[alphabet[i]] = uint64(i)
	}
	return &Codec{radix: radix, alphabet: alphabet, digits: digits}, nil
}

// MustNew is like New but panics on configuration errors. For package-level
// codecs built from known-good alphabets.
func MustNew(radix int, alphabet string) *Codec {
	return lo.Must(New(radix, alphabet))
}

// Radix returns the codec's radix.
func (c *Codec) Radix() int {
	return c.radix
}

// EncodeUint64 converts num to its string representation, most significant
// digit first. Zero encodes to the single zero-digit symbol.
func (c *Codec) EncodeUint64(num uint64) string {
	switch c.radix {
	case 8, 10, 16:
		if c.canonical() {
			return strings.ToUpper(strconv.FormatUint(num, c.radix))
		}
	}
	return c.encodeSlow(num)
}

func (c *Codec) encodeSlow(num uint64) string {
	radix := uint64(c.radix)
	buf := make([]byte, 0, 16)
	for {
		buf = append(buf, c.alphabet[num%radix])
		if num < radix {
			break
		}
		num /= radix
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// DecodeUint64 converts s back to an integer. Every character of s must be
// one of the codec's first radix symbols.
func (c *Codec) DecodeUint64(s string) (uint64, error) {
	if s == "" {
		return 0, errors.Wrapf(ErrInput, "empty literal for radix %d", c.radix)
	}
	if c.radix <= 36 && c.canonical() {
		num, err := strconv.ParseUint(s, c.radix, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrInput, "invalid literal for radix %d: %q", c.radix, s)
		}
		return num, nil
	}
	return c.decodeSlow(s)
}

func (c *Codec) decodeSlow(s string) (uint64, error) {
	radix := uint64(c.radix)
	var num uint64
	for i := range len(s) {
		digit, ok := c.digits[s[i]]
		if !ok || digit >= radix {
			return 0, errors.Wrapf(ErrInput, "invalid literal for radix %d: %q", c.radix, s)
		}
		if num > (math.MaxUint64-digit)/radix {
			return 0, errors.Wrapf(ErrInput, "literal out of 64-bit range for radix %d: %q", c.radix, s)
		}
		num = num*radix + digit
	}
	return num, nil
}

// EncodeBig converts an arbitrary-precision non-negative integer to its
// string representation. Needed for values wider than 64 bits, such as UUIDs.
func (c *Codec) EncodeBig(num *big.Int) (string, error) {
	if num == nil || num.Sign() < 0 {
		return "", errors.Wrap(ErrInput, "number must be non-negative")
	}
	if num.IsUint64() {
		return c.EncodeUint64(num.Uint64()), nil
	}
	radix := big.NewInt(int64(c.radix))
	n := new(big.Int).Set(num)
	rem := new(big.Int)
	buf := make([]byte, 0, 32)
	for n.Sign() > 0 {
		n.QuoRem(n, radix, rem)
		buf = append(buf, c.alphabet[rem.Uint64()])
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

// DecodeBig converts s back to an arbitrary-precision integer.
func (c *Codec) DecodeBig(s string) (*big.Int, error) {
	if s == "" {
		return nil, errors.Wrapf(ErrInput, "empty literal for radix %d", c.radix)
	}
	radix := big.NewInt(int64(c.radix))
	num := new(big.Int)
	digit := new(big.Int)
	for i := range len(s) {
		d, ok := c.digits[s[i]]
		if !ok || d >= uint64(c.radix) {
			return nil, errors.Wrapf(ErrInput, "invalid literal for radix %d: %q", c.radix, s)
		}
		num.Mul(num, radix)
		num.Add(num, digit.SetUint64(d))
	}
	return num, nil
}

// canonical reports whether the first radix symbols of the alphabet
// case-insensitively match the conventional digit ordering, meaning encoding
// and decoding may be delegated to strconv.
func (c *Codec) canonical() bool {
	return strings.EqualFold(c.alphabet[:c.radix], Base85[:c.radix])
}

// Format is a helper for one-off integer to string conversions.
func Format(num uint64, radix int, alphabet string) (string, error) {
	c, err := New(radix, alphabet)
	if err != nil {
		return "", err
	}
	return c.EncodeUint64(num), nil
}

// Parse is a helper for one-off string to integer conversions.
func Parse(s string, radix int, alphabet string) (uint64, error) {
	c, err := New(radix, alphabet)
	if err != nil {
		return 0, err
	}
	return c.DecodeUint64(s)
}
