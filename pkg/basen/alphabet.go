package basen

// Predefined alphabets. Symbol order is part of the contract, changing it
// breaks every persisted encoded value.
const (
	// Base62 is the alphanumeric alphabet, useful for URL shorteners.
	Base62 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base85 is the RFC 1924 alphabet, for maximally compact encodings.
	Base85 = Base62 + "!#$%&()*+-;<=>?@^_`{|}~"

	// Base16 is the hexadecimal alphabet.
	Base16 = "0123456789ABCDEF"

	// Base32 is the RFC 4648 base32 alphabet.
	Base32 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	// Base32Hex is the RFC 4648 base32hex alphabet.
	Base32Hex = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

	// Base64 is the RFC 4648 base64 alphabet.
	Base64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// Base64URL is the RFC 4648 URL-safe base64 alphabet.
	Base64URL = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)
