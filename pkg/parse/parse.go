// Package parse contains small lenient conversion helpers.
package parse

import (
	"encoding/binary"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ClampInt converts value to an integer clipped to [minValue, maxValue],
// falling back to def when the value is not a number.
func ClampInt(value string, def, minValue, maxValue int) int {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		v = def
	}
	return max(minValue, min(v, maxValue))
}

// Bool interprets common affirmative strings ("yes", "true", "on", "1") as
// true and everything else as false.
func Bool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "true", "on", "1":
		return true
	default:
		return false
	}
}

// SplitAny splits s on every character present in seps, keeping empty
// fields.
func SplitAny(s, seps string) []string {
	if s == "" || seps == "" {
		return []string{s}
	}
	sep := rune(seps[0])
	mapped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(seps, r) {
			return sep
		}
		return r
	}, s)
	return strings.Split(mapped, string(sep))
}

// IP4 parses IPv4 address. It panics on invalid input and is meant for
// addresses known at compile time.
func IP4(ip string) net.IP {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		panic(errors.New("invalid IP address"))
	}
	parsedIP = parsedIP.To4()
	if parsedIP == nil {
		panic(errors.New("not an IPv4 address"))
	}

	return parsedIP
}

// IP4ToUint32 converts an IPv4 address to its 32-bit integer form.
func IP4ToUint32(ip net.IP) (uint32, error) {
	ip4 := ip.To4()
	if ip4 == nil {
		return 0, errors.Errorf("not an IPv4 address: %s", ip)
	}
	return binary.BigEndian.Uint32(ip4), nil
}

// Uint32ToIP4 converts a 32-bit integer to an IPv4 address.
func Uint32ToIP4(n uint32) net.IP {
	ip := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(ip, n)
	return ip
}

// ISO8601 formats t as an ISO 8601 timestamp, "Z" suffixed for UTC. The zero
// time formats to an empty string.
func ISO8601(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if _, offset := t.Zone(); offset == 0 {
		return t.Format("2006-01-02T15:04:05") + "Z"
	}
	return t.Format("2006-01-02T15:04:05-0700")
}
