package picowire

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Syntactic dotted-quad pattern: four dot-separated groups of up to
	// three digits each. Deliberately does not enforce the 0-255 octet
	// bound; see IsValidIP.
	ipPattern = regexp.MustCompile(`^\d{0,3}\.\d{0,3}\.\d{0,3}\.\d{0,3}$`)
)

// SplitAddress splits a raw address string into its IP and port parts.
// A string containing a colon is split on the first colon. A bare number
// is treated as a port-only input, anything else as an IP-only input.
// Absent parts come back as empty strings; SplitAddress never fails.
func SplitAddress(raw string) (ip, port string) {
	if i := strings.Index(raw, ":"); i >= 0 {
		return raw[:i], raw[i+1:]
	}
	if isAllDigits(raw) {
		return "", raw
	}
	return raw, ""
}

// IsValidIP reports whether ip looks like a dotted-quad IPv4 address.
// The check is syntactic only: each group may hold any value up to three
// digits, so "999.999.999.999" passes. Callers that need the per-octet
// bound enforced must opt in via IsValidIPStrict.
func IsValidIP(ip string) bool {
	return ipPattern.MatchString(ip)
}

// IsValidIPStrict reports whether ip is a dotted-quad IPv4 address whose
// four octets each hold at least one digit and parse into 0-255. Strict
// never accepts anything IsValidIP rejects, and the resolution path
// itself never uses it.
func IsValidIPStrict(ip string) bool {
	if !ipPattern.MatchString(ip) {
		return false
	}
	for _, part := range strings.Split(ip, ".") {
		if part == "" {
			return false
		}
		if n, _ := strconv.Atoi(part); n > 255 {
			return false
		}
	}
	return true
}

// IsValidPort reports whether port parses as an integer in 0-65535.
func IsValidPort(port string) bool {
	return IsValidPortInRange(port, PortRange{Start: 0, End: 65535})
}

// IsValidPortInRange reports whether port parses as an integer inside r.
// Surrounding whitespace is ignored; non-numeric input is simply
// invalid, not an error.
func IsValidPortInRange(port string, r PortRange) bool {
	n, err := strconv.Atoi(strings.TrimSpace(port))
	if err != nil {
		return false
	}
	return r.Contains(n)
}

// IsValidAddress reports whether addr splits into a syntactically valid
// IP and a port in 0-65535.
func IsValidAddress(addr string) bool {
	ip, port := SplitAddress(addr)
	return IsValidIP(ip) && IsValidPort(port)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
