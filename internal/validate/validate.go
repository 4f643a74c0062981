// Package validate provides pure syntax predicates for IPv4 addresses, IPv6
// addresses and DNS domain names.
//
// The checks are written as explicit character-class and length tests rather
// than regular expressions or net.ParseIP, so the accepted grammar (leading
// zero policy, compression handling, hyphen placement) is spelled out in the
// code and each rule can be tested on its own. Invalid input is a normal
// false result, never an error.
package validate

import (
	"strconv"
	"strings"
)

// IPv4 reports whether s is a dotted-quad IPv4 address in canonical form:
// exactly four decimal groups in [0,255], each written without extraneous
// leading zeros ("0" itself being the only single-zero group).
func IPv4(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}

	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return false
		}
		// canonical form check rejects leading zeros, "+1", etc.
		if strconv.Itoa(n) != part {
			return false
		}
	}

	return true
}

// IPv6 reports whether s is a colon-separated IPv6 address: groups of 1-4
// hex digits, with at most one "::" zero-compression marker. Without
// compression exactly 8 groups are required; with compression up to 9 split
// groups are tolerated (the empty strings produced by splitting "::" count
// towards that bound).
func IPv6(s string) bool {
	if len(s) < 2 {
		return false
	}
	if strings.Contains(s, ":::") {
		return false
	}
	if s[0] == ':' && !strings.HasPrefix(s, "::") {
		return false
	}
	if s[len(s)-1] == ':' && !strings.HasSuffix(s, "::") {
		return false
	}

	compressed := strings.Contains(s, "::")
	if compressed && strings.Count(s, "::") > 1 {
		return false
	}

	groups := strings.Split(s, ":")
	if !compressed && len(groups) != 8 {
		return false
	}
	if compressed && len(groups) > 9 {
		return false
	}

	for _, g := range groups {
		if g == "" {
			// split artifact of "::"; only legal when compression is present
			if !compressed {
				return false
			}

			continue
		}
		if !isHexGroup(g) {
			return false
		}
	}

	return true
}

// Domain reports whether s is a syntactically valid DNS domain name: one or
// more dot-separated labels of 1-63 alphanumerics/hyphens with no leading or
// trailing hyphen, ending in a TLD label of at least 2 alphabetic characters.
// No case normalization is applied.
func Domain(s string) bool {
	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}

	for _, label := range labels[:len(labels)-1] {
		if !isLabel(label) {
			return false
		}
	}

	return isTLD(labels[len(labels)-1])
}

func isHexGroup(g string) bool {
	if len(g) > 4 {
		return false
	}
	for i := 0; i < len(g); i++ {
		c := g[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}

	return true
}

func isAlphaNum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isLabel(label string) bool {
	if len(label) < 1 || len(label) > 63 {
		return false
	}
	if !isAlphaNum(label[0]) || !isAlphaNum(label[len(label)-1]) {
		return false
	}
	for i := 1; i < len(label)-1; i++ {
		if !isAlphaNum(label[i]) && label[i] != '-' {
			return false
		}
	}

	return true
}

func isTLD(label string) bool {
	if len(label) < 2 {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}

	return true
}
