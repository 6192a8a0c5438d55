package percent

import (
	"errors"
	"fmt"
	"strings"
)

// Context selects the safe character set of the URL component being
// encoded or decoded.
type Context int

const (
	// PathSegment is the safe set for a single path segment.
	PathSegment Context = iota
	// Query is the safe set for query keys and values.
	Query
	// Fragment is the safe set for the fragment.
	Fragment
)

// ErrInvalidEncoding is returned when a "%" is not followed by exactly two
// hexadecimal digits, including truncation at the end of input.
var ErrInvalidEncoding = errors.New("invalid percent encoding")

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether byte c must be percent-encoded in ctx.
func shouldEscape(c byte, ctx Context) bool {
	// RFC 3986 §2.3 unreserved characters never need escaping.
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '.', '_', '~':
		return false
	}

	switch ctx {
	case PathSegment:
		// pchar = unreserved / pct-encoded / sub-delims / ":" / "@".
		// "/" and "?" terminate the segment, so they stay escaped.
		switch c {
		case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', ':', '@':
			return false
		}
	case Query:
		// The query production allows pchar plus "/" and "?", but "&" and
		// "=" delimit key/value pairs here, so they are always escaped.
		switch c {
		case '!', '$', '\'', '(', ')', '*', '+', ',', ';', ':', '@', '/', '?':
			return false
		}
	case Fragment:
		switch c {
		case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', ':', '@', '/', '?':
			return false
		}
	}
	// Everything else, including "%" itself and "#", is escaped.
	return true
}

// Encode percent-escapes every byte of s outside ctx's safe set as "%"
// followed by two uppercase hex digits.
func Encode(s string, ctx Context) string {
	escapes := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i], ctx) {
			escapes++
		}
	}
	if escapes == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*escapes)
	for i := 0; i < len(s); i++ {
		if c := s[i]; shouldEscape(c, ctx) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Decode reverses Encode, converting each "%AB" sequence back into the byte
// 0xAB. Hex digits are accepted in either case. A "%" not followed by two
// valid hex digits yields an error wrapping ErrInvalidEncoding.
//
// The byte-level transformation is the same for every Context; the
// parameter mirrors Encode so call sites always state which component they
// are handling.
func Decode(s string, ctx Context) (string, error) {
	_ = ctx

	escapes := 0
	for i := 0; i < len(s); {
		if s[i] != '%' {
			i++
			continue
		}
		if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
			bad := s[i:]
			if len(bad) > 3 {
				bad = bad[:3]
			}
			return "", fmt.Errorf("%w: %q", ErrInvalidEncoding, bad)
		}
		escapes++
		i += 3
	}
	if escapes == 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s) - 2*escapes)
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			b.WriteByte(unHex(s[i+1])<<4 | unHex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unHex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
