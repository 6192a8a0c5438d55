package url

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jongio/url-core/hostname"
	"github.com/jongio/url-core/percent"
)

// ErrMissingScheme is returned when the input has no "://" separator.
var ErrMissingScheme = errors.New("missing scheme")

// ErrInvalidPort is returned when a port suffix does not fit 0-65535.
var ErrInvalidPort = errors.New("invalid port")

// Parse converts a URL string into its structured form.
//
// It makes a single left-to-right pass with no backtracking and stops at
// the first error:
//
//  1. Everything before "://" is the scheme; a missing separator wraps
//     ErrMissingScheme.
//  2. The authority runs to the first "/", "?", or "#".
//  3. If everything after the last ":" in the authority is one or more
//     digits, that suffix is the port (out of range wraps ErrInvalidPort)
//     and the prefix is the host; otherwise the whole authority is the
//     host.
//  4. A path, if present, runs to the first "?" or "#".
//  5. A "?" introduces the query, running to the first "#".
//  6. A "#" introduces the fragment, consuming the rest of the input.
//
// All component validation errors (ErrUnsupportedScheme,
// hostname.ErrInvalidLabel, hostname.ErrInvalidHost, ErrInvalidPath,
// ErrInvalidQuery, percent.ErrInvalidEncoding) propagate unchanged.
func Parse(s string) (URL, error) {
	schemeText, rest, found := strings.Cut(s, "://")
	if !found {
		return URL{}, fmt.Errorf("%w: no scheme separator in %q", ErrMissingScheme, s)
	}
	scheme, err := ParseScheme(schemeText)
	if err != nil {
		return URL{}, err
	}

	authority := rest
	if end := strings.IndexAny(rest, "/?#"); end >= 0 {
		authority, rest = rest[:end], rest[end:]
	} else {
		rest = ""
	}

	hostText := authority
	var port *uint16
	if i := strings.LastIndexByte(authority, ':'); i >= 0 && isAllDigits(authority[i+1:]) {
		n, err := strconv.ParseUint(authority[i+1:], 10, 16)
		if err != nil {
			return URL{}, fmt.Errorf("%w: %q is out of range", ErrInvalidPort, authority[i+1:])
		}
		p := uint16(n)
		port = &p
		hostText = authority[:i]
	}
	host, err := hostname.ParseHost(hostText)
	if err != nil {
		return URL{}, err
	}

	var rawPath string
	if rest != "" && rest[0] == '/' {
		if end := strings.IndexAny(rest, "?#"); end >= 0 {
			rawPath, rest = rest[:end], rest[end:]
		} else {
			rawPath, rest = rest, ""
		}
	}
	path, err := ParsePath(rawPath)
	if err != nil {
		return URL{}, err
	}

	query := make(Query)
	if strings.HasPrefix(rest, "?") {
		rawQuery := rest[1:]
		rest = ""
		if i := strings.IndexByte(rawQuery, '#'); i >= 0 {
			rawQuery, rest = rawQuery[:i], rawQuery[i:]
		}
		if query, err = ParseQuery(rawQuery); err != nil {
			return URL{}, err
		}
	}

	var fragment string
	if strings.HasPrefix(rest, "#") {
		if fragment, err = percent.Decode(rest[1:], percent.Fragment); err != nil {
			return URL{}, err
		}
	}

	return URL{
		Scheme:   scheme,
		Host:     host,
		Port:     port,
		Path:     path,
		Query:    query,
		Fragment: fragment,
	}, nil
}

// isAllDigits reports whether s is non-empty and composed entirely of
// ASCII digits. An authority ending in a bare ":" is treated as host text,
// where label validation rejects it.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
