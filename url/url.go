package url

import (
	"strconv"
	"strings"

	"github.com/jongio/url-core/hostname"
	"github.com/jongio/url-core/percent"
)

// URL is a structured, fully validated URL.
//
// Each field is valid on its own terms: Scheme and Host can only be obtained
// through their parsing constructors, and Path and Query hold decoded text
// whose element types need no further validation. URL itself performs no
// cross-field validation. A URL is a plain value; copying it is safe, and
// mutation means replacing a field, never patching encoded text in place.
type URL struct {
	// Scheme is the URL scheme, like http in "http://example.com/".
	Scheme Scheme
	// Host is the hostname, like example.com in "http://example.com/".
	Host hostname.Host
	// Port is the optional port, like 80 in "http://example.com:80/".
	// nil means no port.
	Port *uint16
	// Path is the URL path, like /a/b in "http://example.com/a/b".
	Path Path
	// Query holds the decoded query parameters, like a=123 in
	// "http://example.com/?a=123".
	Query Query
	// Fragment is the decoded fragment, like top in
	// "http://example.com/#top". Empty means no fragment.
	Fragment string
}

// New assembles a URL from already-validated components. port may be nil
// for no port and fragment may be empty for no fragment; no cross-field
// validation is performed.
func New(scheme Scheme, host hostname.Host, port *uint16, path Path, query Query, fragment string) URL {
	return URL{
		Scheme:   scheme,
		Host:     host,
		Port:     port,
		Path:     path,
		Query:    query,
		Fragment: fragment,
	}
}

// Port returns a pointer to p, for populating the URL.Port field inline.
func Port(p uint16) *uint16 { return &p }

// String reassembles the URL into its canonical string form:
//
//	scheme://host[:port][path][?query][#fragment]
//
// The result is recomputed from the structured fields on every call and
// never fails for a URL whose fields were built through their validating
// constructors.
func (u URL) String() string {
	var b strings.Builder
	b.WriteString(u.Scheme.String())
	b.WriteString("://")
	b.WriteString(u.Host.String())
	if u.Port != nil {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(*u.Port)))
	}
	b.WriteString(u.Path.String())
	if len(u.Query) > 0 {
		b.WriteByte('?')
		b.WriteString(u.Query.String())
	}
	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(percent.Encode(u.Fragment, percent.Fragment))
	}
	return b.String()
}

// Equal reports whether two URLs are the same value. Ports are compared by
// value, and a nil Query equals an empty one.
func (u URL) Equal(v URL) bool {
	if u.Scheme != v.Scheme || !u.Host.Equal(v.Host) || u.Fragment != v.Fragment {
		return false
	}
	if (u.Port == nil) != (v.Port == nil) {
		return false
	}
	if u.Port != nil && *u.Port != *v.Port {
		return false
	}
	return u.Path.Equal(v.Path) && u.Query.Equal(v.Query)
}

// Parent returns a copy of the URL with the last path segment removed.
// Query and fragment are carried over unchanged.
func (u URL) Parent() URL {
	u.Path = u.Path.Parent()
	return u
}

// MarshalText implements encoding.TextMarshaler, allowing URL values to be
// embedded in JSON and similar formats as their canonical string.
func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
