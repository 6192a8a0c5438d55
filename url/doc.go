// Package url models a URL as a structured, strongly validated value
// instead of a string, together with the two total conversions between the
// structured form and the canonical string form: Parse and URL.String.
//
// Every sub-component is validated at construction (hostname.Label,
// hostname.Host, Scheme), so a URL assembled from parsed parts cannot hold
// malformed text, and serialization never fails. Nothing is cached: String
// recomputes the canonical form from the structured fields on every call.
//
// # Usage
//
// Parse an external string:
//
//	u, err := url.Parse("https://api.example.com/v1/items?page=2")
//	if err != nil {
//		return err
//	}
//	fmt.Println(u.Host.Name)      // "api"
//	fmt.Println(u.Query["page"])  // "2"
//
// Build a URL from validated components:
//
//	u := url.New(
//		url.SchemeHTTPS,
//		hostname.MustParseHost("example.com"),
//		url.Port(8443),
//		url.Path{Segments: []string{"some", "path"}},
//		url.Query{"a": "123"},
//		"",
//	)
//	fmt.Println(u) // "https://example.com:8443/some/path?a=123"
//
// Path segments, query keys, and query values are stored decoded;
// percent-escaping is applied during serialization and removed during
// parsing, so callers never handle encoded text.
//
// Query serialization iterates keys in sorted order, so two URLs holding the
// same pairs always produce the same string regardless of insertion order.
//
// # Errors
//
// Parsing failures wrap one of the sentinel errors ErrMissingScheme,
// ErrUnsupportedScheme, ErrInvalidPort, ErrInvalidPath, ErrInvalidQuery,
// hostname.ErrInvalidLabel, hostname.ErrInvalidHost, or
// percent.ErrInvalidEncoding, and are checkable with errors.Is. The first
// failure aborts the parse; there is no partial recovery or default value.
//
// # Scope
//
// Relative references, IPv6 literal hosts, internationalized domain names,
// and userinfo components are not supported.
package url
