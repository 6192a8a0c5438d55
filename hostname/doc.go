// Package hostname provides validated hostname types: Label, a single
// dot-delimited hostname segment, and Host, a fully qualified domain name.
//
// Both types can only be obtained through their parsing constructors, so any
// Label or Host a caller holds is guaranteed to be well-formed. This replaces
// untyped hostname strings and the escaping/validation bugs that come with
// building them by concatenation.
//
// # Usage
//
// Parse a full hostname:
//
//	host, err := hostname.ParseHost("api.example.com")
//	if err != nil {
//		return fmt.Errorf("invalid host: %w", err)
//	}
//	fmt.Println(host.Name)    // "api"
//	fmt.Println(host.String()) // "api.example.com"
//
// Parse a single label:
//
//	label, err := hostname.ParseLabel("example")
//	if err != nil {
//		return err
//	}
//
// # Validation Rules
//
// A Label must be non-empty, at most 63 characters, contain only ASCII
// letters, digits, and hyphens, and must not start or end with a hyphen
// (RFC 1035 / RFC 3986 reg-name restricted to the common LDH form).
//
// A Host must consist of at least two labels: a bare name with no domain
// ("example") is rejected.
//
// Internationalized domain names are out of scope; inputs must already be
// ASCII.
package hostname
