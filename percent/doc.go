// Package percent implements context-aware percent-encoding and decoding of
// URL components per RFC 3986.
//
// Each URL component has its own safe character set: a byte that may appear
// literally in a path segment (for example "&") must be escaped inside a
// query key or value, where it would read as a pair delimiter. Encode and
// Decode therefore take a Context selecting the component being processed.
//
// # Usage
//
//	escaped := percent.Encode("key with spaces", percent.Query)
//	// "key%20with%20spaces"
//
//	plain, err := percent.Decode("val%26with%26ampersands", percent.Query)
//	if err != nil {
//		return err // malformed escape sequence
//	}
//
// Encoding always produces uppercase hex digits; decoding accepts either
// case. "+" is a literal plus sign in every context, never a space
// (application/x-www-form-urlencoded handling is out of scope).
//
// Decode is the exact inverse of Encode: for any string s and context ctx,
// Decode(Encode(s, ctx), ctx) returns s.
package percent
