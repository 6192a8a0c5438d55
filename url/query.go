package url

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jongio/url-core/percent"
)

// ErrInvalidQuery is returned when a query pair is missing its "=".
var ErrInvalidQuery = errors.New("invalid query")

// Query holds decoded query parameters keyed by decoded name. Keys are
// unique; when parsing, the last occurrence of a duplicate key wins.
// Callers needing strict duplicate rejection must check the raw text
// themselves before parsing.
type Query map[string]string

// ParseQuery parses the query portion of a URL (without the leading "?").
//
// Empty input yields an empty Query. Otherwise the input is split on "&"
// and each pair on its first "="; a pair with no "=" wraps ErrInvalidQuery.
// Keys and values are percent-decoded with the query context, so decode
// failures wrap percent.ErrInvalidEncoding.
func ParseQuery(s string) (Query, error) {
	q := make(Query)
	if s == "" {
		return q, nil
	}
	for _, pair := range strings.Split(s, "&") {
		rawKey, rawVal, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("%w: pair %q has no %q", ErrInvalidQuery, pair, "=")
		}
		key, err := percent.Decode(rawKey, percent.Query)
		if err != nil {
			return nil, err
		}
		val, err := percent.Decode(rawVal, percent.Query)
		if err != nil {
			return nil, err
		}
		q[key] = val
	}
	return q, nil
}

// String serializes the query with keys in sorted order, each key and value
// percent-encoded, pairs joined with "&". The empty query renders as the
// empty string. Sorting makes the output independent of insertion order.
func (q Query) String() string {
	if len(q) == 0 {
		return ""
	}
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(percent.Encode(k, percent.Query))
		b.WriteByte('=')
		b.WriteString(percent.Encode(q[k], percent.Query))
	}
	return b.String()
}

// Equal reports whether two queries hold the same key/value pairs. A nil
// Query equals an empty one.
func (q Query) Equal(r Query) bool { return maps.Equal(q, r) }
