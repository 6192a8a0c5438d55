package url

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jongio/url-core/percent"
)

// ErrInvalidPath is returned when path text is non-empty but not absolute.
var ErrInvalidPath = errors.New("invalid path")

// Path is an absolute URL path held as an ordered list of decoded segments.
//
// The zero value is the empty path, which serializes to the empty string.
// Any non-empty path serializes with a leading "/". Segments hold decoded
// text; escaping is applied per segment during serialization.
type Path struct {
	Segments []string
}

// ParsePath parses the path portion of a URL.
//
// Empty input yields the empty Path. Non-empty input must begin with "/"
// (else the error wraps ErrInvalidPath); the remainder is split on "/" and
// each segment is percent-decoded with the path-segment context, so decode
// failures wrap percent.ErrInvalidEncoding. A lone "/" also yields the
// empty Path.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	if s[0] != '/' {
		return Path{}, fmt.Errorf("%w: %q is not absolute", ErrInvalidPath, s)
	}
	rest := s[1:]
	if rest == "" {
		return Path{}, nil
	}
	raw := strings.Split(rest, "/")
	segments := make([]string, len(raw))
	for i, r := range raw {
		seg, err := percent.Decode(r, percent.PathSegment)
		if err != nil {
			return Path{}, err
		}
		segments[i] = seg
	}
	return Path{Segments: segments}, nil
}

// String renders the path with every segment percent-encoded. The empty
// path renders as the empty string.
func (p Path) String() string {
	if len(p.Segments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, seg := range p.Segments {
		b.WriteByte('/')
		b.WriteString(percent.Encode(seg, percent.PathSegment))
	}
	return b.String()
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool { return len(p.Segments) == 0 }

// Equal reports whether two paths have identical segments in the same order.
func (p Path) Equal(q Path) bool { return slices.Equal(p.Segments, q.Segments) }

// Parent returns a copy of the path with its last segment removed. The
// parent of the empty path is the empty path.
func (p Path) Parent() Path {
	if len(p.Segments) == 0 {
		return Path{}
	}
	return Path{Segments: slices.Clone(p.Segments[:len(p.Segments)-1])}
}
