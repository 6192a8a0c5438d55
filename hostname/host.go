package hostname

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidHost is returned when a hostname does not form a fully
// qualified domain name.
var ErrInvalidHost = errors.New("invalid host")

// Host is a fully qualified domain name such as "example.com" or
// "vm1.example.com".
//
// Labels keep the left-to-right order they were written in: for
// "vm1.example.com", Name is "vm1" and Domains is ["example", "com"].
type Host struct {
	// Name is the leftmost label of the hostname.
	Name Label
	// Domains holds the remaining labels, in written order. It always has
	// at least one element for a Host built by ParseHost.
	Domains []Label
}

// ParseHost validates s as a fully qualified domain name.
//
// s is split on "."; every segment must be a valid Label (errors wrap
// ErrInvalidLabel), and at least two segments are required (a bare name
// like "example" wraps ErrInvalidHost).
func ParseHost(s string) (Host, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return Host{}, fmt.Errorf("%w: %q needs at least two labels", ErrInvalidHost, s)
	}
	labels := make([]Label, 0, len(parts))
	for _, part := range parts {
		label, err := ParseLabel(part)
		if err != nil {
			return Host{}, err
		}
		labels = append(labels, label)
	}
	return Host{Name: labels[0], Domains: labels[1:]}, nil
}

// MustParseHost is like ParseHost but panics on invalid input. It is
// intended for statically known hostnames.
func MustParseHost(s string) Host {
	h, err := ParseHost(s)
	if err != nil {
		panic(fmt.Sprintf("hostname: MustParseHost(%q): %v", s, err))
	}
	return h
}

// String returns the dot-joined hostname, Name first.
func (h Host) String() string {
	var b strings.Builder
	b.WriteString(h.Name.String())
	for _, d := range h.Domains {
		b.WriteByte('.')
		b.WriteString(d.String())
	}
	return b.String()
}

// Equal reports whether two hosts have identical labels in the same order.
func (h Host) Equal(g Host) bool {
	return h.Name.Equal(g.Name) && slices.EqualFunc(h.Domains, g.Domains, Label.Equal)
}

// NumLabels returns the total number of labels, including Name.
func (h Host) NumLabels() int { return 1 + len(h.Domains) }
