package hostname

import (
	"errors"
	"fmt"
)

// MaxLabelLength is the RFC 1035 limit for a single hostname label.
const MaxLabelLength = 63

// ErrInvalidLabel is returned when a hostname label fails validation.
var ErrInvalidLabel = errors.New("invalid hostname label")

// Label is a single validated segment of a hostname, such as "example" or
// "com" in "example.com".
//
// The zero value is not a valid Label; use ParseLabel. Case is preserved as
// written, not normalized.
type Label struct {
	label string
}

// ParseLabel validates s as a hostname label.
//
// It returns an error wrapping ErrInvalidLabel if s is empty, longer than
// MaxLabelLength, contains a character outside [A-Za-z0-9-], or starts or
// ends with a hyphen.
func ParseLabel(s string) (Label, error) {
	if s == "" {
		return Label{}, fmt.Errorf("%w: label is empty", ErrInvalidLabel)
	}
	if len(s) > MaxLabelLength {
		return Label{}, fmt.Errorf("%w: label %q exceeds %d characters", ErrInvalidLabel, s, MaxLabelLength)
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return Label{}, fmt.Errorf("%w: label %q starts or ends with a hyphen", ErrInvalidLabel, s)
	}
	for i := 0; i < len(s); i++ {
		if !isLabelByte(s[i]) {
			return Label{}, fmt.Errorf("%w: label %q contains %q", ErrInvalidLabel, s, string(s[i]))
		}
	}
	return Label{label: s}, nil
}

// MustParseLabel is like ParseLabel but panics on invalid input. It is
// intended for statically known labels.
func MustParseLabel(s string) Label {
	l, err := ParseLabel(s)
	if err != nil {
		panic(fmt.Sprintf("hostname: MustParseLabel(%q): %v", s, err))
	}
	return l
}

// String returns the label text as validated.
func (l Label) String() string { return l.label }

// Equal reports whether two labels have identical content. ParseLabel
// preserves case, so comparison is case-sensitive.
func (l Label) Equal(m Label) bool { return l.label == m.label }

func isLabelByte(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '-'
}
