package hostname

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
		errMsg  string
	}{
		// Valid labels
		{
			name:  "simple lowercase",
			label: "example",
		},
		{
			name:  "mixed case preserved",
			label: "ExAmPlE",
		},
		{
			name:  "digits",
			label: "v2",
		},
		{
			name:  "inner hyphen",
			label: "my-host",
		},
		{
			name:  "single character",
			label: "a",
		},
		{
			name:  "single digit",
			label: "7",
		},
		{
			name:  "63 characters",
			label: strings.Repeat("a", 63),
		},

		// Invalid labels
		{
			name:    "empty",
			label:   "",
			wantErr: true,
			errMsg:  "label is empty",
		},
		{
			name:    "leading hyphen",
			label:   "-abc",
			wantErr: true,
			errMsg:  "starts or ends with a hyphen",
		},
		{
			name:    "trailing hyphen",
			label:   "abc-",
			wantErr: true,
			errMsg:  "starts or ends with a hyphen",
		},
		{
			name:    "64 characters",
			label:   strings.Repeat("a", 64),
			wantErr: true,
			errMsg:  "exceeds 63 characters",
		},
		{
			name:    "underscore",
			label:   "ab_c",
			wantErr: true,
			errMsg:  "contains",
		},
		{
			name:    "dot",
			label:   "a.b",
			wantErr: true,
			errMsg:  "contains",
		},
		{
			name:    "space",
			label:   "a b",
			wantErr: true,
			errMsg:  "contains",
		},
		{
			name:    "non-ascii",
			label:   "héllo",
			wantErr: true,
			errMsg:  "contains",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLabel(tt.label)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLabel(%q) error = nil, want error", tt.label)
				}
				if !errors.Is(err, ErrInvalidLabel) {
					t.Errorf("ParseLabel(%q) error = %v, want ErrInvalidLabel", tt.label, err)
				}
				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ParseLabel(%q) error = %q, want substring %q", tt.label, err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLabel(%q) error = %v, want nil", tt.label, err)
			}
			if got.String() != tt.label {
				t.Errorf("ParseLabel(%q).String() = %q, want unchanged input", tt.label, got.String())
			}
		})
	}
}

func TestLabelEqual(t *testing.T) {
	a := MustParseLabel("example")
	b := MustParseLabel("example")
	c := MustParseLabel("Example")

	if !a.Equal(b) {
		t.Error("identical labels should be equal")
	}
	if a.Equal(c) {
		t.Error("comparison is case-sensitive; differently cased labels should not be equal")
	}
}

func TestMustParseLabelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseLabel with invalid input should panic")
		}
	}()
	MustParseLabel("-bad")
}
