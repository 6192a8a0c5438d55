package cliout

import (
	"strings"
	"testing"

	"github.com/jongio/url-core/testutil"
)

func TestSetFormat(t *testing.T) {
	t.Cleanup(func() {
		if err := SetFormat("default"); err != nil {
			t.Fatalf("restoring format: %v", err)
		}
	})

	tests := []struct {
		name    string
		format  string
		want    Format
		wantErr bool
	}{
		{name: "default", format: "default", want: FormatDefault},
		{name: "empty means default", format: "", want: FormatDefault},
		{name: "json", format: "json", want: FormatJSON},
		{name: "yaml", format: "yaml", want: FormatYAML},
		{name: "invalid", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetFormat(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("SetFormat(%q) error = nil, want error", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetFormat(%q) error = %v", tt.format, err)
			}
			if got := GetFormat(); got != tt.want {
				t.Errorf("GetFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintDispatchesOnFormat(t *testing.T) {
	NoColor()
	t.Cleanup(func() {
		if err := SetFormat("default"); err != nil {
			t.Fatalf("restoring format: %v", err)
		}
	})

	data := map[string]string{"key": "value"}

	if err := SetFormat("json"); err != nil {
		t.Fatal(err)
	}
	output := testutil.CaptureOutput(t, func() error {
		return Print(data, func() { Plain("human") })
	})
	if !strings.Contains(output, `"key": "value"`) {
		t.Errorf("JSON output = %q, want key/value pair", output)
	}

	if err := SetFormat("yaml"); err != nil {
		t.Fatal(err)
	}
	output = testutil.CaptureOutput(t, func() error {
		return Print(data, func() { Plain("human") })
	})
	if !strings.Contains(output, "key: value") {
		t.Errorf("YAML output = %q, want key/value pair", output)
	}

	if err := SetFormat("default"); err != nil {
		t.Fatal(err)
	}
	output = testutil.CaptureOutput(t, func() error {
		return Print(data, func() { Plain("human") })
	})
	if strings.TrimSpace(output) != "human" {
		t.Errorf("default output = %q, want formatter output", output)
	}
}

func TestLabel(t *testing.T) {
	NoColor()
	output := testutil.CaptureOutput(t, func() error {
		Label("Scheme", "https")
		return nil
	})
	if !strings.Contains(output, "Scheme:") || !strings.Contains(output, "https") {
		t.Errorf("Label output = %q", output)
	}
}
