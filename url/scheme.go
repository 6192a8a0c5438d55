package url

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme identifies one of the supported URL schemes.
type Scheme int

const (
	// SchemeHTTP is plain HTTP.
	SchemeHTTP Scheme = iota
	// SchemeHTTPS is HTTP over TLS.
	SchemeHTTPS
	// SchemeWS is the WebSocket scheme.
	SchemeWS
	// SchemeWSS is the WebSocket-over-TLS scheme.
	SchemeWSS
)

// ErrUnsupportedScheme is returned when scheme text does not match any
// supported scheme.
var ErrUnsupportedScheme = errors.New("unsupported scheme")

// ParseScheme matches s against the supported schemes, case-insensitively.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(s) {
	case "http":
		return SchemeHTTP, nil
	case "https":
		return SchemeHTTPS, nil
	case "ws":
		return SchemeWS, nil
	case "wss":
		return SchemeWSS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedScheme, s)
}

// String returns the canonical lowercase scheme name.
func (s Scheme) String() string {
	switch s {
	case SchemeHTTP:
		return "http"
	case SchemeHTTPS:
		return "https"
	case SchemeWS:
		return "ws"
	case SchemeWSS:
		return "wss"
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}
