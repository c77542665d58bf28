package routesocket

import (
	"errors"
	"fmt"
)

// Sentinel errors for the address-record and message decoders:
// EmptySlice, PartialData, WrongFamily, NetmaskUnresolved. A header length
// mismatch is reported by the LengthMismatchError type below.
var (
	// ErrEmptySlice is returned when a decoder is given zero bytes where it
	// requires at least one.
	ErrEmptySlice = errors.New("routesocket: empty slice")

	// ErrPartialData is returned when a socket-address record's declared
	// length exceeds the slice backing it.
	ErrPartialData = errors.New("routesocket: address record length exceeds available data")

	// ErrWrongFamily is returned internally by a family-specific decoder
	// when handed a record tagged with a different family. The
	// address-set netmask fallback relies on being able to detect and
	// swallow this.
	ErrWrongFamily = errors.New("routesocket: unexpected address family")

	// ErrNetmaskUnresolved is returned by the netmask fallback path when
	// neither destination nor gateway were parsed beforehand, so there is
	// no way to tell whether the raw netmask bytes are IPv4 or IPv6.
	ErrNetmaskUnresolved = errors.New("routesocket: netmask without family tag and no prior address to infer one from")
)

// LengthMismatchError reports that a decoded message's header length field
// did not match the number of bytes actually handed to the decoder. This is
// always fatal for the run (invariant I3).
type LengthMismatchError struct {
	Declared int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("routesocket: header declares length %d, got %d bytes", e.Declared, e.Actual)
}

// TimeoutError is returned by the platform I/O layer when the overall
// receive budget elapses before a message (or end of stream) is available.
type TimeoutError struct{}

func (TimeoutError) Error() string { return "routesocket: receive timed out" }

// IsTimeout reports whether err (or any error it wraps) is a TimeoutError.
func IsTimeout(err error) bool {
	var t TimeoutError
	return errors.As(err, &t)
}
