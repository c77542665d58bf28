//go:build !(darwin || freebsd || netbsd || openbsd || dragonfly)

package routesocket

import (
	"errors"
	"time"
)

// ErrUnsupportedPlatform is returned by OpenRouteSocket on a GOOS that has
// no PF_ROUTE/AF_ROUTE facility. This lets the binary build and fail
// cleanly (exit code 1) on Linux/Windows rather than refusing to compile.
var ErrUnsupportedPlatform = errors.New("routesocket: route sockets are not supported on this platform")

// Socket is an unusable stand-in on platforms without a route socket.
type Socket struct{}

func OpenRouteSocket(timeout time.Duration) (*Socket, error) {
	return nil, ErrUnsupportedPlatform
}

func (s *Socket) Send(b []byte) error {
	return ErrUnsupportedPlatform
}

func (s *Socket) Receive(buf []byte) (int, error) {
	return 0, ErrUnsupportedPlatform
}

func (s *Socket) Close() error {
	return nil
}

func InterfaceNameToIndex(name string) (int, error) {
	return 0, ErrUnsupportedPlatform
}

func InterfaceIndexToName(index int) (string, error) {
	return "", ErrUnsupportedPlatform
}
