//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package routesocket

import (
	"time"

	"golang.org/x/sys/unix"
)

// Socket is a raw AF_ROUTE socket together with the kqueue used to honor an
// optional overall receive timeout. Built directly on
// golang.org/x/sys/unix syscalls, reading via a kqueue-multiplexed read
// rather than a plain blocking read so the overall timeout can be enforced.
type Socket struct {
	fd         int
	kq         int
	deadline   time.Time
	hasTimeout bool
}

// OpenRouteSocket implements §4.1: opens a raw socket bound to PF_ROUTE. If
// timeout is non-zero, every subsequent Receive call honors a single
// overall budget measured from this call, not a per-read timeout.
func OpenRouteSocket(timeout time.Duration) (*Socket, error) {
	fd, err := unix.Socket(unix.AF_ROUTE, unix.SOCK_RAW, 0)
	if err != nil {
		return nil, err
	}

	kq, err := unix.Kqueue()
	if err != nil {
		unix.Close(fd)
		return nil, err
	}

	changes := []unix.Kevent_t{{
		Ident:  uint64(fd),
		Filter: unix.EVFILT_READ,
		Flags:  unix.EV_ADD | unix.EV_ENABLE,
	}}
	if _, err := unix.Kevent(kq, changes, nil, nil); err != nil {
		unix.Close(kq)
		unix.Close(fd)
		return nil, err
	}

	s := &Socket{fd: fd, kq: kq}
	if timeout > 0 {
		s.hasTimeout = true
		s.deadline = time.Now().Add(timeout)
	}
	return s, nil
}

// Send implements §4.1: a platform "no such process" reply to a write
// means "nothing matched the query", which the kernel signals this way
// rather than as a framed message; that is not a failure here.
func (s *Socket) Send(b []byte) error {
	_, err := unix.Write(s.fd, b)
	if err == unix.ESRCH {
		return nil
	}
	return err
}

// Receive blocks until a message is available, the overall budget (if any)
// elapses, or an error occurs. It multiplexes through the kqueue registered
// at open rather than setting a per-socket receive timeout, so elapsed
// wall-clock time is tracked across repeated calls instead of being reset
// by each one.
func (s *Socket) Receive(buf []byte) (int, error) {
	var ts *unix.Timespec
	if s.hasTimeout {
		remaining := time.Until(s.deadline)
		if remaining <= 0 {
			return 0, TimeoutError{}
		}
		t := unix.NsecToTimespec(remaining.Nanoseconds())
		ts = &t
	}

	events := make([]unix.Kevent_t, 1)
	n, err := unix.Kevent(s.kq, nil, events, ts)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, TimeoutError{}
	}

	return unix.Read(s.fd, buf)
}

// Close releases the socket and its kqueue.
func (s *Socket) Close() error {
	kqErr := unix.Close(s.kq)
	fdErr := unix.Close(s.fd)
	if fdErr != nil {
		return fdErr
	}
	return kqErr
}

// InterfaceNameToIndex implements §4.1's name→index translation.
func InterfaceNameToIndex(name string) (int, error) {
	idx, err := unix.IfNametoindex(name)
	return int(idx), err
}

// InterfaceIndexToName implements §4.1's index→name translation.
func InterfaceIndexToName(index int) (string, error) {
	return unix.IfIndextoname(uint32(index))
}
