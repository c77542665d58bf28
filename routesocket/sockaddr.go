package routesocket

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"
)

// AddrFamily tags which variant a SockAddr holds.
type AddrFamily int

const (
	// FamilyInet4 tags a SockAddr holding an Inet4 value.
	FamilyInet4 AddrFamily = iota
	// FamilyInet6 tags a SockAddr holding an Inet6 value.
	FamilyInet6
	// FamilyLink tags a SockAddr holding a Link value.
	FamilyLink
)

// Inet4 is a decoded IPv4 socket address.
type Inet4 struct {
	Addr [4]byte
	Port uint16
}

// Inet6 is a decoded IPv6 socket address.
type Inet6 struct {
	Addr     [16]byte
	Port     uint16
	FlowInfo uint32
	ScopeID  uint32
}

// Link is a decoded link-layer (AF_LINK) socket address: an interface
// index, its name, and its link-layer (e.g. MAC) bytes.
type Link struct {
	Index       uint16
	Name        string
	LinkLayer   []byte
}

// SockAddr is a tagged union over the address-record variants this package
// understands. Exactly one of Inet4/Inet6/Link is meaningful, selected by
// Family.
type SockAddr struct {
	Family AddrFamily
	Inet4  Inet4
	Inet6  Inet6
	Link   Link
}

func (s *SockAddr) String() string {
	if s == nil {
		return "<none>"
	}
	switch s.Family {
	case FamilyInet4:
		a := s.Inet4.Addr
		return fmt.Sprintf("%d.%d.%d.%d:%d", a[0], a[1], a[2], a[3], s.Inet4.Port)
	case FamilyInet6:
		return fmt.Sprintf("[%x]:%d", s.Inet6.Addr, s.Inet6.Port)
	case FamilyLink:
		return fmt.Sprintf("link(idx=%d name=%q addr=% x)", s.Link.Index, s.Link.Name, s.Link.LinkLayer)
	default:
		return "<unknown>"
	}
}

// IsZeroInet reports whether a SockAddr represents the all-zeros address
// for its family (0.0.0.0 or ::), used by the default-route predicate to
// spot a "send anywhere" destination.
func (s *SockAddr) IsZeroInet() bool {
	if s == nil {
		return false
	}
	switch s.Family {
	case FamilyInet4:
		return s.Inet4.Addr == [4]byte{}
	case FamilyInet6:
		return s.Inet6.Addr == [16]byte{}
	default:
		return false
	}
}

// IP returns the family's address as a plain byte slice (4 or 16 bytes),
// or nil for a Link record.
func (s *SockAddr) IP() []byte {
	if s == nil {
		return nil
	}
	switch s.Family {
	case FamilyInet4:
		b := s.Inet4.Addr
		return b[:]
	case FamilyInet6:
		b := s.Inet6.Addr
		return b[:]
	default:
		return nil
	}
}

// decodeSockAddr implements §4.2: given a byte slice beginning with an
// address record, it returns the decoded SockAddr (nil for an unsupported
// family — "skip") and the number of bytes consumed, which always equals
// the record's declared length field (invariant I1), even for unsupported
// families or malformed payloads within a recognized-but-too-short record.
func decodeSockAddr(data []byte) (*SockAddr, int, error) {
	if len(data) == 0 {
		return nil, 0, ErrEmptySlice
	}

	l := int(data[0])
	if l == 0 {
		// End-of-records sentinel: the caller treats this as "no more
		// records", consuming nothing.
		return nil, 0, nil
	}
	if l > len(data) {
		return nil, 0, ErrPartialData
	}

	family := data[1]
	rec := data[:l]

	switch int(family) {
	case afInet:
		sa, err := decodeInet4(rec)
		if err != nil {
			return nil, l, err
		}
		return sa, l, nil
	case afInet6:
		sa, err := decodeInet6(rec)
		if err != nil {
			return nil, l, err
		}
		return sa, l, nil
	case afLink:
		sa, err := decodeLink(rec)
		if err != nil {
			return nil, l, err
		}
		return sa, l, nil
	default:
		return nil, l, nil
	}
}

// inet4HeaderLen is length(1) + family(1) + port(2) + addr(4).
const inet4HeaderLen = 8

func decodeInet4(rec []byte) (*SockAddr, error) {
	if len(rec) < inet4HeaderLen {
		return nil, ErrPartialData
	}
	var sa SockAddr
	sa.Family = FamilyInet4
	sa.Inet4.Port = binary.BigEndian.Uint16(rec[2:4])
	copy(sa.Inet4.Addr[:], rec[4:8])
	return &sa, nil
}

// inet6HeaderLen is length(1) + family(1) + port(2) + flowinfo(4) + addr(16) + scopeid(4).
const inet6HeaderLen = 28

func decodeInet6(rec []byte) (*SockAddr, error) {
	if len(rec) < inet6HeaderLen {
		return nil, ErrPartialData
	}
	var sa SockAddr
	sa.Family = FamilyInet6
	sa.Inet6.Port = binary.BigEndian.Uint16(rec[2:4])
	sa.Inet6.FlowInfo = binary.NativeEndian.Uint32(rec[4:8])
	copy(sa.Inet6.Addr[:], rec[8:24])
	sa.Inet6.ScopeID = binary.NativeEndian.Uint32(rec[24:28])
	return &sa, nil
}

// linkFixedLen is length(1) + family(1) + index(2) + type(1) + nlen(1) +
// alen(1) + slen(1), before the variable name||addr||selector region.
const linkFixedLen = 8

func decodeLink(rec []byte) (*SockAddr, error) {
	if len(rec) < linkFixedLen {
		return nil, ErrPartialData
	}
	index := binary.NativeEndian.Uint16(rec[2:4])
	nlen := int(rec[5])
	alen := int(rec[6])

	data := rec[linkFixedLen:]
	if nlen+alen > len(data) {
		return nil, ErrPartialData
	}

	var sa SockAddr
	sa.Family = FamilyLink
	sa.Link.Index = index
	sa.Link.Name = decodeLossyUTF8(data[:nlen])
	sa.Link.LinkLayer = append([]byte(nil), data[nlen:nlen+alen]...)
	return &sa, nil
}

// decodeLossyUTF8 decodes b as UTF-8, substituting the replacement
// character for any invalid sequence. Interface names are supposed to be
// ASCII, but a corrupt or truncated record shouldn't make decoding fail.
func decodeLossyUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
