package routesocket

import (
	"encoding/binary"
	"fmt"
)

// LinkOp is the kind of interface-info change a LinkInfo describes. Per
// the message decoder's dispatch table, only the interface-info types
// produce Link events; RTM_NEWMADDR/RTM_DELMADDR/RTM_NEWMADDR2 (multicast
// group membership) are not classified by this decoder and fall through
// to "unrecognized" (None).
type LinkOp int

const (
	LinkIfInfo LinkOp = iota
	LinkIfInfo2
)

func (op LinkOp) String() string {
	switch op {
	case LinkIfInfo:
		return "if-info"
	case LinkIfInfo2:
		return "if-info2"
	default:
		return fmt.Sprintf("link-op(%d)", int(op))
	}
}

func linkOpFromType(t uint8) (LinkOp, bool) {
	switch int(t) {
	case rtmIfInfo:
		return LinkIfInfo, true
	case rtmIfInfo2:
		return LinkIfInfo2, true
	default:
		return 0, false
	}
}

// InterfaceFlags is the IFF_* bitmask carried by an interface-info header.
type InterfaceFlags int32

func (f InterfaceFlags) IsUp() bool      { return f&iffUp != 0 }
func (f InterfaceFlags) IsRunning() bool { return f&iffRunning != 0 }

func (f InterfaceFlags) String() string {
	return fmt.Sprintf("ifflags(%08b)", uint32(f))
}

// LinkInfo is a decoded interface-info message (RTM_IFINFO/RTM_IFINFO2).
type LinkInfo struct {
	Operation      LinkOp
	InterfaceIndex uint16
	Flags          InterfaceFlags
	Addrs          AddressSet
}

func (l *LinkInfo) String() string {
	return fmt.Sprintf("link{op=%s idx=%d %s}", l.Operation, l.InterfaceIndex, l.Flags)
}

// decodeLinkInfo implements the interface-info branch of §4.4: parse an
// interface header (link flags, addresses mask), then parseAddressSet on
// the tail.
func decodeLinkInfo(hdr commonHeader, data []byte) (*LinkInfo, error) {
	op, ok := linkOpFromType(hdr.Type)
	if !ok {
		return nil, nil
	}
	if len(data) < linkHeaderLen {
		return nil, ErrPartialData
	}
	ne := binary.NativeEndian
	off := commonHeaderLen

	flags := InterfaceFlags(int32(ne.Uint32(data[off : off+4])))
	off += 4
	mask := AddressMask(int32(ne.Uint32(data[off : off+4])))
	off += 4

	addrs, err := parseAddressSet(data[off:], mask)
	if err != nil {
		return nil, err
	}

	return &LinkInfo{
		Operation:      op,
		InterfaceIndex: hdr.Index,
		Flags:          flags,
		Addrs:          addrs,
	}, nil
}
