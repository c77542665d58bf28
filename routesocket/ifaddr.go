package routesocket

import (
	"encoding/binary"
	"fmt"
)

// AddressOp distinguishes an interface gaining vs losing an address.
type AddressOp int

const (
	AddressAdd AddressOp = iota
	AddressDelete
)

func (op AddressOp) String() string {
	switch op {
	case AddressAdd:
		return "add"
	case AddressDelete:
		return "delete"
	default:
		return fmt.Sprintf("address-op(%d)", int(op))
	}
}

func addressOpFromType(t uint8) (AddressOp, bool) {
	switch int(t) {
	case rtmNewAddr:
		return AddressAdd, true
	case rtmDelAddr:
		return AddressDelete, true
	default:
		return 0, false
	}
}

// AddressInfo is a decoded address-change message (RTM_NEWADDR/RTM_DELADDR).
type AddressInfo struct {
	Operation      AddressOp
	InterfaceIndex uint16
	Metric         int32
	Flags          RouteFlags
	Addrs          AddressSet
}

func (a *AddressInfo) String() string {
	return fmt.Sprintf("addr{op=%s idx=%d metric=%d %s addr=%s}",
		a.Operation, a.InterfaceIndex, a.Metric, a.Flags, a.Addrs.InterfaceAddr)
}

// decodeAddressInfo implements the address-change branch of §4.4: parse an
// interface-address header (address flags, metric, index — the index
// itself comes from the common header per invariant I4), then
// parseAddressSet on the tail.
func decodeAddressInfo(hdr commonHeader, data []byte) (*AddressInfo, error) {
	op, ok := addressOpFromType(hdr.Type)
	if !ok {
		return nil, nil
	}
	if len(data) < addrHeaderLen {
		return nil, ErrPartialData
	}
	ne := binary.NativeEndian
	off := commonHeaderLen

	flags := RouteFlags(int32(ne.Uint32(data[off : off+4])))
	off += 4
	metric := int32(ne.Uint32(data[off : off+4]))
	off += 4
	mask := AddressMask(int32(ne.Uint32(data[off : off+4])))
	off += 4

	addrs, err := parseAddressSet(data[off:], mask)
	if err != nil {
		return nil, err
	}

	return &AddressInfo{
		Operation:      op,
		InterfaceIndex: hdr.Index,
		Metric:         metric,
		Flags:          flags,
		Addrs:          addrs,
	}, nil
}
