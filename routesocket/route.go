package routesocket

import (
	"encoding/binary"
	"fmt"
)

// RouteOp is the kind of routing-table change a RouteInfo describes.
// Comments on the constants below are taken from the BSD route(4) man
// page.
type RouteOp int

const (
	// RouteAdd: add route.
	RouteAdd RouteOp = iota
	// RouteDelete: delete route.
	RouteDelete
	// RouteChange: change metrics or flags.
	RouteChange
	// RouteGet: response to a query.
	RouteGet
	// RouteGet2: undocumented variant of Get seen on modern Darwin.
	RouteGet2
	// RouteOldAdd: legacy add, predating the current message set.
	RouteOldAdd
	// RouteOldDel: legacy delete.
	RouteOldDel
)

func (op RouteOp) String() string {
	switch op {
	case RouteAdd:
		return "add"
	case RouteDelete:
		return "delete"
	case RouteChange:
		return "change"
	case RouteGet:
		return "get"
	case RouteGet2:
		return "get2"
	case RouteOldAdd:
		return "old-add"
	case RouteOldDel:
		return "old-delete"
	default:
		return fmt.Sprintf("route-op(%d)", int(op))
	}
}

func routeOpFromType(t uint8) (RouteOp, bool) {
	switch int(t) {
	case rtmAdd:
		return RouteAdd, true
	case rtmDelete:
		return RouteDelete, true
	case rtmChange:
		return RouteChange, true
	case rtmGet:
		return RouteGet, true
	case rtmGet2:
		return RouteGet2, true
	case rtmOldAdd:
		return RouteOldAdd, true
	case rtmOldDel:
		return RouteOldDel, true
	default:
		return 0, false
	}
}

// RouteFlags is the rtm_flags/ifam_flags bitmask, shared by route and
// address-change events — both are populated from the same RTF_* space.
type RouteFlags int32

func (f RouteFlags) IsUp() bool        { return f&rtfUp != 0 }
func (f RouteFlags) HasGateway() bool  { return f&rtfGateway != 0 }
func (f RouteFlags) IsHost() bool      { return f&rtfHost != 0 }
func (f RouteFlags) IsReject() bool    { return f&rtfReject != 0 }
func (f RouteFlags) IsDynamic() bool   { return f&rtfDynamic != 0 }
func (f RouteFlags) IsModified() bool  { return f&rtfModified != 0 }
func (f RouteFlags) IsDone() bool      { return f&rtfDone != 0 }
func (f RouteFlags) IsStatic() bool    { return f&rtfStatic != 0 }
func (f RouteFlags) IsBlackhole() bool { return f&rtfBlackhole != 0 }
func (f RouteFlags) IsLocal() bool     { return f&rtfLocal != 0 }
func (f RouteFlags) IsBroadcast() bool { return f&rtfBroadcast != 0 }
func (f RouteFlags) IsMulticast() bool { return f&rtfMulticast != 0 }
func (f RouteFlags) IsIfScope() bool   { return f&rtfIfScope != 0 }
func (f RouteFlags) IsCondemned() bool { return f&rtfCondemned != 0 }
func (f RouteFlags) IsIfRef() bool     { return f&rtfIfRef != 0 }
func (f RouteFlags) IsRouter() bool    { return f&rtfRouter != 0 }
func (f RouteFlags) IsDead() bool      { return f&rtfDead != 0 }

func (f RouteFlags) String() string {
	return fmt.Sprintf("flags(%08b)", uint32(f))
}

// RouteMetrics mirrors the fixed-order metrics block carried by a route
// header.
type RouteMetrics struct {
	MTU          uint32
	HopCount     uint32
	Expire       int32
	RecvPipe     uint32
	SendPipe     uint32
	SSThreshold  uint32
	RTTTime      uint32
	RTTVariance  uint32
	PacketsSent  uint32
	State        uint32
}

func decodeRouteMetrics(data []byte) (RouteMetrics, error) {
	if len(data) < routeMetricsLen {
		return RouteMetrics{}, ErrPartialData
	}
	ne := binary.NativeEndian
	return RouteMetrics{
		MTU:         ne.Uint32(data[0:4]),
		HopCount:    ne.Uint32(data[4:8]),
		Expire:      int32(ne.Uint32(data[8:12])),
		RecvPipe:    ne.Uint32(data[12:16]),
		SendPipe:    ne.Uint32(data[16:20]),
		SSThreshold: ne.Uint32(data[20:24]),
		RTTTime:     ne.Uint32(data[24:28]),
		RTTVariance: ne.Uint32(data[28:32]),
		PacketsSent: ne.Uint32(data[32:36]),
		State:       ne.Uint32(data[36:40]),
	}, nil
}

// RouteInfo is a decoded route-family message (Add/Delete/Change/Get/Get2,
// plus the legacy OldAdd/OldDel).
type RouteInfo struct {
	Operation      RouteOp
	Flags          RouteFlags
	Metrics        RouteMetrics
	InterfaceIndex uint16
	Addrs          AddressSet
}

func (r *RouteInfo) String() string {
	return fmt.Sprintf("route{op=%s idx=%d %s dst=%s gw=%s}",
		r.Operation, r.InterfaceIndex, r.Flags, r.Addrs.Destination, r.Addrs.Gateway)
}

// decodeRouteInfo implements the route-family branch of §4.4: parse a
// route header (flags, address mask, pid/seq/errno/use/inits, metrics),
// then call parseAddressSet on the tail using the mask read from the
// header.
func decodeRouteInfo(hdr commonHeader, data []byte) (*RouteInfo, error) {
	op, ok := routeOpFromType(hdr.Type)
	if !ok {
		return nil, nil
	}
	if len(data) < routeHeaderLen {
		return nil, ErrPartialData
	}
	ne := binary.NativeEndian
	off := commonHeaderLen

	flags := RouteFlags(int32(ne.Uint32(data[off : off+4])))
	off += 4

	mask := AddressMask(int32(ne.Uint32(data[off : off+4])))
	off += 4

	off += 4 * 5 // pid, seq, errno, use, inits

	metrics, err := decodeRouteMetrics(data[off : off+routeMetricsLen])
	if err != nil {
		return nil, err
	}
	off += routeMetricsLen

	addrs, err := parseAddressSet(data[off:], mask)
	if err != nil {
		return nil, err
	}

	return &RouteInfo{
		Operation:      op,
		Flags:          flags,
		Metrics:        metrics,
		InterfaceIndex: hdr.Index,
		Addrs:          addrs,
	}, nil
}
