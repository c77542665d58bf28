package routesocket

import "encoding/binary"

// encodeRouteHeader lays out the fixed 74-byte route header shared by both
// request messages this package builds, mirroring the offsets
// decodeRouteInfo reads: flags, address mask, pid, seq, errno, use, inits,
// then a zeroed metrics block. msgType is always RTM_GET for a query;
// index is 0 for the default-route query and the scoped interface index
// for the interface-info query.
func encodeRouteHeader(totalLen int, index uint16, flags RouteFlags, pid, seq int32, mask AddressMask, inits uint32) []byte {
	buf := make([]byte, routeHeaderLen)
	ne := binary.NativeEndian

	ne.PutUint16(buf[0:2], uint16(totalLen))
	buf[2] = 0 // version
	buf[3] = byte(rtmGet)
	ne.PutUint16(buf[4:6], index)

	ne.PutUint32(buf[6:10], uint32(flags))
	ne.PutUint32(buf[10:14], uint32(mask))
	ne.PutUint32(buf[14:18], uint32(pid))
	ne.PutUint32(buf[18:22], uint32(seq))
	ne.PutUint32(buf[30:34], inits)
	// errno (22:26), use (26:30), and the metrics block (34:74) are left
	// zeroed: the kernel ignores them on a request.

	return buf
}

// encodeZeroInet4 builds an all-zero IPv4 socket-address record (0.0.0.0:0),
// the wildcard destination/netmask pair the default-route query sends.
func encodeZeroInet4() []byte {
	rec := make([]byte, inet4HeaderLen)
	rec[0] = inet4HeaderLen
	rec[1] = afInet
	// port (2:4) and address (4:8) stay zero.
	return rec
}

// encodeLinkIndex builds a bare sockaddr_dl record naming only an interface
// index: no name, no link-layer address, no selector.
func encodeLinkIndex(index uint16) []byte {
	rec := make([]byte, linkFixedLen)
	rec[0] = linkFixedLen
	rec[1] = afLink
	binary.NativeEndian.PutUint16(rec[2:4], index)
	// type (4), name-length (5), addr-length (6), selector-length (7) are
	// all zero: no trailing name||addr||selector region follows.
	return rec
}

// BuildDefaultIPv4Query constructs the "get default IPv4 route" request
// per §4.5: a route-get header with flags UP|GATEWAY, address mask
// DESTINATION|NETMASK, followed by two all-zero IPv4 records.
func BuildDefaultIPv4Query(pid, seq int32) []byte {
	addrs := append(encodeZeroInet4(), encodeZeroInet4()...)
	total := routeHeaderLen + len(addrs)
	flags := RouteFlags(rtfUp | rtfGateway)
	mask := AddressMask(rtaDst | rtaNetmask)

	hdr := encodeRouteHeader(total, 0, flags, pid, seq, mask, rtvHopCount)
	return append(hdr, addrs...)
}

// BuildInterfaceInfoQuery constructs an interface-scoped query: a
// route-get header carrying the target index, flags IFSCOPE|HOST, address
// mask DESTINATION|IF_LINK|IF_ADDR, followed by a single sockaddr_dl record
// naming that index. The kernel uses the header's own index field to scope
// the query; the mask's three set bits are a scoping hint honored by the
// kernel, not three records — one link record suffices.
func BuildInterfaceInfoQuery(index uint16, pid, seq int32) []byte {
	addrs := encodeLinkIndex(index)
	total := routeHeaderLen + len(addrs)
	flags := RouteFlags(rtfIfScope | rtfHost)
	mask := AddressMask(rtaDst | rtaIFP | rtaIFA)

	hdr := encodeRouteHeader(total, index, flags, pid, seq, mask, 0)
	return append(hdr, addrs...)
}
