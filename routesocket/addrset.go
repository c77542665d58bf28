package routesocket

import "net"

// AddressMask is the "addresses present" bitmask carried by a message
// header, enumerating which address records follow in the canonical
// order: destination, gateway, netmask, genmask, interface-link,
// interface-address, author, broadcast.
type AddressMask int32

func (m AddressMask) hasDestination() bool     { return m&rtaDst != 0 }
func (m AddressMask) hasGateway() bool         { return m&rtaGateway != 0 }
func (m AddressMask) hasNetmask() bool         { return m&rtaNetmask != 0 }
func (m AddressMask) hasGenmask() bool         { return m&rtaGenmask != 0 }
func (m AddressMask) hasInterfaceLink() bool   { return m&rtaIFP != 0 }
func (m AddressMask) hasInterfaceAddress() bool { return m&rtaIFA != 0 }
func (m AddressMask) hasAuthor() bool          { return m&rtaAuthor != 0 }
func (m AddressMask) hasBroadcast() bool       { return m&rtaBrd != 0 }

// AddressSet holds the subset of address-record slots populated for a
// message, per invariant I2: only fields whose bit is set in the mask can
// be non-nil, discovered in the canonical order. A set bit can still leave
// its field nil when the record has an unsupported family or the stream is
// truncated before it.
type AddressSet struct {
	Destination    *SockAddr
	Gateway        *SockAddr
	Netmask        net.IP
	Genmask        net.IP
	InterfaceLink  *SockAddr
	InterfaceAddr  *SockAddr
	Broadcast      net.IP
}

// parseAddressSet implements §4.3: walks data, consuming one record per set
// bit in mask, in canonical order. It tolerates truncated streams (early
// exit, §4.3's "Early-exit policy") and unsupported address families by
// honoring the declared record length and moving on.
func parseAddressSet(data []byte, mask AddressMask) (AddressSet, error) {
	var set AddressSet
	offset := 0
	n := len(data)

	if mask.hasDestination() {
		if offset >= n {
			return set, nil
		}
		sa, consumed, err := decodeSockAddr(data[offset:])
		if err != nil {
			return set, err
		}
		set.Destination = sa
		offset += consumed
	}

	if mask.hasGateway() {
		if offset >= n {
			return set, nil
		}
		sa, consumed, err := decodeSockAddr(data[offset:])
		if err != nil {
			return set, err
		}
		set.Gateway = sa
		offset += consumed
	}

	if mask.hasNetmask() {
		if offset >= n {
			return set, nil
		}
		ip, consumed, err := decodeIPOnly(data[offset:])
		if err != nil {
			ip, consumed, err = netmaskFallback(data[offset:], set)
			if err != nil {
				return set, err
			}
		}
		set.Netmask = ip
		offset += consumed
	}

	if mask.hasGenmask() {
		if offset >= n {
			return set, nil
		}
		ip, consumed, err := decodeIPOnly(data[offset:])
		if err != nil {
			return set, err
		}
		set.Genmask = ip
		offset += consumed
	}

	if mask.hasInterfaceLink() {
		if offset >= n {
			return set, nil
		}
		sa, consumed, err := decodeSockAddr(data[offset:])
		if err != nil {
			return set, err
		}
		set.InterfaceLink = sa
		offset += consumed
	}

	if mask.hasInterfaceAddress() {
		if offset >= n {
			return set, nil
		}
		sa, consumed, err := decodeSockAddr(data[offset:])
		if err != nil {
			return set, err
		}
		set.InterfaceAddr = sa
		offset += consumed
	}

	if mask.hasAuthor() {
		if offset >= n {
			return set, nil
		}
		// Parsed and discarded.
		_, consumed, err := decodeSockAddr(data[offset:])
		if err != nil {
			return set, err
		}
		offset += consumed
	}

	if mask.hasBroadcast() {
		if offset >= n {
			return set, nil
		}
		ip, _, err := decodeIPOnly(data[offset:])
		if err != nil {
			return set, err
		}
		set.Broadcast = ip
	}

	return set, nil
}

// decodeIPOnly decodes a record that is known to carry a bare IP address
// (netmask, genmask, broadcast positions), requiring a recognized IPv4/IPv6
// family tag. Unlike decodeSockAddr it does not tolerate other families —
// callers needing the netmask fallback detect that via the returned error.
func decodeIPOnly(data []byte) (net.IP, int, error) {
	if len(data) == 0 {
		return nil, 0, ErrEmptySlice
	}
	l := int(data[0])
	if l == 0 {
		return nil, 0, nil
	}
	if l > len(data) {
		return nil, 0, ErrPartialData
	}
	switch int(data[1]) {
	case afInet:
		if l < inet4HeaderLen {
			return nil, 0, ErrPartialData
		}
		return net.IP(append([]byte(nil), data[4:8]...)), l, nil
	case afInet6:
		if l < inet6HeaderLen {
			return nil, 0, ErrPartialData
		}
		return net.IP(append([]byte(nil), data[8:24]...)), l, nil
	default:
		return nil, 0, ErrWrongFamily
	}
}

// netmaskFallback implements the edge-case policy for netmask records sent
// as raw address bytes with no sockaddr framing: it infers the family from
// whatever destination or gateway was already parsed and reads a fixed 4 or
// 16 raw bytes accordingly. If neither preceded, ErrNetmaskUnresolved is
// returned.
func netmaskFallback(data []byte, set AddressSet) (net.IP, int, error) {
	sample := set.Destination
	if sample == nil {
		sample = set.Gateway
	}
	if sample == nil {
		return nil, 0, ErrNetmaskUnresolved
	}

	switch sample.Family {
	case FamilyInet4:
		const n = 4
		if len(data) < n {
			return nil, 0, ErrPartialData
		}
		return net.IP(append([]byte(nil), data[:n]...)), n, nil
	case FamilyInet6:
		const n = 16
		if len(data) < n {
			return nil, 0, ErrPartialData
		}
		return net.IP(append([]byte(nil), data[:n]...)), n, nil
	default:
		return nil, 0, ErrNetmaskUnresolved
	}
}
