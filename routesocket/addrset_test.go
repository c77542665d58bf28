package routesocket

import (
	"net"
	"testing"

	"github.com/m-lab/go/rtx"
)

func ipv4Rec(b4 [4]byte, port uint16) []byte {
	rec := make([]byte, inet4HeaderLen)
	rec[0] = inet4HeaderLen
	rec[1] = afInet
	rec[2] = byte(port >> 8)
	rec[3] = byte(port)
	copy(rec[4:8], b4[:])
	return rec
}

func TestParseAddressSetCanonicalOrder(t *testing.T) {
	dst := ipv4Rec([4]byte{10, 0, 0, 0}, 0)
	gw := ipv4Rec([4]byte{10, 0, 0, 1}, 0)
	var data []byte
	data = append(data, dst...)
	data = append(data, gw...)

	mask := AddressMask(rtaDst | rtaGateway)
	set, err := parseAddressSet(data, mask)
	rtx.Must(err, "unexpected error")

	if set.Destination == nil || !net.IP(set.Destination.IP()).Equal(net.IPv4(10, 0, 0, 0).To4()) {
		t.Errorf("destination = %v", set.Destination)
	}
	if set.Gateway == nil || !net.IP(set.Gateway.IP()).Equal(net.IPv4(10, 0, 0, 1).To4()) {
		t.Errorf("gateway = %v", set.Gateway)
	}
	if set.Netmask != nil {
		t.Errorf("netmask should be unset when its bit is clear, got %v", set.Netmask)
	}
}

func TestParseAddressSetEarlyExitOnTruncation(t *testing.T) {
	dst := ipv4Rec([4]byte{10, 0, 0, 0}, 0)
	// mask claims destination+gateway+netmask but only destination's bytes
	// are actually present.
	mask := AddressMask(rtaDst | rtaGateway | rtaNetmask)

	set, err := parseAddressSet(dst, mask)
	rtx.Must(err, "truncated input must not be an error")

	if set.Destination == nil {
		t.Fatal("destination should have been parsed before truncation")
	}
	if set.Gateway != nil || set.Netmask != nil {
		t.Errorf("fields after the truncation point must stay unset: %+v", set)
	}
}

func TestParseAddressSetNetmaskFallback(t *testing.T) {
	dst := ipv4Rec([4]byte{10, 0, 0, 0}, 0)
	// A netmask record with no family framing: raw 4 bytes, 255.255.0.0.
	rawMask := []byte{255, 255, 0, 0}

	var data []byte
	data = append(data, dst...)
	data = append(data, rawMask...)

	mask := AddressMask(rtaDst | rtaNetmask)
	set, err := parseAddressSet(data, mask)
	rtx.Must(err, "fallback must not surface an error")

	want := net.IPv4(255, 255, 0, 0).To4()
	if !set.Netmask.Equal(want) {
		t.Errorf("netmask = %v, want %v", set.Netmask, want)
	}
}

func TestParseAddressSetNetmaskFallbackUnresolvedWithoutPriorAddress(t *testing.T) {
	rawMask := []byte{255, 255, 0, 0}
	mask := AddressMask(rtaNetmask)

	_, err := parseAddressSet(rawMask, mask)
	if err != ErrNetmaskUnresolved {
		t.Fatalf("err = %v, want ErrNetmaskUnresolved", err)
	}
}

func TestParseAddressSetAuthorDiscarded(t *testing.T) {
	author := ipv4Rec([4]byte{192, 0, 2, 9}, 0)
	brd := ipv4Rec([4]byte{192, 0, 2, 255}, 0)
	var data []byte
	data = append(data, author...)
	data = append(data, brd...)

	mask := AddressMask(rtaAuthor | rtaBrd)
	set, err := parseAddressSet(data, mask)
	rtx.Must(err, "unexpected error")

	want := net.IPv4(192, 0, 2, 255).To4()
	if !set.Broadcast.Equal(want) {
		t.Errorf("broadcast = %v, want %v", set.Broadcast, want)
	}
}

func TestParseAddressSetUnknownFamilyDoesNotCorruptFollowingRecord(t *testing.T) {
	unknown := []byte{12, 0xEE, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	gw := ipv4Rec([4]byte{192, 0, 2, 1}, 0)

	var data []byte
	data = append(data, unknown...)
	data = append(data, gw...)

	mask := AddressMask(rtaDst | rtaGateway)
	set, err := parseAddressSet(data, mask)
	rtx.Must(err, "unexpected error")

	if set.Destination != nil {
		t.Errorf("unknown family should decode to skip, got %v", set.Destination)
	}
	want := net.IPv4(192, 0, 2, 1).To4()
	if !net.IP(set.Gateway.IP()).Equal(want) {
		t.Errorf("gateway = %v, want %v", set.Gateway, want)
	}
}
