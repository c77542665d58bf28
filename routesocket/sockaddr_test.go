package routesocket

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/m-lab/go/rtx"
)

func TestDecodeSockAddrInet4RoundTrip(t *testing.T) {
	// length(8) family(AF_INET) port(big-endian) addr(4 bytes)
	rec := []byte{8, afInet, 0x1F, 0x90, 192, 0, 2, 1}

	sa, consumed, err := decodeSockAddr(rec)
	rtx.Must(err, "unexpected error")
	if consumed != 8 {
		t.Fatalf("consumed = %d, want 8", consumed)
	}

	want := &SockAddr{Family: FamilyInet4}
	want.Inet4.Port = 0x1F90
	copy(want.Inet4.Addr[:], []byte{192, 0, 2, 1})
	if diff := deep.Equal(sa, want); diff != nil {
		t.Error(diff)
	}
}

func TestDecodeSockAddrInet6(t *testing.T) {
	rec := make([]byte, 28)
	rec[0] = 28
	rec[1] = afInet6
	rec[2], rec[3] = 0x00, 0x50 // port 80
	addr := []byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	copy(rec[8:24], addr)

	sa, consumed, err := decodeSockAddr(rec)
	rtx.Must(err, "unexpected error")
	if consumed != 28 {
		t.Fatalf("consumed = %d, want 28", consumed)
	}
	if sa.Family != FamilyInet6 {
		t.Fatalf("family = %v, want FamilyInet6", sa.Family)
	}
	if sa.Inet6.Port != 80 {
		t.Errorf("port = %d, want 80", sa.Inet6.Port)
	}
	if diff := deep.Equal(sa.Inet6.Addr[:], addr); diff != nil {
		t.Error(diff)
	}
}

func TestDecodeSockAddrLinkLossyName(t *testing.T) {
	name := []byte{'e', 'n', 0xff, '0'} // 0xff is not valid UTF-8 alone
	alen := 6
	rec := make([]byte, linkFixedLen+len(name)+alen)
	rec[0] = byte(len(rec))
	rec[1] = afLink
	rec[2], rec[3] = 7, 0 // index 7
	rec[5] = byte(len(name))
	rec[6] = byte(alen)
	copy(rec[linkFixedLen:], name)
	mac := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	copy(rec[linkFixedLen+len(name):], mac)

	sa, consumed, err := decodeSockAddr(rec)
	rtx.Must(err, "unexpected error")
	if consumed != len(rec) {
		t.Fatalf("consumed = %d, want %d", consumed, len(rec))
	}
	if sa.Link.Index != 7 {
		t.Errorf("index = %d, want 7", sa.Link.Index)
	}
	if diff := deep.Equal(sa.Link.LinkLayer, mac); diff != nil {
		t.Error(diff)
	}
	for _, r := range sa.Link.Name {
		if r == 0xfffd {
			return // replacement character present, as expected
		}
	}
	t.Errorf("expected a replacement character in lossy-decoded name %q", sa.Link.Name)
}

func TestDecodeSockAddrEmptySlice(t *testing.T) {
	_, _, err := decodeSockAddr(nil)
	if err != ErrEmptySlice {
		t.Fatalf("err = %v, want ErrEmptySlice", err)
	}
}

func TestDecodeSockAddrZeroLengthIsEndOfRecords(t *testing.T) {
	sa, consumed, err := decodeSockAddr([]byte{0, 0, 0, 0})
	rtx.Must(err, "unexpected error")
	if sa != nil || consumed != 0 {
		t.Fatalf("got (%v, %d), want (nil, 0)", sa, consumed)
	}
}

func TestDecodeSockAddrPartialData(t *testing.T) {
	_, _, err := decodeSockAddr([]byte{20, afInet})
	if err != ErrPartialData {
		t.Fatalf("err = %v, want ErrPartialData", err)
	}
}

func TestDecodeSockAddrUnknownFamilySkippedByDeclaredLength(t *testing.T) {
	// Declared length 12, unrecognized family: must still report 12
	// consumed (P6), with a following record left untouched.
	rec := append([]byte{12, 0xEE, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, encodeZeroInet4()...)

	sa, consumed, err := decodeSockAddr(rec)
	rtx.Must(err, "unexpected error")
	if sa != nil {
		t.Errorf("sa = %v, want nil (skip)", sa)
	}
	if consumed != 12 {
		t.Fatalf("consumed = %d, want 12", consumed)
	}

	next, nextConsumed, err := decodeSockAddr(rec[consumed:])
	rtx.Must(err, "unexpected error")
	if nextConsumed != inet4HeaderLen || next.Family != FamilyInet4 {
		t.Errorf("trailing record corrupted: %+v, consumed %d", next, nextConsumed)
	}
}

