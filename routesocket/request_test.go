package routesocket

import (
	"testing"

	"github.com/m-lab/go/rtx"
)

func TestBuildDefaultIPv4QueryRoundTrips(t *testing.T) {
	msg := BuildDefaultIPv4Query(42, 1)

	hdr, err := decodeCommonHeader(msg)
	rtx.Must(err, "unexpected error")
	if int(hdr.Length) != len(msg) {
		t.Fatalf("declared length %d != actual %d", hdr.Length, len(msg))
	}
	if hdr.Type != byte(rtmGet) {
		t.Errorf("type = %d, want RTM_GET", hdr.Type)
	}

	info, err := decodeRouteInfo(hdr, msg)
	rtx.Must(err, "unexpected error")
	if !info.Flags.IsUp() || !info.Flags.HasGateway() {
		t.Errorf("flags = %v, want UP|GATEWAY", info.Flags)
	}
	if info.Addrs.Destination == nil || !info.Addrs.Destination.IsZeroInet() {
		t.Errorf("destination = %v, want all-zeros", info.Addrs.Destination)
	}
}

func TestBuildInterfaceInfoQueryScopesToIndex(t *testing.T) {
	msg := BuildInterfaceInfoQuery(9, 42, 2)

	hdr, err := decodeCommonHeader(msg)
	rtx.Must(err, "unexpected error")
	if hdr.Index != 9 {
		t.Errorf("index = %d, want 9", hdr.Index)
	}

	info, err := decodeRouteInfo(hdr, msg)
	rtx.Must(err, "unexpected error")
	if !info.Flags.IsIfScope() || !info.Flags.IsHost() {
		t.Errorf("flags = %v, want IFSCOPE|HOST", info.Flags)
	}
}
