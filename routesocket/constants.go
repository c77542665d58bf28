package routesocket

// Address family tags carried by a socket-address record's second byte.
// Values match the BSD <sys/socket.h> / <net/if_dl.h> constants (macOS);
// kept local to this package (rather than pulled from golang.org/x/sys/unix)
// so that decoding remains buildable on every GOOS, per the platform
// independence called for by the core.
const (
	afInet  = 2
	afInet6 = 30
	afLink  = 18
)

// RTM_* message type bytes, matching <net/route.h>. RTM_GET2 (20) is the
// highest type this package classifies; anything above it is treated as
// unrecognized.
const (
	rtmAdd      = 0x1
	rtmDelete   = 0x2
	rtmChange   = 0x3
	rtmGet      = 0x4
	rtmLosing   = 0x5
	rtmRedirect = 0x6
	rtmMiss     = 0x7
	rtmLock     = 0x8
	rtmOldAdd   = 0x9
	rtmOldDel   = 0xa
	rtmResolve  = 0xb
	rtmNewAddr  = 0xc
	rtmDelAddr  = 0xd
	rtmIfInfo   = 0xe
	rtmNewMAddr = 0xf
	rtmDelMAddr = 0x10
	rtmIfInfo2  = 0x12
	rtmNewMAddr2 = 0x13
	rtmGet2     = 0x14
)

// Address-mask bits, in the fixed canonical order spec'd for AddressSet:
// destination, gateway, netmask, genmask, interface-link,
// interface-address, author, broadcast. Values match <net/route.h> RTA_*.
const (
	rtaDst      = 0x1
	rtaGateway  = 0x2
	rtaNetmask  = 0x4
	rtaGenmask  = 0x8
	rtaIFP      = 0x10
	rtaIFA      = 0x20
	rtaAuthor   = 0x40
	rtaBrd      = 0x80
)

// RTF_* route flags, matching <net/route.h>.
const (
	rtfUp        = 0x1
	rtfGateway   = 0x2
	rtfHost      = 0x4
	rtfReject    = 0x8
	rtfDynamic   = 0x10
	rtfModified  = 0x20
	rtfDone      = 0x40
	rtfDelClone  = 0x80
	rtfCloning   = 0x100
	rtfXResolve  = 0x200
	rtfLLInfo    = 0x400
	rtfStatic    = 0x800
	rtfBlackhole = 0x1000
	rtfNoIfRef   = 0x2000
	rtfProto2    = 0x4000
	rtfProto1    = 0x8000
	rtfPrCloning = 0x10000
	rtfWasCloned = 0x20000
	rtfProto3    = 0x40000
	rtfIfScope   = 0x1000000
	rtfCondemned = 0x2000000
	rtfIfRef     = 0x4000000
	rtfProxy     = 0x8000000
	rtfRouter    = 0x10000000
	rtfDead      = 0x20000000
	rtfLocal     = 0x200000
	rtfBroadcast = 0x400000
	rtfMulticast = 0x800000
)

// IFF_* interface flags, matching <net/if.h>.
const (
	iffUp      = 0x1
	iffRunning = 0x40
)

// RTV_* metrics-initialized bits, matching <net/route.h>. rtvHopCount
// marks rmx_hopcount as a field the request asks the kernel to fill in.
const rtvHopCount = 0x2

// commonHeaderLen is the size in bytes of the prefix shared by every
// message: length(u16) + version(u8) + type(u8) + index(u16).
const commonHeaderLen = 6

// routeHeaderLen is commonHeaderLen plus the route-specific fields, in
// wire order: flags, address mask (i32 each), pid, seq, errno, use, inits
// (i32/u32 each), then a 40-byte metrics block.
const routeHeaderLen = commonHeaderLen + 4*6 + routeMetricsLen + 4

// routeMetricsLen is the size in bytes of the metrics block: 10 u32/i32
// fields (mtu, hop_count, expire, recv_pipe, send_pipe, ss_threshold,
// rtt_time, rtt_variance, packets_sent, state).
const routeMetricsLen = 4 * 10

// linkHeaderLen is commonHeaderLen plus link_flags(i32) + address_mask(i32).
const linkHeaderLen = commonHeaderLen + 8

// addrHeaderLen is commonHeaderLen plus route_flags(i32) + metric(i32) +
// address_mask(i32).
const addrHeaderLen = commonHeaderLen + 12
