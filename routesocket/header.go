package routesocket

import "encoding/binary"

// commonHeader is the prefix shared by every message: total length,
// protocol version, message type, and the authoritative interface index
// (0 when not applicable). All fields are host-order (invariant I4: this
// index, not any index embedded in an address record, is authoritative).
type commonHeader struct {
	Length  uint16
	Version uint8
	Type    uint8
	Index   uint16
}

func decodeCommonHeader(data []byte) (commonHeader, error) {
	if len(data) < commonHeaderLen {
		return commonHeader{}, ErrPartialData
	}
	return commonHeader{
		Length:  binary.NativeEndian.Uint16(data[0:2]),
		Version: data[2],
		Type:    data[3],
		Index:   binary.NativeEndian.Uint16(data[4:6]),
	}, nil
}
