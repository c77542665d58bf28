package routesocket

// DecodeMessage implements the Component D dispatch table: decode the
// common header, enforce invariant I3 (the header's declared length must
// equal the number of bytes actually delivered for this message — a
// mismatch is always fatal, never skipped), then route to the
// type-specific decoder by message type.
//
// A nil, nil return means the message was recognized as framing (a
// header with no classified body) or as one of the deliberately
// unclassified types (RTM_LOSING, RTM_REDIRECT, RTM_MISS, RTM_LOCK,
// RTM_RESOLVE, RTM_NEWMADDR/RTM_DELMADDR/RTM_NEWMADDR2) and should be
// skipped by the caller without ending the wait.
func DecodeMessage(data []byte) (*Event, error) {
	hdr, err := decodeCommonHeader(data)
	if err != nil {
		return nil, err
	}
	if int(hdr.Length) != len(data) {
		return nil, &LengthMismatchError{Declared: int(hdr.Length), Actual: len(data)}
	}

	if _, ok := routeOpFromType(hdr.Type); ok {
		info, err := decodeRouteInfo(hdr, data)
		if err != nil {
			return nil, err
		}
		if info == nil {
			return nil, nil
		}
		return &Event{Kind: EventRoute, Route: info}, nil
	}

	if _, ok := linkOpFromType(hdr.Type); ok {
		info, err := decodeLinkInfo(hdr, data)
		if err != nil {
			return nil, err
		}
		if info == nil {
			return nil, nil
		}
		return &Event{Kind: EventLink, Link: info}, nil
	}

	if _, ok := addressOpFromType(hdr.Type); ok {
		info, err := decodeAddressInfo(hdr, data)
		if err != nil {
			return nil, err
		}
		if info == nil {
			return nil, nil
		}
		return &Event{Kind: EventAddress, Address: info}, nil
	}

	return nil, nil
}
