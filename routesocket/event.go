package routesocket

import "fmt"

// EventKind tags which variant an Event holds.
type EventKind int

const (
	EventRoute EventKind = iota
	EventLink
	EventAddress
)

func (k EventKind) String() string {
	switch k {
	case EventRoute:
		return "route"
	case EventLink:
		return "link"
	case EventAddress:
		return "address"
	default:
		return fmt.Sprintf("event-kind(%d)", int(k))
	}
}

// Event is a single decoded message returned by DecodeMessage. Exactly one
// of Route/Link/Address is populated, selected by Kind.
type Event struct {
	Kind    EventKind
	Route   *RouteInfo
	Link    *LinkInfo
	Address *AddressInfo
}

func (e *Event) String() string {
	if e == nil {
		return "<none>"
	}
	switch e.Kind {
	case EventRoute:
		return e.Route.String()
	case EventLink:
		return e.Link.String()
	case EventAddress:
		return e.Address.String()
	default:
		return "<unknown event>"
	}
}
