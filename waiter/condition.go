// Package waiter drives the route-socket event loop and evaluates each
// decoded event against a user-chosen wait condition, terminating the run
// once the condition is satisfied or the overall timeout elapses.
package waiter

import (
	"fmt"
	"net"
	"strings"

	"github.com/netawait/netawait/routesocket"
)

// ConditionKind is the closed set of wait conditions netawait understands.
type ConditionKind int

const (
	// DefaultRoute fires on any route event establishing a default route.
	DefaultRoute ConditionKind = iota
	// IfGetsAddress fires once a named interface is up and carries a
	// non-local address.
	IfGetsAddress
	// IfGetsRoute fires once a named interface is up and carries a
	// non-local route destination.
	IfGetsRoute
)

func (k ConditionKind) String() string {
	switch k {
	case DefaultRoute:
		return "default-route"
	case IfGetsAddress:
		return "if-gets-address"
	case IfGetsRoute:
		return "if-gets-route"
	default:
		return fmt.Sprintf("condition-kind(%d)", int(k))
	}
}

// Condition is a fully parsed wait condition: its kind, and the interface
// name for the two kinds that name one.
type Condition struct {
	Kind ConditionKind
	Name string
}

// ParseCondition parses the `key=value` / `key value` / `key:value` grammar
// from the CLI's --wait-condition flag.
func ParseCondition(input string) (Condition, error) {
	parts := strings.FieldsFunc(input, func(r rune) bool {
		return r == '=' || r == ' ' || r == ':'
	})
	if len(parts) == 0 {
		return Condition{}, fmt.Errorf("missing value for wait condition")
	}

	switch parts[0] {
	case "default-route":
		return Condition{Kind: DefaultRoute}, nil
	case "if-gets-address", "if-gets-route":
		if len(parts) < 2 {
			return Condition{}, fmt.Errorf("missing interface value for wait condition")
		}
		kind := IfGetsAddress
		if parts[0] == "if-gets-route" {
			kind = IfGetsRoute
		}
		return Condition{Kind: kind, Name: parts[1]}, nil
	default:
		return Condition{}, fmt.Errorf("invalid value for wait condition: %s", parts[0])
	}
}

// local address ranges, computed once: 127.0.0.0/8, 169.254.0.0/16 for
// IPv4; ::1 and fe80::/10 for IPv6. These are package-level values parsed
// once at package initialization, not lazily; the Evaluator does not hold
// its own copies.
var (
	loopback4  = mustParseCIDR("127.0.0.0/8")
	linkLocal4 = mustParseCIDR("169.254.0.0/16")
	linkLocal6 = mustParseCIDR("fe80::/10")
	loopback6  = net.ParseIP("::1")
)

func mustParseCIDR(s string) *net.IPNet {
	_, n, err := net.ParseCIDR(s)
	if err != nil {
		panic(err) // unreachable: s is a constant, valid CIDR literal
	}
	return n
}

// isLocal reports whether ip falls in a loopback or link-local range and so
// does not count as "real connectivity" for a wait condition.
func isLocal(ip net.IP) bool {
	if ip == nil {
		return false
	}
	if ip4 := ip.To4(); ip4 != nil {
		return loopback4.Contains(ip4) || linkLocal4.Contains(ip4)
	}
	return ip.Equal(loopback6) || linkLocal6.Contains(ip)
}

// Evaluator holds condition-evaluation state across the lifetime of a run:
// the chosen condition, and the latched interface index once a name-scoped
// condition resolves one. It is owned solely by the event loop (§5's
// single-task resource model).
type Evaluator struct {
	cond   Condition
	index  *uint16
	hasIdx bool
}

// NewEvaluator builds an Evaluator for cond. If an interface index for
// cond.Name is already known (e.g. resolved at startup via
// routesocket.InterfaceNameToIndex), pass it as knownIndex with ok true to
// skip the name→index latching step.
func NewEvaluator(cond Condition, knownIndex uint16, ok bool) *Evaluator {
	e := &Evaluator{cond: cond}
	if ok {
		e.latch(knownIndex)
	}
	return e
}

func (e *Evaluator) latch(index uint16) {
	idx := index
	e.index = &idx
	e.hasIdx = true
}

// Matches evaluates ev against the Evaluator's condition, updating the
// latched interface index as a side effect when a Link event's link
// sub-record names the target interface for the first time. It returns
// true exactly when the run should end with Success.
func (e *Evaluator) Matches(ev *routesocket.Event) bool {
	if ev == nil {
		return false
	}

	switch e.cond.Kind {
	case DefaultRoute:
		return e.matchesDefaultRoute(ev)
	case IfGetsAddress:
		return e.matchesIfGetsAddress(ev)
	case IfGetsRoute:
		return e.matchesIfGetsRoute(ev)
	default:
		return false
	}
}

func (e *Evaluator) matchesDefaultRoute(ev *routesocket.Event) bool {
	if ev.Kind != routesocket.EventRoute {
		return false
	}
	r := ev.Route
	switch r.Operation {
	case routesocket.RouteAdd, routesocket.RouteGet, routesocket.RouteChange:
	default:
		return false
	}
	if !r.Flags.IsUp() || r.Addrs.Gateway == nil {
		return false
	}
	return r.Addrs.Destination.IsZeroInet()
}

// adoptLinkName latches e.index the first time it sees a Link event whose
// link sub-record names e.cond.Name, per the Name→index adoption rule.
func (e *Evaluator) adoptLinkName(ev *routesocket.Event) {
	if e.hasIdx || ev.Kind != routesocket.EventLink {
		return
	}
	link := ev.Link.Addrs.InterfaceLink
	if link == nil || link.Family != routesocket.FamilyLink {
		return
	}
	if link.Link.Name == e.cond.Name {
		e.latch(ev.Link.InterfaceIndex)
	}
}

func (e *Evaluator) indexMatches(index uint16) bool {
	return e.hasIdx && *e.index == index
}

func (e *Evaluator) matchesIfGetsAddress(ev *routesocket.Event) bool {
	e.adoptLinkName(ev)

	switch ev.Kind {
	case routesocket.EventLink:
		// A link event counts only when the interface is both up and
		// running and the event itself carries a non-local address.
		l := ev.Link
		if !e.indexMatches(l.InterfaceIndex) {
			return false
		}
		if !l.Flags.IsUp() || !l.Flags.IsRunning() {
			return false
		}
		if l.Addrs.InterfaceAddr == nil {
			return false
		}
		return !isLocal(l.Addrs.InterfaceAddr.IP())
	case routesocket.EventAddress:
		a := ev.Address
		if !e.indexMatches(a.InterfaceIndex) {
			return false
		}
		if !a.Flags.IsUp() || a.Flags.IsDead() {
			return false
		}
		if a.Addrs.InterfaceAddr == nil {
			return false
		}
		return !isLocal(a.Addrs.InterfaceAddr.IP())
	default:
		return false
	}
}

func (e *Evaluator) matchesIfGetsRoute(ev *routesocket.Event) bool {
	e.adoptLinkName(ev)

	if ev.Kind != routesocket.EventRoute {
		return false
	}
	r := ev.Route
	if !e.indexMatches(r.InterfaceIndex) {
		return false
	}
	if !r.Flags.IsUp() || r.Flags.IsDead() {
		return false
	}
	if r.Addrs.Destination == nil {
		return false
	}
	return !isLocal(r.Addrs.Destination.IP())
}
