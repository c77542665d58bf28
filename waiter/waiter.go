package waiter

import (
	"fmt"
	"time"

	"github.com/netawait/netawait/logx"
	"github.com/netawait/netawait/metrics"
	"github.com/netawait/netawait/routesocket"
)

// readBufferSize is the socket read buffer, reused across reads. §3 of the
// data model requires at least 2048 bytes.
const readBufferSize = 4096

// Outcome is how a Run ended.
type Outcome int

const (
	Success Outcome = iota
	TimedOut
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case TimedOut:
		return "timed_out"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Run sends the initial request dictated by cond, then loops receiving and
// classifying messages until the predicate matches, the socket times out,
// or an unrecoverable error occurs. It plays the role a collector's polling
// loop plays, adapted from "poll forever" to "block until one condition
// fires or time runs out"; metrics recording here stands in for a cache
// logger's periodic stats line.
func Run(sock *routesocket.Socket, cond Condition, knownIndex uint16, hasIndex bool, log *logx.Logger) (Outcome, error) {
	start := time.Now()
	eval := NewEvaluator(cond, knownIndex, hasIndex)

	if err := sendInitialRequest(sock, cond, knownIndex, hasIndex, log); err != nil {
		return reportOutcome(Failed, start), err
	}

	buf := make([]byte, readBufferSize)
	for {
		n, err := sock.Receive(buf)
		if err != nil {
			if routesocket.IsTimeout(err) {
				log.Warn("timed out waiting for %s", cond.Kind)
				return reportOutcome(TimedOut, start), err
			}
			log.Error("receive failed: %v", err)
			return reportOutcome(Failed, start), err
		}

		ev, err := routesocket.DecodeMessage(buf[:n])
		if err != nil {
			metrics.ParseErrorCount.WithLabelValues(errorKind(err)).Inc()
			log.Error("decode failed: %v", err)
			return reportOutcome(Failed, start), err
		}
		if ev == nil {
			metrics.MessagesSkipped.Inc()
			continue
		}

		metrics.EventsClassified.WithLabelValues(ev.Kind.String()).Inc()
		log.Trace("classified %s", ev)

		if eval.Matches(ev) {
			log.Info("wait condition %s satisfied by %s", cond.Kind, ev)
			return reportOutcome(Success, start), nil
		}
	}
}

func sendInitialRequest(sock *routesocket.Socket, cond Condition, knownIndex uint16, hasIndex bool, log *logx.Logger) error {
	const pid = 0
	const seq = 1

	switch cond.Kind {
	case DefaultRoute:
		log.Debug("sending default-IPv4 query")
		return sock.Send(routesocket.BuildDefaultIPv4Query(pid, seq))
	case IfGetsAddress, IfGetsRoute:
		if !hasIndex {
			log.Debug("interface %q not yet known; listening for it by name", cond.Name)
			return nil
		}
		log.Debug("sending interface-info query for index %d", knownIndex)
		return sock.Send(routesocket.BuildInterfaceInfoQuery(knownIndex, pid, seq))
	default:
		return fmt.Errorf("waiter: unrecognized condition kind %v", cond.Kind)
	}
}

func errorKind(err error) string {
	switch err.(type) {
	case *routesocket.LengthMismatchError:
		return "length_mismatch"
	default:
		if err == routesocket.ErrPartialData {
			return "partial_data"
		}
		if err == routesocket.ErrEmptySlice {
			return "empty_slice"
		}
		return "other"
	}
}

func reportOutcome(o Outcome, start time.Time) Outcome {
	metrics.OutcomeCount.WithLabelValues(o.String()).Inc()
	metrics.WaitLatencyHistogram.Observe(time.Since(start).Seconds())
	return o
}
