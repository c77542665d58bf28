// netawait blocks until a chosen network-readiness condition becomes true
// on a BSD-derived host, then exits. It exists so scripts and init systems
// can wait for connectivity before starting a VPN client, mounting a
// remote filesystem, or running a network-dependent job.
package main

import (
	"context"
	"log"
	"os"

	"github.com/m-lab/go/prometheusx"
	"github.com/m-lab/go/rtx"

	"github.com/netawait/netawait/flags"
	"github.com/netawait/netawait/logx"
	"github.com/netawait/netawait/routesocket"
	"github.com/netawait/netawait/waiter"
)

func init() {
	// Always prepend the filename and line number.
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// Exit codes, per the CLI surface.
const (
	exitSuccess    = 0
	exitIOError    = 1
	exitTimeout    = 2
	exitParseError = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(arguments []string) int {
	args, err := flags.Parse(arguments)
	if err != nil {
		log.Printf("error: %v", err)
		return exitParseError
	}

	lg := logx.New(args.LogLevel)

	// Metrics are opt-in: netawait runs as a short-lived CLI, not a
	// supervised service, so there's no listener unless an operator asks
	// for one.
	if addr := os.Getenv("NETAWAIT_METRICS_ADDR"); addr != "" {
		promSrv := prometheusx.MustStartPrometheus(addr)
		defer promSrv.Shutdown(context.Background())
	}

	sock, err := routesocket.OpenRouteSocket(args.Timeout)
	rtx.Must(err, "could not open route socket")
	defer sock.Close()

	knownIndex, hasIndex := resolveKnownIndex(args.WaitCondition, lg)

	outcome, err := waiter.Run(sock, args.WaitCondition, knownIndex, hasIndex, lg)
	switch outcome {
	case waiter.Success:
		return exitSuccess
	case waiter.TimedOut:
		return exitTimeout
	default:
		return classifyFailure(err)
	}
}

// classifyFailure maps a waiter.Run error onto the exit-code taxonomy:
// parse errors (fatal length mismatches, malformed address records) exit
// 3, everything else (socket I/O) exits 1.
func classifyFailure(err error) int {
	if _, ok := err.(*routesocket.LengthMismatchError); ok {
		return exitParseError
	}
	switch err {
	case routesocket.ErrPartialData, routesocket.ErrEmptySlice,
		routesocket.ErrWrongFamily, routesocket.ErrNetmaskUnresolved:
		return exitParseError
	}
	return exitIOError
}

// resolveKnownIndex looks up the interface named by a name-scoped wait
// condition before the event loop starts, per §4.6's "preferred, once
// known" rule. Absence is not fatal: the evaluator stays name-scoped until
// a matching Link event latches the index.
func resolveKnownIndex(cond waiter.Condition, lg *logx.Logger) (uint16, bool) {
	if cond.Name == "" {
		return 0, false
	}
	idx, err := routesocket.InterfaceNameToIndex(cond.Name)
	if err != nil {
		lg.Debug("interface %q not yet present: %v", cond.Name, err)
		return 0, false
	}
	return uint16(idx), true
}
