// Package flags declares netawait's command-line surface and resolves it
// against both the command line and its NETAWAIT_* environment variables,
// using github.com/m-lab/go/flagx.ArgsFromEnv for the generic env-var
// fallback.
package flags

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m-lab/go/flagx"
	"github.com/netawait/netawait/logx"
	"github.com/netawait/netawait/waiter"
)

// Args is the fully resolved, parsed command line.
type Args struct {
	WaitCondition waiter.Condition
	// Timeout is the overall receive budget; zero means wait forever.
	Timeout  time.Duration
	LogLevel logx.Level
}

// envDefault returns env's value if set, else fallback. Each of
// --wait-condition/--timeout/--log-level also reads its own explicit
// NETAWAIT_-prefixed variable; flagx.ArgsFromEnv (called below) only
// covers the generic case of an unprefixed FLAG_NAME env var, so these
// three are resolved directly as the flag's default before parsing —
// letting an explicit command-line flag still win.
func envDefault(env, fallback string) string {
	if v, ok := os.LookupEnv(env); ok {
		return v
	}
	return fallback
}

// Parse parses arguments (normally os.Args[1:]) into an Args.
func Parse(arguments []string) (*Args, error) {
	fs := flag.NewFlagSet("netawait", flag.ContinueOnError)

	waitConditionDefault := envDefault("NETAWAIT_WAIT_CONDITION", "default-route")
	var waitConditionStr string
	fs.StringVar(&waitConditionStr, "wait-condition", waitConditionDefault, "wait condition: default-route, if-gets-address=<name>, if-gets-route=<name>")
	fs.StringVar(&waitConditionStr, "w", waitConditionDefault, "shorthand for -wait-condition")

	timeoutDefault := 0
	if v := envDefault("NETAWAIT_TIMEOUT", ""); v != "" {
		fmt.Sscanf(v, "%d", &timeoutDefault)
	}
	var timeoutSeconds int
	fs.IntVar(&timeoutSeconds, "timeout", timeoutDefault, "seconds to wait before giving up; 0 waits forever")
	fs.IntVar(&timeoutSeconds, "t", timeoutDefault, "shorthand for -timeout")

	logLevelDefault := envDefault("NETAWAIT_LOG_LEVEL", "warn")
	var logLevelStr string
	fs.StringVar(&logLevelStr, "log-level", logLevelDefault, "error, warn, info, debug, or trace")
	fs.StringVar(&logLevelStr, "l", logLevelDefault, "shorthand for -log-level")

	if err := fs.Parse(arguments); err != nil {
		return nil, err
	}
	flagx.ArgsFromEnv(fs)

	cond, err := waiter.ParseCondition(waitConditionStr)
	if err != nil {
		return nil, err
	}
	level, err := logx.ParseLevel(logLevelStr)
	if err != nil {
		return nil, err
	}

	return &Args{
		WaitCondition: cond,
		Timeout:       time.Duration(timeoutSeconds) * time.Second,
		LogLevel:      level,
	}, nil
}
