package flags

import (
	"testing"
	"time"

	"github.com/m-lab/go/osx"
	"github.com/netawait/netawait/waiter"
)

func TestParseDefaults(t *testing.T) {
	args, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if args.WaitCondition.Kind != waiter.DefaultRoute {
		t.Errorf("WaitCondition = %+v, want DefaultRoute", args.WaitCondition)
	}
	if args.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", args.Timeout)
	}
}

func TestParseFlags(t *testing.T) {
	args, err := Parse([]string{"-wait-condition", "if-gets-address=en0", "-timeout", "5"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if args.WaitCondition.Kind != waiter.IfGetsAddress || args.WaitCondition.Name != "en0" {
		t.Errorf("WaitCondition = %+v", args.WaitCondition)
	}
	if args.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", args.Timeout)
	}
}

func TestParseEnvVars(t *testing.T) {
	cleanup1 := osx.MustSetenv("NETAWAIT_WAIT_CONDITION", "if-gets-route=en1")
	defer cleanup1()
	cleanup2 := osx.MustSetenv("NETAWAIT_TIMEOUT", "10")
	defer cleanup2()
	cleanup3 := osx.MustSetenv("NETAWAIT_LOG_LEVEL", "debug")
	defer cleanup3()

	args, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if args.WaitCondition.Kind != waiter.IfGetsRoute || args.WaitCondition.Name != "en1" {
		t.Errorf("WaitCondition = %+v", args.WaitCondition)
	}
	if args.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", args.Timeout)
	}
	if args.LogLevel.String() != "debug" {
		t.Errorf("LogLevel = %v, want debug", args.LogLevel)
	}
}

func TestParseFlagOverridesEnv(t *testing.T) {
	cleanup := osx.MustSetenv("NETAWAIT_WAIT_CONDITION", "if-gets-route=en1")
	defer cleanup()

	args, err := Parse([]string{"-wait-condition", "default-route"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if args.WaitCondition.Kind != waiter.DefaultRoute {
		t.Errorf("expected explicit flag to override env var, got %+v", args.WaitCondition)
	}
}

func TestParseInvalidWaitCondition(t *testing.T) {
	if _, err := Parse([]string{"-wait-condition", "bogus"}); err == nil {
		t.Fatal("expected an error for an invalid wait condition")
	}
}
