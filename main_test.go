package main

import (
	"errors"
	"testing"

	"github.com/netawait/netawait/routesocket"
	"github.com/netawait/netawait/waiter"
)

func TestRunRejectsInvalidFlags(t *testing.T) {
	if got := run([]string{"-wait-condition", "not-a-real-condition"}); got != exitParseError {
		t.Errorf("run() = %d, want exitParseError (%d)", got, exitParseError)
	}
}

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"length mismatch", &routesocket.LengthMismatchError{Declared: 10, Actual: 11}, exitParseError},
		{"partial data", routesocket.ErrPartialData, exitParseError},
		{"empty slice", routesocket.ErrEmptySlice, exitParseError},
		{"generic I/O", errors.New("socket closed"), exitIOError},
	}
	for _, tt := range tests {
		if got := classifyFailure(tt.err); got != tt.want {
			t.Errorf("%s: classifyFailure() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestResolveKnownIndexAbsentInterface(t *testing.T) {
	cond := waiter.Condition{Kind: waiter.IfGetsAddress, Name: "does-not-exist-xyz"}
	idx, ok := resolveKnownIndex(cond, nil)
	if ok {
		t.Errorf("expected no index for a nonexistent interface, got %d", idx)
	}
}
