package cli

import (
	"testing"
	"time"
)

func TestSetupSignalHandler(t *testing.T) {
	ctx := SetupSignalHandler()

	select {
	case <-ctx.Done():
		t.Error("Context should not be cancelled initially")
	default:
	}

	if ctx.Done() == nil {
		t.Error("Context should have a Done channel")
	}
}

func TestWaitForShutdown(t *testing.T) {
	sigChan := WaitForShutdown()

	if sigChan == nil {
		t.Fatal("WaitForShutdown() returned nil channel")
	}

	select {
	case <-sigChan:
		t.Error("Signal channel should be empty initially")
	case <-time.After(10 * time.Millisecond):
	}
}
