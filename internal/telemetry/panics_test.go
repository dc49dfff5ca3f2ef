package telemetry

import "testing"

func TestGuardRecoversPanicAndReturnsError(t *testing.T) {
	reporter, err := NewPanicReporter("", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = reporter.Guard("counter.tsx", func() error {
		panic("boom")
	})
	if err == nil {
		t.Fatal("expected Guard to convert the panic into an error")
	}
}

func TestGuardPassesThroughNormalReturn(t *testing.T) {
	reporter, err := NewPanicReporter("", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	called := false
	err = reporter.Guard("counter.tsx", func() error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected fn to be invoked")
	}
}
