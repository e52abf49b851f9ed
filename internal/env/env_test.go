package env

import (
	"context"
	"testing"
	"time"
)

func TestNoDeadlineNeverTimesOut(t *testing.T) {
	e := New(context.Background(), 0)
	defer e.Close()
	if err := e.CheckTimeout(); err != nil {
		t.Fatalf("CheckTimeout() = %v, want nil with no deadline", err)
	}
}

func TestDeadlineExpires(t *testing.T) {
	e := New(context.Background(), time.Millisecond)
	defer e.Close()
	time.Sleep(5 * time.Millisecond)
	if err := e.CheckTimeout(); err != ErrTimeout {
		t.Fatalf("CheckTimeout() = %v, want ErrTimeout", err)
	}
}

func TestResetTimerGrantsFreshBudget(t *testing.T) {
	e := New(context.Background(), 10*time.Millisecond)
	defer e.Close()
	time.Sleep(15 * time.Millisecond)
	if err := e.CheckTimeout(); err != ErrTimeout {
		t.Fatalf("expected timeout before reset, got %v", err)
	}
	e.ResetTimer()
	if err := e.CheckTimeout(); err != nil {
		t.Fatalf("CheckTimeout() after ResetTimer() = %v, want nil", err)
	}
}
