package core

import "testing"

func TestSignalString(t *testing.T) {
	tests := []struct {
		sig  Signal
		want string
	}{
		{SignalMoveLeftStart, "MoveLeftStart"},
		{SignalMoveRightStop, "MoveRightStop"},
		{SignalJump, "JumpRequested"},
		{SignalRetry, "RetryRequested"},
		{Signal(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.sig.String(); got != tc.want {
			t.Errorf("Signal(%d).String() = %q, expected %q", tc.sig, got, tc.want)
		}
	}
}

func TestDirectionSignals(t *testing.T) {
	if DirLeft.StartSignal() != SignalMoveLeftStart || DirLeft.StopSignal() != SignalMoveLeftStop {
		t.Error("left direction maps to wrong signals")
	}
	if DirRight.StartSignal() != SignalMoveRightStart || DirRight.StopSignal() != SignalMoveRightStop {
		t.Error("right direction maps to wrong signals")
	}
	if DirNone.StartSignal() != SignalNone || DirNone.StopSignal() != SignalNone {
		t.Error("no direction should map to SignalNone")
	}
}
