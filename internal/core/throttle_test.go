package core

import "testing"

func TestThrottleFixedInterval(t *testing.T) {
	const interval = 100.0
	th := NewThrottle(interval)

	tests := []struct {
		now      float64
		expected bool
	}{
		{0, true},
		{interval - 1, false},
		{interval, true},
		{2*interval - 1, false},
	}

	runs := 0
	for _, tc := range tests {
		got := th.Try(tc.now, func() { runs++ })
		if got != tc.expected {
			t.Errorf("Try(%v) = %v, expected %v", tc.now, got, tc.expected)
		}
	}
	if runs != 2 {
		t.Errorf("action ran %d times, expected 2", runs)
	}
}

func TestThrottleFirstCallAlwaysRuns(t *testing.T) {
	th := NewThrottle(1000)
	if !th.Try(5, nil) {
		t.Error("first Try() should run regardless of the clock")
	}
	if th.Ready(500) {
		t.Error("Ready() should be false inside the interval")
	}

	th.Reset()
	if !th.Ready(500) {
		t.Error("Ready() should be true after Reset()")
	}
}

func TestThrottleVariableInterval(t *testing.T) {
	intervals := []float64{250, 300, 350}
	i := 0
	th := NewVariableThrottle(func() float64 {
		v := intervals[i%len(intervals)]
		i++
		return v
	})

	if th.Interval() != 250 {
		t.Fatalf("Interval() = %v, expected 250", th.Interval())
	}
	if !th.Try(0, nil) {
		t.Fatal("first Try() should run")
	}
	if th.Interval() != 300 {
		t.Errorf("Interval() after run = %v, expected 300", th.Interval())
	}
	if th.Try(250, nil) {
		t.Error("Try(250) should be dropped by the re-rolled 300ms interval")
	}
	if !th.Try(300, nil) {
		t.Error("Try(300) should run")
	}
	if th.Interval() != 350 {
		t.Errorf("Interval() = %v, expected 350", th.Interval())
	}
}
