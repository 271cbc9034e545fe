package core_test

import (
	"testing"
	"time"

	"github.com/devblok/texel/core"
)

func TestNewTimeInterval(t *testing.T) {
	tm := core.NewTime(core.TimeConfiguration{FramesPerSecond: 60})
	defer tm.Stop()

	if tm.Fps() != 60 {
		t.Errorf("fps got %d, expected 60", tm.Fps())
	}
	if tm.Interval() != time.Second/60 {
		t.Errorf("interval got %v, expected %v", tm.Interval(), time.Second/60)
	}
}

func TestNewTimeUncapped(t *testing.T) {
	tm := core.NewTime(core.TimeConfiguration{})
	defer tm.Stop()

	if tm.Interval() != time.Nanosecond {
		t.Errorf("uncapped interval got %v, expected 1ns", tm.Interval())
	}
	if tm.FpsTicker() == nil {
		t.Error("ticker must be initialised even when uncapped")
	}
}
