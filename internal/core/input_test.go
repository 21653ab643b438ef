package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Has(ActionJump) should be true after Set")
	}
	if f.Has(ActionRelease) {
		t.Error("Has(ActionRelease) should be false")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.Elapsed = 0.016

	f.Clear()
	if f.Has(ActionConfirm) {
		t.Error("Clear should drop actions")
	}
	if f.Elapsed != 0 {
		t.Errorf("Clear should reset Elapsed, got %f", f.Elapsed)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)
	f.Elapsed = 0.5

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionRestart) || c.Elapsed != 0.5 {
		t.Errorf("Clone should be independent of the original, got %+v", c)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionJump:           "Jump",
		ActionRelease:        "Release",
		ActionNextDifficulty: "NextDifficulty",
		Action(99):           "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}

func TestFrameSeconds(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.FrameSeconds(); got != 1.0/60.0 {
		t.Errorf("FrameSeconds() = %f, expected 1/60", got)
	}
	cfg.TickRate = 0
	if got := cfg.FrameSeconds(); got != 1.0/60.0 {
		t.Errorf("FrameSeconds() with zero rate = %f, expected 1/60", got)
	}
}
