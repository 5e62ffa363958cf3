package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionDuckRelease)
	if !f.Has(ActionJump) || !f.Has(ActionDuckRelease) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionDuck) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionJump:        "Jump",
		ActionDuckRelease: "DuckRelease",
		ActionRestart:     "Restart",
		Action(99):        "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
