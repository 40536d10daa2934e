package core

import "testing"

func TestInputEdgeDetection(t *testing.T) {
	f := NewInputFrame()

	f.Set(ActionFire)
	if !f.Pressed(ActionFire) {
		t.Error("Pressed should be true after Set")
	}
	if !f.JustPressed(ActionFire) {
		t.Error("JustPressed should be true on the first tick")
	}

	// Held across the shift: pressed but no longer an edge.
	f.Shift()
	f.Set(ActionFire)
	if !f.Pressed(ActionFire) {
		t.Error("Pressed should stay true while held")
	}
	if f.JustPressed(ActionFire) {
		t.Error("JustPressed should be false while held")
	}

	// Released: the release edge fires exactly once.
	f.Shift()
	if f.Pressed(ActionFire) {
		t.Error("Pressed should be false after release")
	}
	if !f.JustReleased(ActionFire) {
		t.Error("JustReleased should be true on the release tick")
	}
	f.Shift()
	if f.JustReleased(ActionFire) {
		t.Error("JustReleased should be false once the release has been seen")
	}
}

func TestInputDirection(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Vec
	}{
		{"none", nil, Vec{0, 0}},
		{"up", []Action{ActionUp}, Vec{0, -1}},
		{"down", []Action{ActionDown}, Vec{0, 1}},
		{"left", []Action{ActionLeft}, Vec{-1, 0}},
		{"right", []Action{ActionRight}, Vec{1, 0}},
		{"diagonal", []Action{ActionUp, ActionRight}, Vec{1, -1}},
		{"opposing horizontal cancel", []Action{ActionLeft, ActionRight}, Vec{0, 0}},
		{"opposing vertical cancel", []Action{ActionUp, ActionDown}, Vec{0, 0}},
		{"all four cancel", []Action{ActionUp, ActionDown, ActionLeft, ActionRight}, Vec{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputClearDropsHistory(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Shift()
	f.Set(ActionUp)

	f.Clear()

	if f.Pressed(ActionUp) {
		t.Error("Pressed should be false after Clear")
	}
	if f.JustReleased(ActionFire) {
		t.Error("Clear should drop the previous tick's state")
	}
}

func TestInputCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Shift()
	f.Set(ActionUp)

	clone := f.Clone()
	f.Clear()

	if !clone.Pressed(ActionUp) {
		t.Error("clone should keep the current set after the original is cleared")
	}
	if clone.JustPressed(ActionFire) {
		t.Error("clone should keep the previous set: fire was already held")
	}
}

func TestInputZeroValueSet(t *testing.T) {
	// A zero-value frame must tolerate Set without a prior NewInputFrame.
	var f InputFrame
	f.Set(ActionFire)
	if !f.Pressed(ActionFire) {
		t.Error("Set on zero-value frame should register")
	}
}
