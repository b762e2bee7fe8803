package model

import "testing"

func TestSessionState_IsActive(t *testing.T) {
	tests := []struct {
		state    SessionState
		expected bool
	}{
		{StateIdle, false},
		{StateFilesChosen, false},
		{StateConverting, true},
		{StateSucceeded, false},
		{StateFailed, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("SessionState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestSessionState_IsFinished(t *testing.T) {
	tests := []struct {
		state    SessionState
		expected bool
	}{
		{StateIdle, false},
		{StateFilesChosen, false},
		{StateConverting, false},
		{StateSucceeded, true},
		{StateFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("SessionState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestSessionState_CanTransition(t *testing.T) {
	tests := []struct {
		from     SessionState
		to       SessionState
		expected bool
	}{
		{StateIdle, StateFilesChosen, true},
		{StateIdle, StateConverting, false},
		{StateFilesChosen, StateConverting, true},
		{StateFilesChosen, StateIdle, true},
		{StateConverting, StateSucceeded, true},
		{StateConverting, StateFailed, true},
		{StateConverting, StateIdle, false},
		{StateSucceeded, StateFilesChosen, true},
		{StateFailed, StateIdle, true},
		{StateFailed, StateConverting, false},
	}

	for _, test := range tests {
		result := test.from.CanTransition(test.to)
		if result != test.expected {
			t.Errorf("%s -> %s: CanTransition = %v, expected %v", test.from, test.to, result, test.expected)
		}
	}
}

func TestSessionState_String(t *testing.T) {
	state := StateConverting
	expected := "Converting"
	result := state.String()

	if result != expected {
		t.Errorf("SessionState.String() = %s, expected %s", result, expected)
	}
}
