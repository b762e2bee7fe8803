package model

// SessionState represents where the window is in the choose/convert cycle
type SessionState string

const (
	// StateIdle means nothing is chosen
	StateIdle SessionState = "Idle"

	// StateFilesChosen means at least one file is in the selection
	StateFilesChosen SessionState = "FilesChosen"

	// StateConverting means a conversion is running
	StateConverting SessionState = "Converting"

	// StateSucceeded means the last conversion wrote its output
	StateSucceeded SessionState = "Succeeded"

	// StateFailed means the last conversion failed without output
	StateFailed SessionState = "Failed"
)

var sessionTransitions = map[SessionState][]SessionState{
	StateIdle:        {StateFilesChosen},
	StateFilesChosen: {StateIdle, StateFilesChosen, StateConverting},
	StateConverting:  {StateSucceeded, StateFailed},
	StateSucceeded:   {StateIdle, StateFilesChosen},
	StateFailed:      {StateIdle, StateFilesChosen},
}

// String returns the string representation of SessionState
func (s SessionState) String() string {
	return string(s)
}

// IsActive returns true while a conversion is running
func (s SessionState) IsActive() bool {
	return s == StateConverting
}

// IsFinished returns true if the state ends a conversion (succeeded or failed)
func (s SessionState) IsFinished() bool {
	return s == StateSucceeded || s == StateFailed
}

// CanTransition reports whether moving from s to next is allowed
func (s SessionState) CanTransition(next SessionState) bool {
	for _, allowed := range sessionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
