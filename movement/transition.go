package movement

// Cause describes why the arbiter changed the active module.
type Cause uint8

const (
	// CausePriority is a switch to a higher priority module, or to any module while none
	// was active.
	CausePriority Cause = iota
	// CauseRetrigger is a switch to a different module of equal priority.
	CauseRetrigger
	// CauseFallback is the default module taking over because nothing wanted control.
	CauseFallback
	// CauseSelf is a module removing itself.
	CauseSelf
	// CauseForced is the facade removing the active module.
	CauseForced
)

func (c Cause) String() string {
	switch c {
	case CausePriority:
		return "priority"
	case CauseRetrigger:
		return "retrigger"
	case CauseFallback:
		return "fallback"
	case CauseSelf:
		return "self"
	case CauseForced:
		return "forced"
	}
	return "unknown"
}

// Transition records a single change of the active module. Transitions are advisory and
// never read back by the core.
type Transition struct {
	From, To           Tag
	FromState, ToState State

	Tick uint64
	Time float64

	Cause  Cause
	Reason string
}

// Observer is notified of every transition the arbiter performs.
type Observer interface {
	OnTransition(t Transition)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(t Transition)

func (f ObserverFunc) OnTransition(t Transition) {
	f(t)
}

// Observers fans a transition out to several observers.
type Observers []Observer

func (o Observers) OnTransition(t Transition) {
	for _, obs := range o {
		if obs != nil {
			obs.OnTransition(t)
		}
	}
}
