package domain

// LifecycleState tracks where a UI instance is in its life.
// Transitions only move forward: Declared -> Materializing -> LaidOut ->
// Running -> Stopped. Stopped is terminal; an instance is never restarted.
type LifecycleState string

const (
	StateDeclared      LifecycleState = "declared"
	StateMaterializing LifecycleState = "materializing"
	StateLaidOut       LifecycleState = "laid_out"
	StateRunning       LifecycleState = "running"
	StateStopped       LifecycleState = "stopped"
)
