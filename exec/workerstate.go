package exec

// workerState is the small state word each worker goroutine exposes to the
// owner, translated from the original's std::atomic<int> with the same
// four values (§4.6, §5).
type workerState int32

const (
	stateIdle workerState = iota
	statePropagating
	stateStepping
	stateTerminating
)
