package model

// Record describes one process and its memory usage at the moment a
// collection pass observed it. Records are value types; once built they
// are never mutated.
type Record struct {
	PID             int
	Name            string
	WorkingSetBytes uint64
	PrivateBytes    uint64
}
