package proc

import "github.com/sancognition/memsniff/pkg/model"

//go:generate mockgen -destination=mocks/mock_lister.go -package=mocks github.com/sancognition/memsniff/internal/proc Lister

// Lister is the OS process-enumeration primitive. It fills pids with the
// identifiers of live processes and reports how many entries it wrote.
// A count equal to len(pids) is ambiguous: the buffer may have been too
// small, and the caller must grow it and retry.
type Lister interface {
	ListPIDs(pids []uint32) (int, error)
}

// ListerFunc adapts a function to the Lister interface.
type ListerFunc func(pids []uint32) (int, error)

func (f ListerFunc) ListPIDs(pids []uint32) (int, error) {
	return f(pids)
}

// Inspector reads the memory counters and display name of a single
// process. The second result is false when the process is unavailable
// (gone, protected, or access denied); that is an expected outcome for
// many pids on any host, not an error.
type Inspector interface {
	Inspect(pid uint32) (model.Record, bool)
}

// InspectorFunc adapts a function to the Inspector interface.
type InspectorFunc func(pid uint32) (model.Record, bool)

func (f InspectorFunc) Inspect(pid uint32) (model.Record, bool) {
	return f(pid)
}

var lister Lister = osLister{}

var inspector Inspector = osInspector{}

// SetLister replaces the OS lister, for tests.
func SetLister(l Lister) {
	lister = l
}

func ResetLister() {
	lister = osLister{}
}

// SetInspector replaces the OS inspector, for tests.
func SetInspector(i Inspector) {
	inspector = i
}

func ResetInspector() {
	inspector = osInspector{}
}
