package proc

import "fmt"

// pidBufferSeed is the starting capacity of the enumeration buffer,
// sized for a reasonably busy host so most passes need a single call.
const pidBufferSeed = 1024

// EnumerationError reports a hard failure of the OS enumeration
// primitive. Unlike a process that refuses inspection, this is fatal to
// a collection pass: without the pid list nothing else can run.
type EnumerationError struct {
	Op  string
	Err error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

// EnumeratePIDs returns the identifiers of all currently live processes.
// The primitive cannot distinguish an exactly-filled buffer from a
// truncated one, so the buffer is doubled and the call retried until the
// count comes back strictly below capacity. Process counts are bounded,
// so the loop terminates after a handful of doublings at worst.
func EnumeratePIDs() ([]uint32, error) {
	pids := make([]uint32, pidBufferSeed)
	for {
		n, err := lister.ListPIDs(pids)
		if err != nil {
			return nil, &EnumerationError{Op: "enumerate processes", Err: err}
		}
		if n < len(pids) {
			return pids[:n], nil
		}
		pids = make([]uint32, 2*len(pids))
	}
}
