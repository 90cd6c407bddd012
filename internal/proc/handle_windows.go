//go:build windows

package proc

import "golang.org/x/sys/windows"

// handle owns an OS process handle opened with the minimum rights needed
// to query memory counters and resolve a name. Ownership is exclusive;
// callers defer Close at acquisition so the OS handle is released
// exactly once on every exit path.
type handle struct {
	h windows.Handle
}

// openProcess acquires a handle to pid. Failure is common (system and
// protected processes, pids that exited between enumeration and now) and
// is reported as an absent handle, not an error.
func openProcess(pid uint32) (*handle, bool) {
	h, err := windows.OpenProcess(
		windows.PROCESS_QUERY_INFORMATION|windows.PROCESS_VM_READ,
		false,
		pid,
	)
	if err != nil {
		return nil, false
	}
	return &handle{h: h}, true
}

func (h *handle) raw() windows.Handle {
	return h.h
}

// Close releases the underlying OS handle. Safe to call more than once.
func (h *handle) Close() {
	if h.h != 0 {
		windows.CloseHandle(h.h)
		h.h = 0
	}
}
