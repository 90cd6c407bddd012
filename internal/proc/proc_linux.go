//go:build linux

package proc

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sancognition/memsniff/pkg/model"
)

type osLister struct{}

func (osLister) ListPIDs(pids []uint32) (int, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return 0, err
	}

	n := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.ParseUint(e.Name(), 10, 32)
		if err != nil {
			continue
		}
		if n == len(pids) {
			// Report a full buffer so the caller grows it and retries.
			return n, nil
		}
		pids[n] = uint32(pid)
		n++
	}
	return n, nil
}

type osInspector struct{}

func (osInspector) Inspect(pid uint32) (model.Record, bool) {
	if pid == 0 {
		return model.Record{}, false
	}

	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/status", pid))
	if err != nil {
		// Exited since enumeration, or hidden by hidepid.
		return model.Record{}, false
	}
	working, private, ok := parseStatusCounters(string(data))
	if !ok {
		// Kernel threads carry no Vm* counters.
		return model.Record{}, false
	}

	name := resolveName(
		func() (string, error) { return commName(pid) },
		func() (string, error) { return os.Readlink(fmt.Sprintf("/proc/%d/exe", pid)) },
	)

	return model.Record{
		PID:             int(pid),
		Name:            name,
		WorkingSetBytes: working,
		PrivateBytes:    private,
	}, true
}

// parseStatusCounters pulls VmRSS (resident pages) and VmData+VmStk
// (memory committed privately to the process) out of a
// /proc/<pid>/status blob. The kernel reports the values in kB.
func parseStatusCounters(status string) (working, private uint64, ok bool) {
	for _, line := range strings.Split(status, "\n") {
		key, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		kb, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}
		switch key {
		case "VmRSS":
			working = kb * 1024
			ok = true
		case "VmData", "VmStk":
			private += kb * 1024
		}
	}
	return working, private, ok
}

func commName(pid uint32) (string, error) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
