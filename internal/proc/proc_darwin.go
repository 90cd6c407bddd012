//go:build darwin

package proc

import (
	"github.com/shirou/gopsutil/v3/process"

	"github.com/sancognition/memsniff/pkg/model"
)

type osLister struct{}

func (osLister) ListPIDs(pids []uint32) (int, error) {
	live, err := process.Pids()
	if err != nil {
		return 0, err
	}

	n := 0
	for _, pid := range live {
		if pid < 0 {
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

	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return model.Record{}, false
	}
	mem, err := p.MemoryInfo()
	if err != nil || mem == nil {
		return model.Record{}, false
	}

	name := resolveName(p.Name, p.Exe)

	return model.Record{
		PID:             int(pid),
		Name:            name,
		WorkingSetBytes: mem.RSS,
		// Darwin exposes no direct private-bytes counter; VMS is the
		// closest value psutil reports.
		PrivateBytes: mem.VMS,
	}, true
}
