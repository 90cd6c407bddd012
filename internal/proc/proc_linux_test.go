//go:build linux

package proc

import (
	"os"
	"testing"
)

func TestParseStatusCounters(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		wantWorking uint64
		wantPrivate uint64
		wantOK      bool
	}{
		{
			name: "normal process",
			status: "Name:\tapp\n" +
				"VmPeak:\t  204800 kB\n" +
				"VmRSS:\t   51200 kB\n" +
				"VmData:\t   16384 kB\n" +
				"VmStk:\t     132 kB\n",
			wantWorking: 51200 * 1024,
			wantPrivate: (16384 + 132) * 1024,
			wantOK:      true,
		},
		{
			name:   "kernel thread has no Vm counters",
			status: "Name:\tkworker/0:1\nThreads:\t1\n",
			wantOK: false,
		},
		{
			name:        "missing private counters still resident",
			status:      "VmRSS:\t  1024 kB\n",
			wantWorking: 1024 * 1024,
			wantPrivate: 0,
			wantOK:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			working, private, ok := parseStatusCounters(tt.status)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if working != tt.wantWorking {
				t.Errorf("working = %d, want %d", working, tt.wantWorking)
			}
			if private != tt.wantPrivate {
				t.Errorf("private = %d, want %d", private, tt.wantPrivate)
			}
		})
	}
}

func TestInspectRejectsPIDZero(t *testing.T) {
	if _, ok := (osInspector{}).Inspect(0); ok {
		t.Error("pid 0 must be unavailable")
	}
}

func TestInspectSelf(t *testing.T) {
	rec, ok := (osInspector{}).Inspect(uint32(os.Getpid()))
	if !ok {
		t.Fatal("inspecting our own pid should succeed")
	}
	if rec.PID != os.Getpid() {
		t.Errorf("PID = %d, want %d", rec.PID, os.Getpid())
	}
	if rec.Name == "" {
		t.Error("name should never be empty")
	}
	if rec.WorkingSetBytes == 0 {
		t.Error("a running process has a nonzero working set")
	}
}

func TestListPIDsFindsSelf(t *testing.T) {
	pids := make([]uint32, pidBufferSeed)
	n, err := (osLister{}).ListPIDs(pids)
	if err != nil {
		t.Fatalf("ListPIDs failed: %v", err)
	}
	self := uint32(os.Getpid())
	for _, pid := range pids[:n] {
		if pid == self {
			return
		}
	}
	t.Errorf("own pid %d not in the %d enumerated pids", self, n)
}
