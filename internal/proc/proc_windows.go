//go:build windows

package proc

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/sancognition/memsniff/pkg/model"
)

var (
	modpsapi                 = windows.NewLazySystemDLL("psapi.dll")
	procGetProcessMemoryInfo = modpsapi.NewProc("GetProcessMemoryInfo")
	procGetModuleBaseNameW   = modpsapi.NewProc("GetModuleBaseNameW")
)

// processMemoryCountersEx mirrors PROCESS_MEMORY_COUNTERS_EX on 64-bit
// Windows. PrivateUsage is the commit charge private to the process.
type processMemoryCountersEx struct {
	CB                         uint32
	PageFaultCount             uint32
	PeakWorkingSetSize         uint64
	WorkingSetSize             uint64
	QuotaPeakPagedPoolUsage    uint64
	QuotaPagedPoolUsage        uint64
	QuotaPeakNonPagedPoolUsage uint64
	QuotaNonPagedPoolUsage     uint64
	PagefileUsage              uint64
	PeakPagefileUsage          uint64
	PrivateUsage               uint64
}

type osLister struct{}

func (osLister) ListPIDs(pids []uint32) (int, error) {
	var bytesReturned uint32
	if err := windows.EnumProcesses(pids, &bytesReturned); err != nil {
		return 0, err
	}
	return int(bytesReturned / uint32(unsafe.Sizeof(uint32(0)))), nil
}

type osInspector struct{}

func (osInspector) Inspect(pid uint32) (model.Record, bool) {
	if pid == 0 {
		return model.Record{}, false
	}

	h, ok := openProcess(pid)
	if !ok {
		return model.Record{}, false
	}
	defer h.Close()

	var pmc processMemoryCountersEx
	pmc.CB = uint32(unsafe.Sizeof(pmc))
	ret, _, _ := procGetProcessMemoryInfo.Call(
		uintptr(h.raw()),
		uintptr(unsafe.Pointer(&pmc)),
		uintptr(pmc.CB),
	)
	if ret == 0 {
		return model.Record{}, false
	}

	name := resolveName(
		func() (string, error) { return moduleBaseName(h.raw()) },
		func() (string, error) { return fullImageName(h.raw()) },
	)

	return model.Record{
		PID:             int(pid),
		Name:            name,
		WorkingSetBytes: pmc.WorkingSetSize,
		PrivateBytes:    pmc.PrivateUsage,
	}, true
}

func moduleBaseName(h windows.Handle) (string, error) {
	var buf [windows.MAX_PATH]uint16
	ret, _, err := procGetModuleBaseNameW.Call(
		uintptr(h),
		0,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if ret == 0 {
		return "", err
	}
	return windows.UTF16ToString(buf[:]), nil
}

func fullImageName(h windows.Handle) (string, error) {
	var buf [windows.MAX_PATH]uint16
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return "", err
	}
	return windows.UTF16ToString(buf[:size]), nil
}
