package proc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sancognition/memsniff/pkg/model"
)

func stubLister(pids ...uint32) Lister {
	return ListerFunc(func(buf []uint32) (int, error) {
		n := copy(buf, pids)
		return n, nil
	})
}

func TestCollectSkipsUnavailableProcesses(t *testing.T) {
	SetLister(stubLister(0, 100, 200))
	defer ResetLister()

	var inspected []uint32
	SetInspector(InspectorFunc(func(pid uint32) (model.Record, bool) {
		inspected = append(inspected, pid)
		switch pid {
		case 100:
			// Handle acquisition denied.
			return model.Record{}, false
		case 200:
			return model.Record{
				PID:             200,
				Name:            "app.exe",
				WorkingSetBytes: 50 * 1024 * 1024,
				PrivateBytes:    20 * 1024 * 1024,
			}, true
		}
		t.Errorf("unexpected pid inspected: %d", pid)
		return model.Record{}, false
	}))
	defer ResetInspector()

	records, err := Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	for _, pid := range inspected {
		if pid == 0 {
			t.Error("pid 0 must be filtered before inspection")
		}
	}

	want := []model.Record{{
		PID:             200,
		Name:            "app.exe",
		WorkingSetBytes: 52428800,
		PrivateBytes:    20971520,
	}}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %+v, want %+v", records, want)
	}
}

func TestCollectAllUnavailableIsEmptyNotError(t *testing.T) {
	SetLister(stubLister(4, 8, 15, 16, 23, 42))
	defer ResetLister()

	SetInspector(InspectorFunc(func(uint32) (model.Record, bool) {
		return model.Record{}, false
	}))
	defer ResetInspector()

	records, err := Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if records == nil {
		t.Fatal("Collect should return an empty slice, not nil")
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestCollectConsecutivePassesAgree(t *testing.T) {
	SetLister(stubLister(10, 20, 30))
	defer ResetLister()

	SetInspector(InspectorFunc(func(pid uint32) (model.Record, bool) {
		return model.Record{
			PID:             int(pid),
			Name:            "proc",
			WorkingSetBytes: uint64(pid) * 1024,
			PrivateBytes:    uint64(pid) * 512,
		}, true
	}))
	defer ResetInspector()

	first, err := Collect()
	if err != nil {
		t.Fatalf("first pass failed: %v", err)
	}
	second, err := Collect()
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("passes over an unchanged process set differ:\n%+v\n%+v", first, second)
	}
	for _, r := range first {
		if r.Name == "" {
			t.Error("record has an empty name")
		}
	}
}

func TestCollectPropagatesEnumerationFailure(t *testing.T) {
	SetLister(ListerFunc(func([]uint32) (int, error) {
		return 0, errors.New("boom")
	}))
	defer ResetLister()

	inspectorCalled := false
	SetInspector(InspectorFunc(func(uint32) (model.Record, bool) {
		inspectorCalled = true
		return model.Record{}, false
	}))
	defer ResetInspector()

	_, err := Collect()
	var enumErr *EnumerationError
	if !errors.As(err, &enumErr) {
		t.Fatalf("Collect error %v, want *EnumerationError", err)
	}
	if inspectorCalled {
		t.Error("no inspection should happen when enumeration fails")
	}
}
