package proc

import "github.com/sancognition/memsniff/pkg/model"

// Collect takes one snapshot of every process the caller is allowed to
// inspect. Pids that deny access or disappear mid-pass are skipped
// silently; an empty result is a valid outcome on a locked-down host.
// Only a failure of the enumeration itself is returned as an error.
func Collect() ([]model.Record, error) {
	pids, err := EnumeratePIDs()
	if err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, len(pids))
	for _, pid := range pids {
		if pid == 0 {
			// Idle/system sentinel, never a real process.
			continue
		}
		rec, ok := inspector.Inspect(pid)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}
