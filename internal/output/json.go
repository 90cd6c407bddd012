package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sancognition/memsniff/pkg/model"
)

// PrintJSON emits the top records as indented JSON, ranked the same way
// the table is.
func PrintJSON(w io.Writer, records []model.Record, topN int) error {
	type jsonRecord struct {
		PID             int     `json:"pid"`
		Name            string  `json:"name"`
		WorkingSetBytes uint64  `json:"working_set_bytes"`
		PrivateBytes    uint64  `json:"private_bytes"`
		WorkingSetMiB   float64 `json:"working_set_mib"`
		PrivateMiB      float64 `json:"private_mib"`
	}

	ranked := RankByWorkingSet(records, topN)
	out := make([]jsonRecord, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, jsonRecord{
			PID:             r.PID,
			Name:            r.Name,
			WorkingSetBytes: r.WorkingSetBytes,
			PrivateBytes:    r.PrivateBytes,
			WorkingSetMiB:   float64(r.WorkingSetBytes) / mib,
			PrivateMiB:      float64(r.PrivateBytes) / mib,
		})
	}

	enc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(enc))
	return nil
}
