package tui

import "github.com/sancognition/memsniff/pkg/model"

// snapshotMsg carries the result of one collection pass
type snapshotMsg struct {
	records []model.Record
	err     error
}
