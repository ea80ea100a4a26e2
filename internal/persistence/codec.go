package persistence

import (
	"bytes"
	"errors"
	"fmt"
	json "github.com/goccy/go-json"
	"gritd/internal/models"
	"time"
)

var ErrInvalidImport = errors.New("invalid import data")

// EncodeSnapshot is the compact form written to the slot.
func EncodeSnapshot(snapshot *models.Snapshot) ([]byte, error) {
	return json.Marshal(snapshot)
}

// EncodeExport renders the portable, indented export document.
func EncodeExport(snapshot *models.Snapshot, exportedAt time.Time) ([]byte, error) {
	doc := models.ExportDocument{
		Snapshot:   *snapshot,
		ExportedAt: exportedAt.UTC(),
		Version:    models.ExportVersion,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeSnapshot accepts an export document or a bare snapshot. gritLogs must
// be present and be an array; the other collections default to empty.
func DecodeSnapshot(raw []byte) (*models.Snapshot, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidImport, err)
	}
	logs, ok := probe["gritLogs"]
	if !ok || !bytes.HasPrefix(bytes.TrimSpace(logs), []byte("[")) {
		return nil, fmt.Errorf("%w: gritLogs must be an array", ErrInvalidImport)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidImport, err)
	}
	snapshot.Normalize()
	return &snapshot, nil
}
