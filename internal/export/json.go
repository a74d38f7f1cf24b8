package export

import (
	"encoding/json"
	"fmt"

	"github.com/stravalyze/stravalyze/internal/model"
)

// EncodeJSON serializes the batch verbatim as two-space-indented JSON.
// Absent optional fields are omitted entirely, so decoding the output
// reconstructs a batch equal to the original.
func EncodeJSON(batch model.ExportBatch) (string, error) {
	if err := validate(batch); err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(b), nil
}

// DecodeJSON is the inverse of EncodeJSON.
func DecodeJSON(text string) (model.ExportBatch, error) {
	var batch model.ExportBatch
	if err := json.Unmarshal([]byte(text), &batch); err != nil {
		return model.ExportBatch{}, fmt.Errorf("decode json: %w", err)
	}
	return batch, nil
}
