package uwgio

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/urbanclimate/uwgo/pkg/errors"
)

// WriteJSON writes an engine input to a JSON file. The write is atomic: a
// crash mid-write never leaves a truncated input behind for the engine to
// choke on.
func WriteJSON(path string, in *Input) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return errors.WrapIO("marshal", path, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapIO("mkdir", filepath.Dir(path), err)
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// WriteLegacy writes an engine input in the legacy .uwg text format.
func WriteLegacy(path string, in *Input) error {
	text, err := LegacyString(in)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapIO("mkdir", filepath.Dir(path), err)
	}
	if err := renameio.WriteFile(path, []byte(text), 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// ReadJSON loads an engine input from a JSON file.
func ReadJSON(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, errors.WrapIO("unmarshal", path, err)
	}
	return &in, nil
}
