package simulation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/urbanclimate/uwgo/pkg/errors"
)

// LoadParameter reads simulation parameters from a JSON or YAML file,
// layered over the defaults.
func LoadParameter(path string) (Parameter, error) {
	par := DefaultParameter()

	data, err := os.ReadFile(path)
	if err != nil {
		return par, errors.WrapIO("read", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.UnmarshalWithOptions(data, &par, yaml.UseJSONUnmarshaler())
	default:
		err = json.Unmarshal(data, &par)
	}
	if err != nil {
		return par, errors.NewValidationError("simulation parameter", path, err.Error())
	}
	if err := par.Validate(); err != nil {
		return par, err
	}
	return par, nil
}
