package district

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/urbanclimate/uwgo/pkg/errors"
)

// Load reads a district description from a JSON or YAML file. Fields left
// out of the document keep their defaults, the same as UnmarshalJSON.
func Load(path string) (*District, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var d District
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.UnmarshalWithOptions(data, &d, yaml.UseJSONUnmarshaler())
	default:
		err = json.Unmarshal(data, &d)
	}
	if err != nil {
		return nil, errors.NewValidationError("district", path, err.Error())
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
