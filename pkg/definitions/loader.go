package definitions

import (
	_ "embed"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/logging"
	"github.com/arthur-debert/assetgen/pkg/types"
)

//go:embed schema.json
var schemaJSON string

// Format is the encoding of a definition file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// tomlTable is the TOML array-of-tables key
const tomlTable = "definition"

// FormatFor picks the format from the file extension, JSON by default
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Load reads and validates a definition file
func Load(fsys types.FS, path string) ([]types.Definition, error) {
	logger := logging.GetLogger("definitions")
	logger.Info().Str("path", path).Msg("Reading definitions")

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDefinitionRead, "failed to read definition file %s", path).
			WithDetail("path", path)
	}

	defs, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("count", len(defs)).Msg("Definitions loaded")
	return defs, nil
}

// Parse decodes and validates definition data
func Parse(data []byte, format Format) ([]types.Definition, error) {
	var (
		raw  interface{}
		defs []types.Definition
		err  error
	)

	switch format {
	case FormatYAML:
		if err = yaml.Unmarshal(data, &raw); err == nil {
			if err = validate(raw); err != nil {
				return nil, err
			}
			err = yaml.Unmarshal(data, &defs)
		}
	case FormatTOML:
		var doc map[string]interface{}
		if err = toml.Unmarshal(data, &doc); err == nil {
			raw = doc[tomlTable]
			if err = validate(raw); err != nil {
				return nil, err
			}
			var tables struct {
				Definitions []types.Definition `toml:"definition"`
			}
			err = toml.Unmarshal(data, &tables)
			defs = tables.Definitions
		}
	default:
		if err = json.Unmarshal(data, &raw); err == nil {
			if err = validate(raw); err != nil {
				return nil, err
			}
			err = json.Unmarshal(data, &defs)
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDefinitionParse, "failed to parse %s definitions", format)
	}

	return defs, nil
}

// validate checks a decoded document against the schema. A missing
// document is treated as an empty list.
func validate(raw interface{}) error {
	if raw == nil {
		raw = []interface{}{}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(raw),
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrDefinitionParse, "failed to validate definitions")
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return errors.Newf(errors.ErrDefinitionInvalid, "invalid definitions: %s", strings.Join(problems, "; ")).
		WithDetail("errors", problems)
}
