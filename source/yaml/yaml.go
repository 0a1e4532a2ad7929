// Package yamlsrc provides a dekoda.Driver backed by gopkg.in/yaml.v3, so
// single-document YAML input can flow through the same Value tree and decoder
// pipeline as JSON. Install it with dekoda.SetDriver(yamlsrc.Driver()) or call
// Parse directly.
package yamlsrc

import (
	dekoda "github.com/reoring/dekoda"
	"gopkg.in/yaml.v3"
)

// Driver returns a dekoda.Driver backed by yaml.v3.
func Driver() dekoda.Driver { return driverYAML{} }

type driverYAML struct{}

func (driverYAML) Parse(data []byte) (dekoda.Value, bool) { return Parse(data) }

func (driverYAML) Name() string { return "yaml.v3" }

// Parse decodes one YAML document into a Value. Multi-document input is
// rejected along with syntax errors and trees dekoda cannot represent, such
// as mappings with non-string keys; all of those report false, which
// dekoda.ParseText surfaces as the "Nothing" failure.
func Parse(data []byte) (dekoda.Value, bool) {
	var decoded any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return dekoda.Value{}, false
	}
	return dekoda.ValueFromAny(decoded)
}
